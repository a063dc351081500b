// SPDX-License-Identifier: MIT
// Package densemat_test: arithmetic kernel tests — elementwise ops,
// products, scaling, rounding, and the recoverable shape-mismatch policy.

package densemat_test

import (
	"testing"

	"github.com/katalvlaran/densemat"
	"github.com/stretchr/testify/require"
)

func TestAddSub_Elementwise(t *testing.T) {
	t.Parallel()

	a := MustNew(t, []float64{45, 2, 65, 899, 6, 61}, 3, 2)
	b := MustNew(t, []float64{4, 87, 2, 99, 12, 44}, 3, 2)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(MustNew(t, []float64{49, 89, 67, 998, 18, 105}, 3, 2)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(MustNew(t, []float64{41, -85, 63, 800, -6, 17}, 3, 2)))

	// Operands must remain untouched.
	require.Equal(t, 45.0, MustGet(t, a, 1, 1))
	require.Equal(t, 4.0, MustGet(t, b, 1, 1))
}

func TestAddSub_OrderMismatchIsRecoverable(t *testing.T) {
	t.Parallel()

	a := MustNew(t, make([]float64, 6), 3, 2)
	b := MustNew(t, make([]float64, 6), 2, 3)

	_, err := a.Add(b)
	require.ErrorIs(t, err, densemat.ErrIncorrectOrders)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, densemat.ErrIncorrectOrders)
	_, err = a.Add(nil)
	require.ErrorIs(t, err, densemat.ErrNilMatrix)
}

func TestMul_Product(t *testing.T) {
	t.Parallel()

	a := MustNew(t, []float64{4, 87, 2, 99, 12, 44}, 3, 2)
	b := MustNew(t, []float64{45, 2, 65, 899, 6, 61}, 2, 3)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.True(t, prod.Equal(MustNew(t, []float64{
		78393, 530, 5567,
		89091, 598, 6169,
		40096, 288, 3464,
	}, 3, 3)))
}

func TestMul_InnerDimensionMismatch(t *testing.T) {
	t.Parallel()

	a := MustNew(t, make([]float64, 6), 2, 3)
	b := MustNew(t, make([]float64, 4), 2, 2)
	_, err := a.Mul(b)
	require.ErrorIs(t, err, densemat.ErrIncorrectOrders)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	t.Parallel()

	a := MustNew(t, []float64{9, 8, 4, 8, 3, 2, 4, 3, 2}, 3, 3)
	id := MustIdentity(t, 3)

	left, err := id.Mul(a)
	require.NoError(t, err)
	require.True(t, left.Equal(a))

	right, err := a.Mul(id)
	require.NoError(t, err)
	require.True(t, right.Equal(a))
}

func TestScaleAndDivScalar(t *testing.T) {
	t.Parallel()

	a := MustNew(t, []float64{4, 87, 2, 99, 12, 44}, 3, 2)

	scaled := a.Scale(5)
	require.True(t, scaled.Equal(MustNew(t, []float64{20, 435, 10, 495, 60, 220}, 3, 2)))

	back := scaled.DivScalar(5)
	require.True(t, back.Equal(a))
}

func TestRound(t *testing.T) {
	t.Parallel()

	m := MustNew(t, []float64{0.9999, 0.0000023, 0.99999}, 1, 3)
	want := MustNew(t, []float64{1, 0, 1}, 1, 3)

	rounded := m.Round()
	require.True(t, rounded.Equal(want))
	// Round returns a fresh matrix; the receiver keeps its noise.
	require.Equal(t, 0.9999, MustGet(t, m, 1, 1))

	m.RoundInPlace()
	require.True(t, m.Equal(want))
}
