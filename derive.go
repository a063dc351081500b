// SPDX-License-Identifier: MIT
// Package densemat: linear-algebra derivations built on the determinant
// engine. Data flows one way: the facade snapshots its values into a
// Determinant, pulls scalar values and cofactors back out, and assembles
// the adjugate and inverse. Each derivation takes an independent snapshot
// of the receiver's current values, so none of them alias or observe
// later mutations.

package densemat

// Transpose returns a new matrix of swapped order (cols, rows) where
// result(i,j) = m(j,i). Pure; the receiver is never mutated.
// Determinism: fixed i→j copy order over the flat buffers.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func (m *Matrix) Transpose() *Matrix {
	res := &Matrix{rows: m.cols, cols: m.rows, items: make([]float64, len(m.items))}
	var i, j, baseSrc int
	for i = 0; i < m.rows; i++ {
		baseSrc = i * m.cols
		for j = 0; j < m.cols; j++ {
			// items[i*cols + j] → res.items[j*rows + i]
			res.items[j*m.rows+i] = m.items[baseSrc+j]
		}
	}

	return res
}

// ToDeterminant snapshots the receiver's current values into a
// Determinant. The snapshot is independent: later Set calls on the matrix
// do not affect it, and repeated derivations rebuild it from scratch.
// Errors: ErrNilMatrix on a nil receiver, ErrIncorrectOrders when
// rows != cols.
// Complexity: O(rows*cols) for the snapshot copy.
func (m *Matrix) ToDeterminant() (*Determinant, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, opErrorf(opToDeterminant, err)
	}
	det, err := NewDeterminant(m.items)
	if err != nil {
		return nil, opErrorf(opToDeterminant, err)
	}

	return det, nil
}

// Adjoint returns the adjugate: the transpose of the cofactor matrix.
// Implementation:
//   - Stage 1: Snapshot into a Determinant (square order required).
//   - Stage 2: Generate the cofactor grid — entry (i,j) is Cofactor(i,j),
//     each an independent, non-cached engine invocation over the relevant
//     minor.
//   - Stage 3: Transpose the cofactor grid.
//
// Errors:
//   - ErrNilMatrix       (nil receiver, via ToDeterminant).
//   - ErrIncorrectOrders (non-square receiver, via ToDeterminant).
//
// Determinism: fixed generation order i→j; fixed expansion order inside
// each cofactor.
// Complexity: Time O(n² · (n-1)!) for an n×n receiver, Space O(n²).
func (m *Matrix) Adjoint() (*Matrix, error) {
	det, err := m.ToDeterminant()
	if err != nil {
		return nil, opErrorf(opAdjoint, err)
	}

	cof, err := Generate(func(i, j int) float64 {
		// (i, j) ranges over [1,n]×[1,n]; Cofactor cannot fail here.
		v, _ := det.Cofactor(i, j)

		return v
	}, m.rows, m.cols)
	if err != nil {
		return nil, opErrorf(opAdjoint, err)
	}

	return cof.Transpose(), nil
}

// Inverse returns the inverse matrix: Adjoint() / Value().
// A zero determinant is reported as ErrSingular instead of silently
// dividing into a ±Inf/NaN-filled grid; near-zero determinants still
// follow ordinary float64 division and can amplify noise — Round the
// product A · A⁻¹ when checking identities.
// Errors:
//   - ErrNilMatrix       (nil receiver).
//   - ErrIncorrectOrders (non-square receiver).
//   - ErrSingular        (determinant exactly zero).
//
// Complexity: Time O(n² · (n-1)!), Space O(n²).
func (m *Matrix) Inverse() (*Matrix, error) {
	det, err := m.ToDeterminant()
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}
	value := det.Value()
	if value == 0 {
		return nil, opErrorf(opInverse, ErrSingular)
	}

	adj, err := m.Adjoint()
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}

	return adj.DivScalar(value), nil
}
