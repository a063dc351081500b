// SPDX-License-Identifier: MIT
// Package densemat_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for constructors and kernels.
//   - Keep all data finite and well-formed so assertions test semantics,
//     not numeric-policy interference.

package densemat_test

import (
	"testing"

	"github.com/katalvlaran/densemat"
)

// Tolerance used when comparing derivation results that involve division.
const closeTol = 1e-9

// MustNew builds a rows×cols matrix from items or fails the test.
func MustNew(t *testing.T, items []float64, rows, cols int) *densemat.Matrix {
	t.Helper()
	m, err := densemat.New(items, rows, cols)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", rows, cols, err)
	}

	return m
}

// MustIdentity builds the size×size identity matrix or fails the test.
func MustIdentity(t *testing.T, size int) *densemat.Matrix {
	t.Helper()
	m, err := densemat.Identity(size)
	if err != nil {
		t.Fatalf("Identity(%d): %v", size, err)
	}

	return m
}

// MustGet reads a 1-based element or fails the test.
func MustGet(t *testing.T, m *densemat.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.Get(i, j)
	if err != nil {
		t.Fatalf("Get(%d,%d): %v", i, j, err)
	}

	return v
}

// MustDeterminant builds a determinant snapshot or fails the test.
func MustDeterminant(t *testing.T, values []float64) *densemat.Determinant {
	t.Helper()
	d, err := densemat.NewDeterminant(values)
	if err != nil {
		t.Fatalf("NewDeterminant(len=%d): %v", len(values), err)
	}

	return d
}
