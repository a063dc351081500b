// SPDX-License-Identifier: MIT
// Package densemat: the Matrix type and its constructors.
// Matrix is a concrete, row-major grid of float64 values stored in a flat
// slice for cache friendliness. Public coordinates are 1-based; the flat
// mapping (i-1)*cols + (j-1) is an internal detail.

package densemat

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew            = "New"
	opGenerate       = "Generate"
	opRowMatrix      = "RowMatrix"
	opColumnMatrix   = "ColumnMatrix"
	opNullMatrix     = "NullMatrix"
	opSquareMatrix   = "SquareMatrix"
	opDiagonalMatrix = "DiagonalMatrix"
	opScalarMatrix   = "ScalarMatrix"
	opIdentity       = "Identity"
	opGet            = "Get"
	opSet            = "Set"
	opRow            = "Row"
	opColumn         = "Column"
	opTrace          = "Trace"
	opAdd            = "Add"
	opSub            = "Sub"
	opMul            = "Mul"
	opScale          = "Scale"
	opDivScalar      = "DivScalar"
	opToDeterminant  = "ToDeterminant"
	opAdjoint        = "Adjoint"
	opInverse        = "Inverse"
	opNewDeterminant = "NewDeterminant"
	opCofactor       = "Cofactor"
)

// opErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across the package. Use only when err != nil.
// Complexity: O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Matrix is a row-major rectangular grid of float64 values.
// rows and cols form the order; items holds rows*cols elements in
// row-major order. The zero value is not usable; build instances through
// the constructors below.
type Matrix struct {
	rows, cols int       // order of the matrix
	items      []float64 // flat backing storage, length == rows*cols
}

// New creates a matrix of the given order from items listed row by row.
// Implementation:
//   - Stage 1: Validate order positivity and the count invariant
//     len(items) == rows*cols.
//   - Stage 2: Copy items into fresh backing storage (caller's slice is
//     never aliased).
//
// Errors:
//   - ErrInvalidOrder                (rows <= 0 or cols <= 0).
//   - ErrInappropriateNumberOfItems  (count does not fill the order).
//
// Complexity: O(rows*cols) time and memory.
func New(items []float64, rows, cols int) (*Matrix, error) {
	if err := ValidateOrder(rows, cols); err != nil {
		return nil, opErrorf(opNew, err)
	}
	if len(items) != rows*cols {
		return nil, opErrorf(opNew, ErrInappropriateNumberOfItems)
	}

	// Copy into fresh storage; the matrix owns its buffer exclusively.
	data := make([]float64, len(items))
	copy(data, items)

	return &Matrix{rows: rows, cols: cols, items: data}, nil
}

// Generate builds a matrix of the given order by evaluating f over every
// 1-based position, row by row: item(i,j) = f(i,j) for i in 1..rows and
// j in 1..cols.
// Implementation:
//   - Stage 1: Validate order positivity.
//   - Stage 2: Fill the flat buffer in fixed i→j order.
//
// Determinism:
//   - Fixed evaluation order i=1..rows, j=1..cols; f is invoked exactly
//     once per position.
//
// Errors:
//   - ErrInvalidOrder (rows <= 0 or cols <= 0).
//
// Complexity: O(rows*cols) evaluations of f.
func Generate(f func(i, j int) float64, rows, cols int) (*Matrix, error) {
	if err := ValidateOrder(rows, cols); err != nil {
		return nil, opErrorf(opGenerate, err)
	}

	data := make([]float64, rows*cols)
	var i, j, idx int // loop iterators and flat cursor
	for i = 1; i <= rows; i++ {
		for j = 1; j <= cols; j++ {
			data[idx] = f(i, j)
			idx++
		}
	}

	return &Matrix{rows: rows, cols: cols, items: data}, nil
}

// RowMatrix creates a 1×n matrix from the given items.
// Errors: ErrInvalidOrder when items is empty.
// Complexity: O(n).
func RowMatrix(items []float64) (*Matrix, error) {
	m, err := New(items, 1, len(items))
	if err != nil {
		return nil, opErrorf(opRowMatrix, err)
	}

	return m, nil
}

// ColumnMatrix creates an n×1 matrix from the given items.
// Errors: ErrInvalidOrder when items is empty.
// Complexity: O(n).
func ColumnMatrix(items []float64) (*Matrix, error) {
	m, err := New(items, len(items), 1)
	if err != nil {
		return nil, opErrorf(opColumnMatrix, err)
	}

	return m, nil
}

// NullMatrix creates a rows×cols matrix of all zeros.
// Errors: ErrInvalidOrder. Complexity: O(rows*cols).
func NullMatrix(rows, cols int) (*Matrix, error) {
	if err := ValidateOrder(rows, cols); err != nil {
		return nil, opErrorf(opNullMatrix, err)
	}

	// A fresh flat slice is already zeroed by the runtime.
	return &Matrix{rows: rows, cols: cols, items: make([]float64, rows*cols)}, nil
}

// SquareMatrix creates an n×n matrix from items whose count must be a
// perfect square; n = √len(items). Like every Matrix constructor, the
// degenerate 0×0 order is rejected: a Matrix always has at least one
// element. NewDeterminant differs here — a Determinant snapshot tolerates
// the empty square (size 0, value 0).
// Errors:
//   - ErrInappropriateNumberOfItems (count is not a perfect square).
//   - ErrInvalidOrder               (items is empty).
//
// Complexity: O(n²).
func SquareMatrix(items []float64) (*Matrix, error) {
	size, ok := squareSize(len(items))
	if !ok {
		return nil, opErrorf(opSquareMatrix, ErrInappropriateNumberOfItems)
	}
	m, err := New(items, size, size)
	if err != nil {
		return nil, opErrorf(opSquareMatrix, err)
	}

	return m, nil
}

// DiagonalMatrix creates an n×n matrix with the given items along the main
// diagonal and zeros elsewhere; n = len(items).
// Errors: ErrInvalidOrder when items is empty. Complexity: O(n²).
func DiagonalMatrix(items []float64) (*Matrix, error) {
	n := len(items)
	m, err := Generate(func(i, j int) float64 {
		if i != j {
			return 0
		}

		return items[i-1]
	}, n, n)
	if err != nil {
		return nil, opErrorf(opDiagonalMatrix, err)
	}

	return m, nil
}

// ScalarMatrix creates a size×size matrix with item along the main
// diagonal and zeros elsewhere.
// Errors: ErrInvalidOrder when size <= 0. Complexity: O(size²).
func ScalarMatrix(item float64, size int) (*Matrix, error) {
	m, err := Generate(func(i, j int) float64 {
		if i != j {
			return 0
		}

		return item
	}, size, size)
	if err != nil {
		return nil, opErrorf(opScalarMatrix, err)
	}

	return m, nil
}

// Identity creates the size×size identity matrix.
// Errors: ErrInvalidOrder when size <= 0. Complexity: O(size²).
func Identity(size int) (*Matrix, error) {
	m, err := ScalarMatrix(1, size)
	if err != nil {
		return nil, opErrorf(opIdentity, err)
	}

	return m, nil
}
