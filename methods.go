// SPDX-License-Identifier: MIT
// Package densemat: element access and bookkeeping on Matrix.
// All public coordinates here are 1-based; violations return ErrOutOfRange
// rather than panicking.

package densemat

import (
	"fmt"
	"strings"
)

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.cols
}

// Order returns the (rows, cols) pair. Complexity: O(1).
func (m *Matrix) Order() (rows, cols int) {
	return m.rows, m.cols
}

// IsHorizontal reports whether the matrix has more columns than rows.
// Complexity: O(1).
func (m *Matrix) IsHorizontal() bool {
	return m.cols > m.rows
}

// IsVertical reports whether the matrix has more rows than columns.
// Complexity: O(1).
func (m *Matrix) IsVertical() bool {
	return m.rows > m.cols
}

// indexOf computes the flat index for 1-based (i, j) or returns
// ErrOutOfRange. Central bounds check for Get/Set.
// Complexity: O(1).
func (m *Matrix) indexOf(i, j int) (int, error) {
	if i < 1 || i > m.rows {
		return 0, ErrOutOfRange
	}
	if j < 1 || j > m.cols {
		return 0, ErrOutOfRange
	}

	return (i-1)*m.cols + (j - 1), nil
}

// Get retrieves the element at 1-based (i, j).
// Errors: ErrOutOfRange when (i, j) is outside [1,rows]×[1,cols].
// Complexity: O(1).
func (m *Matrix) Get(i, j int) (float64, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return 0, opErrorf(opGet, err)
	}

	return m.items[idx], nil
}

// Set assigns value v at 1-based (i, j).
// Errors: ErrOutOfRange when (i, j) is outside [1,rows]×[1,cols].
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return opErrorf(opSet, err)
	}
	m.items[idx] = v

	return nil
}

// Row returns a copy of the 1-based i-th row.
// Errors: ErrOutOfRange when i is outside [1, rows].
// Complexity: O(cols).
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 1 || i > m.rows {
		return nil, opErrorf(opRow, ErrOutOfRange)
	}

	row := make([]float64, m.cols)
	copy(row, m.items[(i-1)*m.cols:i*m.cols])

	return row, nil
}

// Column returns a copy of the 1-based j-th column.
// Errors: ErrOutOfRange when j is outside [1, cols].
// Complexity: O(rows).
func (m *Matrix) Column(j int) ([]float64, error) {
	if j < 1 || j > m.cols {
		return nil, opErrorf(opColumn, ErrOutOfRange)
	}

	col := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ { // stride down the flat buffer
		col[i] = m.items[i*m.cols+(j-1)]
	}

	return col, nil
}

// Trace returns the main-diagonal entries of a square matrix.
// Errors: ErrTraceNonSquare when rows != cols.
// Complexity: O(rows).
func (m *Matrix) Trace() ([]float64, error) {
	if m.rows != m.cols {
		return nil, opErrorf(opTrace, ErrTraceNonSquare)
	}

	diag := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		diag[i] = m.items[i*m.cols+i]
	}

	return diag, nil
}

// Clone returns a deep copy of the matrix. The returned matrix is fully
// independent of the original. Complexity: O(rows*cols).
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.items))
	copy(data, m.items)

	return &Matrix{rows: m.rows, cols: m.cols, items: data}
}

// Equal reports whether other has the same order and exactly equal
// elements. Exact float64 comparison; use AllClose for tolerance-based
// comparison after derivations. Complexity: O(rows*cols).
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for idx := range m.items { // deterministic flat 0..n-1
		if m.items[idx] != other.items[idx] {
			return false
		}
	}

	return true
}

// AllClose reports whether other has the same order and every element
// within tol of the receiver's: |a-b| <= tol elementwise.
// Complexity: O(rows*cols).
func (m *Matrix) AllClose(other *Matrix, tol float64) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	var diff float64
	for idx := range m.items {
		diff = m.items[idx] - other.items[idx]
		if diff < 0 {
			diff = -diff
		}
		if diff > tol {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: rows rendered one per line with values
// left-aligned to the widest rendered element, two spaces between columns.
// Pure presentation; reads only values and order.
// Complexity: O(rows*cols) string construction.
func (m *Matrix) String() string {
	// First pass: find the widest rendered element.
	widest := 0
	rendered := make([]string, len(m.items))
	for idx, v := range m.items {
		rendered[idx] = fmt.Sprintf("%g", v)
		if len(rendered[idx]) > widest {
			widest = len(rendered[idx])
		}
	}

	// Second pass: emit padded cells, one row per line.
	var b strings.Builder
	for idx, cell := range rendered {
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widest-len(cell)))
		b.WriteString("  ")
		if (idx+1)%m.cols == 0 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
