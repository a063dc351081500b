// SPDX-License-Identifier: MIT
// Package densemat: elementwise and product arithmetic on Matrix.
// Every operation validates shapes up front and returns a sentinel error
// on mismatch — including the binary operators, which recover instead of
// aborting. All kernels allocate exactly one result matrix and never
// mutate their operands (RoundInPlace is the single documented exception).

package densemat

import "math"

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the
// flat loop. Operands must have identical orders and are not mutated.
// Determinism: single flat pass 0..n-1.
// Complexity: Time O(rows*cols), Space O(rows*cols) for the result.
func addSub(a, b *Matrix, sign float64, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameOrder(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}

	res := &Matrix{rows: a.rows, cols: a.cols, items: make([]float64, len(a.items))}
	for idx := range a.items { // deterministic 0..n-1
		res.items[idx] = a.items[idx] + sign*b.items[idx]
	}

	return res, nil
}

// Add returns the elementwise sum m + other as a fresh matrix.
// Errors: ErrNilMatrix (nil operand), ErrIncorrectOrders (order mismatch).
// Complexity: O(rows*cols).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) { return addSub(m, other, +1, opAdd) }

// Sub returns the elementwise difference m - other as a fresh matrix.
// Errors: ErrNilMatrix (nil operand), ErrIncorrectOrders (order mismatch).
// Complexity: O(rows*cols).
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) { return addSub(m, other, -1, opSub) }

// Mul performs standard matrix multiplication C = m × other.
// Implementation:
//   - Stage 1: Validate operands non-nil and inner dimensions
//     (m.Cols == other.Rows).
//   - Stage 2: Row-major i→k→j triple loop over the flat buffers,
//     skipping zero left-hand entries.
//
// Behavior highlights:
//   - Deterministic loop order; per-element accumulation runs in
//     increasing k regardless of the loop nesting.
//   - One allocation for the result; operands are never mutated.
//
// Errors:
//   - ErrNilMatrix      (nil operand).
//   - ErrIncorrectOrders (m.Cols != other.Rows).
//
// Complexity: Time O(rows*inner*cols), Space O(rows*cols).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, opErrorf(opMul, err)
	}

	rows, inner, cols := m.rows, m.cols, other.cols
	res := &Matrix{rows: rows, cols: cols, items: make([]float64, rows*cols)}
	var (
		i, j, k                            int     // loop iterators
		av                                 float64 // left-hand entry m(i,k)
		rowOffsetA, rowOffsetB, rowOffsetR int     // flat row bases
	)
	for i = 0; i < rows; i++ {
		rowOffsetA = i * inner
		rowOffsetR = i * cols
		for k = 0; k < inner; k++ {
			av = m.items[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * cols
			for j = 0; j < cols; j++ {
				res.items[rowOffsetR+j] += av * other.items[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m(i,j).
// NaN/Inf alpha propagates elementwise. Complexity: O(rows*cols).
func (m *Matrix) Scale(alpha float64) *Matrix {
	res := &Matrix{rows: m.rows, cols: m.cols, items: make([]float64, len(m.items))}
	for idx := range m.items {
		res.items[idx] = m.items[idx] * alpha
	}

	return res
}

// DivScalar returns a new matrix whose elements are m(i,j) / alpha.
// A zero alpha follows float64 division semantics (±Inf/NaN propagate);
// Inverse guards against the singular case before reaching here.
// Complexity: O(rows*cols).
func (m *Matrix) DivScalar(alpha float64) *Matrix {
	res := &Matrix{rows: m.rows, cols: m.cols, items: make([]float64, len(m.items))}
	for idx := range m.items {
		res.items[idx] = m.items[idx] / alpha
	}

	return res
}

// Round returns a new matrix with every element rounded to the nearest
// integer value in floating representation (half away from zero). Used to
// cancel floating-point noise in identities like A · A⁻¹ ≈ I.
// Complexity: O(rows*cols).
func (m *Matrix) Round() *Matrix {
	res := &Matrix{rows: m.rows, cols: m.cols, items: make([]float64, len(m.items))}
	for idx := range m.items {
		res.items[idx] = math.Round(m.items[idx])
	}

	return res
}

// RoundInPlace rounds every element of the receiver in place.
// The only mutating operation in the arithmetic layer.
// Complexity: O(rows*cols).
func (m *Matrix) RoundInPlace() {
	for idx := range m.items {
		m.items[idx] = math.Round(m.items[idx])
	}
}
