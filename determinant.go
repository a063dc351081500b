// SPDX-License-Identifier: MIT
// Package densemat: the determinant engine.
// Determinant is an immutable snapshot of a square grid's values. It
// computes the scalar determinant by recursive Laplace expansion along the
// first column and signed cofactors for arbitrary 1-based positions.
// Minors are represented as index-set views over the shared flat snapshot
// rather than re-filtered copies: the expansion order and the numeric
// result are identical to elementwise filtering, only allocation pressure
// changes.

package densemat

import "math"

// Determinant is an immutable snapshot of a square grid in row-major
// order. It does not observe later mutations of the Matrix it was built
// from; repeated derivations rebuild a fresh snapshot.
type Determinant struct {
	items []float64 // flat row-major snapshot, length == size*size
	size  int       // rows == cols
}

// squareSize returns the integer square root of n and whether n is a
// perfect square. Verified by integer multiplication, so it is exact for
// any count a flat slice can hold. Complexity: O(1).
func squareSize(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	size := int(math.Sqrt(float64(n)))
	// math.Sqrt can land one off for large n; settle by exact check.
	for size*size > n {
		size--
	}
	for (size+1)*(size+1) <= n {
		size++
	}

	return size, size*size == n
}

// NewDeterminant creates a determinant snapshot from values in row-major
// order. The value count must be a perfect square; size = √len(values).
// The input slice is copied and never aliased. Unlike the Matrix
// constructors, the degenerate empty square is accepted: zero values
// yield a size-0 snapshot whose Value is 0.
// Errors: ErrInappropriateNumberOfItems when the count is not a perfect
// square. Complexity: O(len(values)).
func NewDeterminant(values []float64) (*Determinant, error) {
	size, ok := squareSize(len(values))
	if !ok {
		return nil, opErrorf(opNewDeterminant, ErrInappropriateNumberOfItems)
	}

	snapshot := make([]float64, len(values))
	copy(snapshot, values)

	return &Determinant{items: snapshot, size: size}, nil
}

// Size returns the order of the underlying square grid. Complexity: O(1).
func (d *Determinant) Size() int {
	return d.size
}

// Value computes the scalar determinant.
// Implementation:
//   - Stage 1: Materialize the full index sets (all rows, all columns).
//   - Stage 2: Recurse via expand — Laplace expansion along the first
//     active column, increasing row order.
//
// Behavior highlights:
//   - Fixed expansion column and row order pin an exact, reproducible
//     floating-point summation order.
//   - The snapshot is read-only; Value never mutates state and is safe
//     for concurrent readers.
//
// Returns:
//   - float64: the determinant; 0 for an empty snapshot.
//
// Determinism:
//   - Always the first column, rows in increasing order, at every
//     recursion level.
//
// Complexity:
//   - Time O(size!) — classic cofactor expansion, no memoization. Space
//     O(size²) across the recursion for the index sets. Acceptable only
//     for small orders; this is the dominant cost of the library.
func (d *Determinant) Value() float64 {
	rows := make([]int, d.size)
	cols := make([]int, d.size)
	for i := 0; i < d.size; i++ {
		rows[i], cols[i] = i, i
	}

	return d.expand(rows, cols)
}

// expand computes the determinant of the submatrix selected by the active
// row and column index sets, expanding along the first active column in
// increasing active-row order.
// Implementation:
//   - Stage 1: Base cases — 0 active rows → 0 (degenerate, kept as a
//     guard), 1 → single element, 2 → closed form a11*a22 - a12*a21.
//   - Stage 2: General step — for each active row position i, take the
//     first-column entry, drop row i from the active set, recurse on the
//     remaining columns, and accumulate with alternating sign
//     (+ for even i, - for odd i).
//
// Determinism:
//   - Fixed i=0..n-1 accumulation order; bitwise-reproducible sums.
//
// Complexity: Time O(n!) over n active rows; Space O(n) per level for the
// reduced row set (column sets are shared subslices).
func (d *Determinant) expand(rows, cols []int) float64 {
	n := len(rows)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return d.items[rows[0]*d.size+cols[0]]
	}
	if n == 2 {
		// Closed form avoids one more recursion level for the common case.
		return d.items[rows[0]*d.size+cols[0]]*d.items[rows[1]*d.size+cols[1]] -
			d.items[rows[0]*d.size+cols[1]]*d.items[rows[1]*d.size+cols[0]]
	}

	var (
		value       float64 // running determinant accumulator
		item, minor float64 // first-column entry and its minor's determinant
		i           int     // active-row position being expanded
	)
	sub := make([]int, 0, n-1) // reduced row set, rebuilt per iteration
	for i = 0; i < n; i++ {
		item = d.items[rows[i]*d.size+cols[0]]
		// Delete active row i; column 0 is dropped by passing cols[1:].
		sub = sub[:0]
		sub = append(sub, rows[:i]...)
		sub = append(sub, rows[i+1:]...)
		minor = d.expand(sub, cols[1:])
		if i%2 == 0 {
			value += item * minor
		} else {
			value -= item * minor
		}
	}

	return value
}

// Cofactor computes the signed cofactor at 1-based (i, j): the determinant
// of the minor formed by deleting row i and column j, multiplied by
// (-1)^(i+j). The parity is taken on the 1-based coordinates directly;
// this convention is what makes the adjugate/inverse assembly correct.
// Implementation:
//   - Stage 1: Validate 1 <= i, j <= size.
//   - Stage 2: Build the reduced row/column index sets and evaluate the
//     minor with the same expansion engine.
//
// Errors:
//   - ErrOutOfRange when i or j is outside [1, size].
//
// Determinism: same fixed expansion order as Value.
// Complexity: Time O((size-1)!), Space O(size).
func (d *Determinant) Cofactor(i, j int) (float64, error) {
	if i < 1 || i > d.size || j < 1 || j > d.size {
		return 0, opErrorf(opCofactor, ErrOutOfRange)
	}

	rows := make([]int, 0, d.size-1)
	cols := make([]int, 0, d.size-1)
	for r := 0; r < d.size; r++ {
		if r != i-1 {
			rows = append(rows, r)
		}
	}
	for c := 0; c < d.size; c++ {
		if c != j-1 {
			cols = append(cols, c)
		}
	}

	minor := d.expand(rows, cols)
	if (i+j)%2 != 0 {
		return -minor, nil
	}

	return minor, nil
}
