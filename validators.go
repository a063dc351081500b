// SPDX-License-Identifier: MIT
// Package densemat: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for common guard logic.
//   - Keep kernels/facades minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with an operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package densemat

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateOrder ensures a requested order is positive in both dimensions.
// Returns ErrInvalidOrder if rows <= 0 or cols <= 0. Complexity: O(1).
func ValidateOrder(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidOrder
	}

	return nil
}

// ValidateSameOrder ensures matrices a and b have equal orders.
// Assumes a and b are not nil (caller must ensure).
// Returns ErrIncorrectOrders on mismatch. Complexity: O(1).
func ValidateSameOrder(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrIncorrectOrders
	}

	return nil
}

// ValidateSquare checks that m is square (rows == cols).
// Assumes m is not nil. Returns ErrIncorrectOrders if not square.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m.rows != m.cols {
		return ErrIncorrectOrders
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Composite: NotNil(a) → NotNil(b) → inner-dimension check.
// Errors: ErrNilMatrix, ErrIncorrectOrders. Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return ErrIncorrectOrders
	}

	return nil
}

// ValidateBinarySameOrder is the composite NotNil(a) → NotNil(b) → SameOrder.
// Errors: ErrNilMatrix, ErrIncorrectOrders. Complexity: O(1).
func ValidateBinarySameOrder(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameOrder(a, b)
}

// ValidateSquareNonNil is the composite NotNil → Square.
// Errors: ErrNilMatrix, ErrIncorrectOrders. Complexity: O(1).
func ValidateSquareNonNil(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}
