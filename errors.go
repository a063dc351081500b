// SPDX-License-Identifier: MIT
// Package densemat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package densemat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "densemat: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("Op: %w", ErrX) at the operation boundary — callers still
// match via errors.Is.

var (
	// ErrInappropriateNumberOfItems is returned when an item count cannot
	// fill the requested order (New) or cannot be arranged as a square
	// (SquareMatrix, NewDeterminant).
	ErrInappropriateNumberOfItems = errors.New("densemat: inappropriate number of items")

	// ErrIncorrectOrders indicates incompatible orders between operands or
	// an operation that requires squareness: Add/Sub on different orders,
	// Mul where a.Cols != b.Rows, ToDeterminant/Adjoint/Inverse on a
	// non-square receiver.
	ErrIncorrectOrders = errors.New("densemat: incorrect orders for operation")

	// ErrTraceNonSquare signals that a trace was requested for a
	// non-square matrix. The trace is defined only when rows == cols.
	ErrTraceNonSquare = errors.New("densemat: trace exists only for square matrices")

	// ErrOutOfRange indicates that a 1-based coordinate (row or column) is
	// outside [1, rows] × [1, cols]. Public indexers (Get/Set/Row/Column)
	// and Determinant.Cofactor MUST return this, not panic.
	ErrOutOfRange = errors.New("densemat: index out of range")

	// ErrInvalidOrder is returned when a requested order is non-positive
	// (rows <= 0 or cols <= 0). Constructors validate before allocation.
	ErrInvalidOrder = errors.New("densemat: order must be > 0")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument)
	// was used.
	ErrNilMatrix = errors.New("densemat: nil matrix")

	// ErrSingular is returned by Inverse when the determinant is exactly
	// zero. The zero-determinant case is reported explicitly rather than
	// silently producing a ±Inf/NaN-filled result.
	ErrSingular = errors.New("densemat: singular matrix")
)
