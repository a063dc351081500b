// Package densemat is a small dense-matrix playground: rectangular float64
// grids with construction helpers, 1-based element access, and the classic
// cofactor-expansion derivations — trace, transpose, determinant, adjugate,
// and inverse.
//
// 🚀 What is densemat?
//
//	A compact, pure-Go library that brings together:
//		• Core type: Matrix — flat row-major storage plus an order (rows, cols)
//		• Constructors: New, Generate, Row/Column/Null/Square/Diagonal/Scalar/Identity
//		• Bookkeeping: Get/Set, Row/Column extraction, Trace, pretty-printing
//		• Arithmetic: Add, Sub, Mul, Scale, DivScalar, Round with recoverable errors
//		• Derivations: Transpose, Determinant (Laplace expansion), Cofactor,
//		  Adjoint, Inverse
//
// ✨ Why choose densemat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable numerics – fixed expansion and loop orders, reproducible sums
//   - Rock-solid error surface – sentinel errors matched via errors.Is, no panics
//   - Pure Go – no cgo, no hidden deps
//
// The determinant engine uses exact recursive cofactor expansion along the
// first column. That is factorial in the matrix order and intended for small
// matrices; it is the dominant cost of the whole library. For iterative or
// numerically-stable decompositions (LU, QR), reach for a numerical package
// instead — they are deliberately out of scope here.
//
// Coordinates on the public surface are 1-based, matching textbook matrix
// notation: element (i, j) lives in row i ∈ [1, rows] and column j ∈ [1, cols].
//
//	go get github.com/katalvlaran/densemat
package densemat
