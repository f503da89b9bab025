// Package matrix provides small fixed-size numeric matrices with value
// semantics and column-major storage.
//
// The matrix package provides:
//
//   - Matrix[T]: a W×H grid (W columns, H rows, each 0..MaxDim) stored
//     inline, element (x,y) at flat index x*H + y.
//   - Square[T]: a Matrix whose squareness was checked at construction,
//     adding Determinant, Adjugate, Inverse and in-place Transpose.
//   - Products that follow the usual rule (W,H) * (WB,W) -> (WB,H), and
//     Matrix-times-vector.Vector.
//
// Every shape or index violation is reported as a sentinel error (see
// errors.go) wrapped with the call site; nothing in the package panics on
// user input. Equality is exact; AllClose compares float matrices within a
// tolerance.
//
// Inversion is adjugate over determinant: O(n!) through Laplace expansion,
// fine for the graphics sizes the package targets (n <= 4) and usable up to
// MaxDim. A determinant that is exactly zero means "no inverse" (ErrSingular
// from Inverse, ok=false from TryInverse); no epsilon is applied.
package matrix
