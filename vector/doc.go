// Package vector provides fixed-length numeric vectors with value semantics.
//
// Two shapes share one capability set (arithmetic, norms, iteration):
//
//   - Vector[T]: length chosen at construction (1..MaxLen), stored inline.
//   - Vec3[T]:   the 3-component case with named X, Y, Z fields, plus Cross
//     and axis rotation.
//
// Both are plain values: assigning one copies all of its elements. Operations
// whose operands may disagree in length (Vector only) return ErrLengthMismatch;
// indexing out of range returns ErrOutOfRange. Vec3 operations never fail on
// shape, its length is part of the type.
//
// Equality is exact component-wise comparison; use scalar.ApproxEqual for
// tolerance-based checks.
package vector
