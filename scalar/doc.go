// Package scalar provides the generic numeric helpers used by the vector,
// matrix and transform packages.
//
// Every helper is bounded by a constraint from golang.org/x/exp/constraints,
// so applying one to the wrong numeric category (for example
// CeilToNearestMultiple to a signed or floating type) is a compile error, not
// a runtime failure.
//
// Promotion rules:
//   - Abs, Sqrd, Ceil, Floor, Round, Truncate keep the input type.
//   - Sqrt and Pow promote to float64 (integer roots are generally irrational).
//   - Lerp returns the float type of its t argument (the common type of
//     integer endpoints and a float factor); LerpTo keeps the endpoint type
//     and returns a and b exactly at t = 0 and t = 1.
package scalar
