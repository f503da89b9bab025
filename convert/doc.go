// Package convert moves values between dmath types and the fixed-array
// types of golang.org/x/image/math/f32 and golang.org/x/image/math/f64.
//
// The x/image types are row-major while dmath matrices are column-major, so
// every matrix conversion transposes the storage order. Element (column x,
// row y) of a dmath matrix always lands at index y*W + x of the array.
//
// Matrix conversions check the source shape and return ErrShape on
// mismatch; vector conversions cannot fail.
package convert
