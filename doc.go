// Package dmath is a small, allocation-free linear-algebra toolkit for
// graphics and game code.
//
// What is inside:
//
//	scalar/    generic numeric helpers (Abs, Clamp, Lerp, Hypot, ...)
//	trig/      angle units (degrees/radians) and unit-aware Sin/Cos/Tan
//	vector/    Vector[T] (length fixed at construction) and Vec3[T] (named X/Y/Z)
//	matrix/    Matrix[T] (column-major W×H grid) and Square[T] (det/adj/inverse)
//	quat/      unit quaternions used as rotation inputs
//	transform/ translation, rotation, scale, look-at and projection builders
//	convert/   interop with golang.org/x/image/math/f32 and f64
//
// cmd/wirecube renders an animated wireframe scene (YAML in, WebP/PNG frames
// out) on top of these packages.
//
// Every vector and matrix is a value: assignment copies the elements and no
// two values ever share storage. Dimensions are fixed when a value is built;
// every operation that may receive mismatched shapes returns a sentinel error
// (errors.Is friendly). Wrap a call with Must to turn contract violations into
// panics while debugging.
//
// Quick example:
//
//	model := transform.Translate[float32](1, 2, 3)
//	p := dmath.Must(model.MulVec(dmath.Must(vector.New[float32](0, 0, 0, 1))))
//	fmt.Println(p) // (1.0000, 2.0000, 3.0000, 1.0000)
//
//	go get github.com/katalvlaran/dmath
package dmath
