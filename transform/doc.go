// Package transform builds the 3D transform matrices used by graphics code:
// translation, rotation, scale, view (look-at) and projection.
//
// Conventions:
//
//   - Matrices are column-major (package matrix) and act on column vectors:
//     p' = M * p. Composition M = A * B applies B first.
//   - Full homogeneous transforms are 4×4 Squares. Reduced affine transforms
//     are 4×3 Matrices (4 columns, 3 rows) whose omitted last row is
//     (0, 0, 0, 1); Multiply composes them and AsMat4 expands them.
//   - Angles are degrees unless WithUnit(trig.Radians) is passed.
//   - Projections are right-handed. The ZO variants map view depth
//     [-near, -far] to NDC [0, 1] (Vulkan), the NO variants to [-1, 1] (OpenGL).
//
// Every builder is a pure function. Only the AddTranslation family mutates
// its argument, by overwriting the translation column in place.
package transform
