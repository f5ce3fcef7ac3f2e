// Package geom provides the linear algebra used by the ray caster.
//
// Points and vectors are plain float64 triples. Matrix3D is a homogeneous 4x4
// affine transform stored column-major (m[col*4+row]) on top of mgl64.Mat4, so
// element access by (row, column) matches the usual mathematical notation.
//
// Points are transformed with translation applied; vectors ignore it.
package geom
