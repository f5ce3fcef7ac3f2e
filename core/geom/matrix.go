package geom

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrSingular is returned when a transform has no inverse.
var ErrSingular = errors.New("geom: singular transform")

// singularEpsilon is the determinant magnitude below which a transform is
// treated as non-invertible.
const singularEpsilon = 1e-12

// Matrix3D is a homogeneous 4x4 affine transform.
//
// The zero value is not a valid transform; use Identity.
type Matrix3D struct {
	m mgl64.Mat4
}

func Identity() Matrix3D { return Matrix3D{m: mgl64.Ident4()} }

func Translation(v Vector3D) Matrix3D { return Matrix3D{m: mgl64.Translate3D(v.X, v.Y, v.Z)} }
func Scaling(x, y, z float64) Matrix3D { return Matrix3D{m: mgl64.Scale3D(x, y, z)} }

// RotationX returns a right-handed rotation of rad radians about the X axis.
func RotationX(rad float64) Matrix3D { return Matrix3D{m: mgl64.HomogRotate3DX(rad)} }
func RotationY(rad float64) Matrix3D { return Matrix3D{m: mgl64.HomogRotate3DY(rad)} }
func RotationZ(rad float64) Matrix3D { return Matrix3D{m: mgl64.HomogRotate3DZ(rad)} }

// FromMat4 wraps an mgl64 matrix.
func FromMat4(m mgl64.Mat4) Matrix3D { return Matrix3D{m: m} }

// Mat4 returns the underlying column-major matrix.
func (a Matrix3D) Mat4() mgl64.Mat4 { return a.m }

// At returns the element at (row, col).
func (a Matrix3D) At(row, col int) float64 { return a.m.At(row, col) }

// Set assigns the element at (row, col).
func (a *Matrix3D) Set(row, col int, v float64) { a.m.Set(row, col, v) }

// Mul returns a*b, i.e. b is applied first.
func (a Matrix3D) Mul(b Matrix3D) Matrix3D { return Matrix3D{m: a.m.Mul4(b.m)} }

// MulPoint transforms p including translation.
func (a Matrix3D) MulPoint(p Point3D) Point3D {
	r := a.m.Mul4x1(p.vec4())
	if w := r[3]; w != 1 && w != 0 {
		return Point3D{r[0] / w, r[1] / w, r[2] / w}
	}
	return Point3D{r[0], r[1], r[2]}
}

// MulVector transforms v ignoring translation.
func (a Matrix3D) MulVector(v Vector3D) Vector3D {
	r := a.m.Mul4x1(v.vec4(0))
	return Vector3D{r[0], r[1], r[2]}
}

// Det returns the determinant.
func (a Matrix3D) Det() float64 { return a.m.Det() }

// Inverse returns the inverse transform.
//
// Rotation, translation and reflection composites are handled by the general
// 4x4 inverse; a (near) zero determinant yields ErrSingular.
func (a Matrix3D) Inverse() (Matrix3D, error) {
	det := a.m.Det()
	if math.Abs(det) < singularEpsilon || math.IsNaN(det) {
		return Matrix3D{}, ErrSingular
	}
	return Matrix3D{m: a.m.Inv()}, nil
}

// ApproxEqual reports whether every element differs by at most eps.
func (a Matrix3D) ApproxEqual(b Matrix3D, eps float64) bool {
	for i := range a.m {
		if !within(a.m[i], b.m[i], eps) {
			return false
		}
	}
	return true
}
