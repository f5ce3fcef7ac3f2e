package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3D is a direction or displacement in 3D space.
type Vector3D struct {
	X, Y, Z float64
}

// Point3D is a position in 3D space.
type Point3D struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vector3D { return Vector3D{X: x, Y: y, Z: z} }
func P3(x, y, z float64) Point3D  { return Point3D{X: x, Y: y, Z: z} }

func (v Vector3D) Add(o Vector3D) Vector3D   { return Vector3D{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3D) Sub(o Vector3D) Vector3D   { return Vector3D{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3D) Scale(s float64) Vector3D  { return Vector3D{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3D) Neg() Vector3D             { return Vector3D{-v.X, -v.Y, -v.Z} }
func (v Vector3D) Dot(o Vector3D) float64    { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vector3D) LenSq() float64            { return v.Dot(v) }
func (v Vector3D) Len() float64              { return math.Sqrt(v.LenSq()) }
func (v Vector3D) IsZero() bool              { return v == Vector3D{} }
func (v Vector3D) String() string            { return fmt.Sprintf("<%.3f, %.3f, %.3f>", v.X, v.Y, v.Z) }
func (v Vector3D) AsPoint() Point3D          { return Point3D(v) }
func (v Vector3D) vec4(w float64) mgl64.Vec4 { return mgl64.Vec4{v.X, v.Y, v.Z, w} }

// Cross returns v x o. It is anti-commutative: a.Cross(b) == b.Cross(a).Neg().
func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Normalise scales v to unit length in place.
//
// A zero or non-finite length leaves v untouched and reports false.
func (v *Vector3D) Normalise() bool {
	l := v.Len()
	if l == 0 || math.IsInf(l, 0) || math.IsNaN(l) {
		return false
	}
	inv := 1 / l
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
	return true
}

// Normalised returns a unit-length copy of v, or v itself if it cannot be
// normalised.
func (v Vector3D) Normalised() Vector3D {
	v.Normalise()
	return v
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3D) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func (p Point3D) Add(v Vector3D) Point3D    { return Point3D{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }
func (p Point3D) SubVec(v Vector3D) Point3D { return Point3D{p.X - v.X, p.Y - v.Y, p.Z - v.Z} }
func (p Point3D) AsVector() Vector3D        { return Vector3D(p) }
func (p Point3D) String() string            { return fmt.Sprintf("(%.3f, %.3f, %.3f)", p.X, p.Y, p.Z) }
func (p Point3D) vec4() mgl64.Vec4          { return mgl64.Vec4{p.X, p.Y, p.Z, 1} }

// Sub returns the vector from o to p.
func (p Point3D) Sub(o Point3D) Vector3D { return Vector3D{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vector3D) ApproxEqual(o Vector3D, eps float64) bool {
	return within(v.X, o.X, eps) && within(v.Y, o.Y, eps) && within(v.Z, o.Z, eps)
}

func (p Point3D) ApproxEqual(o Point3D, eps float64) bool {
	return p.AsVector().ApproxEqual(o.AsVector(), eps)
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func within(a, b, eps float64) bool { return math.Abs(a-b) <= eps }
