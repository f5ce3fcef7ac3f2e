package shape

import (
	"fmt"
	"math"

	"raycaster/core/geom"
)

// Sphere is defined by its centre and radius.
type Sphere struct {
	base

	radius  float64
	radius2 float64
}

// NewSphere builds a sphere. A zero radius is allowed and is never hit.
func NewSphere(centre geom.Point3D, radius float64) (*Sphere, error) {
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("sphere radius %v: %w", radius, ErrDegenerate)
	}
	return &Sphere{base: newBase(centre), radius: radius, radius2: radius * radius}, nil
}

func (s *Sphere) Radius() float64 { return s.radius }

func (s *Sphere) MaxRadius() (float64, bool) { return s.radius, true }

// Intersect returns the near entry point of the ray.
//
// Only closest approaches ahead of src count, and the far intersection is
// never reported, so any ray starting inside the sphere is a miss. Scenes are
// expected to keep the camera outside every sphere.
func (s *Sphere) Intersect(src geom.Point3D, dir geom.Vector3D) (float64, bool) {
	toCentre := s.centre.Sub(src)
	tc := toCentre.Dot(dir)
	if tc <= 0 {
		return 0, false
	}

	d2 := toCentre.LenSq() - tc*tc
	if d2 >= s.radius2 {
		return 0, false
	}
	t := tc - math.Sqrt(s.radius2-d2)
	if t < 0 {
		return 0, false
	}
	return t, true
}

// ApplyTransformation moves the centre. The radius is invariant under the
// rigid transforms the camera uses.
func (s *Sphere) ApplyTransformation(m geom.Matrix3D) {
	s.centre = m.MulPoint(s.centre)
}
