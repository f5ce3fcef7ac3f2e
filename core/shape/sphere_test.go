package shape

import (
	"errors"
	"math"
	"testing"

	"raycaster/core/geom"
)

func mustSphere(t *testing.T, c geom.Point3D, r float64) *Sphere {
	t.Helper()
	s, err := NewSphere(c, r)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return s
}

func TestSphereHit(t *testing.T) {
	s := mustSphere(t, geom.P3(0, 0, 0), 1)

	d, ok := s.Intersect(geom.P3(0, 0, -5), geom.V3(0, 0, 1))
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.Abs(d-4) > 1e-12 {
		t.Fatalf("dist=%v", d)
	}
}

func TestSphereMiss(t *testing.T) {
	s := mustSphere(t, geom.P3(10, 0, 0), 1)
	if _, ok := s.Intersect(geom.P3(0, 0, -5), geom.V3(0, 0, 1)); ok {
		t.Fatalf("expected miss")
	}
}

func TestSphereBehindRay(t *testing.T) {
	s := mustSphere(t, geom.P3(0, 0, -10), 1)
	if _, ok := s.Intersect(geom.P3(0, 0, -5), geom.V3(0, 0, 1)); ok {
		t.Fatalf("sphere behind the ray was hit")
	}
}

func TestSphereOriginInsideIsMiss(t *testing.T) {
	s := mustSphere(t, geom.P3(0, 0, 0.5), 2)
	if d, ok := s.Intersect(geom.P3(0, 0, 0), geom.V3(0, 0, 1)); ok {
		t.Fatalf("hit from inside, dist=%v", d)
	}
}

func TestSphereGrazing(t *testing.T) {
	s := mustSphere(t, geom.P3(1, 0, 0), 1)
	// Tangent rays are not hits.
	if _, ok := s.Intersect(geom.P3(0, 0, -5), geom.V3(0, 0, 1)); ok {
		t.Fatalf("tangent ray reported as hit")
	}
}

func TestSphereTransform(t *testing.T) {
	s := mustSphere(t, geom.P3(1, 2, 3), 1.5)
	m := geom.Translation(geom.V3(-1, -2, -3)).Mul(geom.RotationY(0.8))
	want := m.MulPoint(geom.P3(1, 2, 3))

	s.ApplyTransformation(m)
	if !s.Centre().ApproxEqual(want, 1e-12) {
		t.Fatalf("centre=%v want=%v", s.Centre(), want)
	}
	if s.Radius() != 1.5 {
		t.Fatalf("radius=%v", s.Radius())
	}
}

func TestSphereInvalid(t *testing.T) {
	for _, r := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := NewSphere(geom.P3(0, 0, 0), r); !errors.Is(err, ErrDegenerate) {
			t.Fatalf("r=%v err=%v", r, err)
		}
	}
	s := mustSphere(t, geom.P3(0, 0, 0), 0)
	if _, ok := s.Intersect(geom.P3(0, 0, -5), geom.V3(0, 0, 1)); ok {
		t.Fatalf("zero radius sphere was hit")
	}
}

func TestSphereDefaultColour(t *testing.T) {
	s := mustSphere(t, geom.P3(0, 0, 0), 1)
	if s.Colour() != DefaultColour {
		t.Fatalf("colour=%v", s.Colour())
	}
	var o Object = s
	if r, ok := o.MaxRadius(); !ok || r != 1 {
		t.Fatalf("MaxRadius=%v,%v", r, ok)
	}
}
