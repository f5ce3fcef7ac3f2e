package shape

import (
	"fmt"
	"math"

	"raycaster/core/geom"
)

// Plane is a flat surface through a centre point, optionally limited to a
// rectangle measured along its width and height directions.
type Plane struct {
	base

	normal     geom.Vector3D
	widthDir   geom.Vector3D
	heightDir  geom.Vector3D
	halfWidth  float64
	halfHeight float64

	bounded      bool
	halfDiagonal float64
}

// NewPlane builds a plane. up gives the direction along which height is
// measured; its component along normal is discarded, so the stored axes are
// always orthogonal to the normal and to each other. A width or height <= 0
// makes the plane infinite, in which case up is ignored.
func NewPlane(centre geom.Point3D, normal, up geom.Vector3D, width, height float64) (*Plane, error) {
	p := &Plane{
		base:       newBase(centre),
		normal:     normal,
		heightDir:  up,
		halfWidth:  width / 2,
		halfHeight: height / 2,
	}
	if !p.normal.Normalise() {
		return nil, fmt.Errorf("plane normal %v: %w", normal, ErrDegenerate)
	}

	p.bounded = p.halfWidth > 0 && p.halfHeight > 0
	if !p.bounded {
		return p, nil
	}

	p.widthDir = p.heightDir.Cross(p.normal)
	if !p.widthDir.Normalise() {
		return nil, fmt.Errorf("plane up %v parallel to normal: %w", up, ErrDegenerate)
	}
	p.heightDir = p.normal.Cross(p.widthDir)
	p.halfDiagonal = math.Sqrt(p.halfWidth*p.halfWidth + p.halfHeight*p.halfHeight)
	return p, nil
}

// Normal returns the unit plane normal.
func (p *Plane) Normal() geom.Vector3D { return p.normal }

// Axes returns the width and height directions. Both are zero for an
// infinite plane.
func (p *Plane) Axes() (width, height geom.Vector3D) { return p.widthDir, p.heightDir }

func (p *Plane) Bounded() bool { return p.bounded }

func (p *Plane) HalfExtents() (w, h float64) { return p.halfWidth, p.halfHeight }

func (p *Plane) MaxRadius() (float64, bool) {
	if !p.bounded {
		return 0, false
	}
	return p.halfDiagonal, true
}

// Intersect solves t = dot(centre - src, n) / dot(dir, n).
//
// Rays parallel to the plane and intersections behind src are misses. For a
// bounded plane the hit must lie strictly inside both half extents.
func (p *Plane) Intersect(src geom.Point3D, dir geom.Vector3D) (float64, bool) {
	denom := dir.Dot(p.normal)
	if math.Abs(denom) < parallelEpsilon {
		return 0, false
	}

	t := p.centre.Sub(src).Dot(p.normal) / denom
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, false
	}
	if !p.bounded {
		return t, true
	}

	rel := src.Add(dir.Scale(t)).Sub(p.centre)
	u := rel.Dot(p.widthDir)
	v := rel.Dot(p.heightDir)
	if u <= -p.halfWidth || u >= p.halfWidth || v <= -p.halfHeight || v >= p.halfHeight {
		return 0, false
	}
	return t, true
}

func (p *Plane) ApplyTransformation(m geom.Matrix3D) {
	p.centre = m.MulPoint(p.centre)
	p.normal = m.MulVector(p.normal)
	p.widthDir = m.MulVector(p.widthDir)
	p.heightDir = m.MulVector(p.heightDir)
}
