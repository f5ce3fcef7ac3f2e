package camera

import (
	"math"

	"raycaster/core/shape"
)

// footprint is a half-open pixel rectangle [startX, endX) x [startY, endY).
type footprint struct {
	startX, endX int
	startY, endY int
}

func (c *Camera) fullFootprint() footprint {
	return footprint{endX: c.viewPlane.ResolutionX, endY: c.viewPlane.ResolutionY}
}

// footprint returns the pixels obj can cover. obj must already be in camera
// space. It reports false when obj lies entirely behind the camera.
//
// Unbounded objects, and objects that reach the camera plane, cover the whole
// view plane. Otherwise the projected centre is expanded by the larger of the
// bounding radius in pixels and the perspective bound of the bounding sphere.
func (c *Camera) footprint(obj shape.Object) (footprint, bool) {
	r, bounded := obj.MaxRadius()
	if !bounded {
		return c.fullFootprint(), true
	}
	r = math.Abs(r)

	centre := obj.Centre()
	if centre.Z+r <= 0 {
		return footprint{}, false
	}
	if centre.Z-r <= 0 {
		return c.fullFootprint(), true
	}

	vp := c.viewPlane
	t := vp.Distance / centre.Z
	viewX := centre.X*t + vp.HalfWidth
	viewY := centre.Y*t + vp.HalfHeight

	// Any point within r of the centre projects within these offsets of the
	// projected centre.
	k := vp.Distance * r / ((centre.Z - r) * centre.Z)
	boundX := math.Max(r, k*math.Hypot(centre.Z, centre.X))
	boundY := math.Max(r, k*math.Hypot(centre.Z, centre.Y))

	startX, endX := pixelSpan(viewX, boundX, c.pixelWidth, vp.ResolutionX)
	startY, endY := pixelSpan(viewY, boundY, c.pixelHeight, vp.ResolutionY)
	if startX >= endX || startY >= endY {
		return footprint{}, false
	}
	return footprint{startX: startX, endX: endX, startY: startY, endY: endY}, true
}

// pixelSpan converts [centre-bound, centre+bound] in view plane units into a
// clamped half-open pixel range, padded by one pixel on each side.
func pixelSpan(centre, bound, pixelSize float64, resolution int) (int, int) {
	lo := math.Floor((centre-bound)/pixelSize) - 1
	hi := math.Ceil((centre+bound)/pixelSize) + 2
	return clampIndex(lo, resolution), clampIndex(hi, resolution)
}

func clampIndex(v float64, resolution int) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > float64(resolution) {
		return resolution
	}
	return int(v)
}
