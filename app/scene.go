package app

import (
	"image/color"

	"raycaster/core/geom"
	"raycaster/core/shape"
)

// DefaultScene returns a floor, a back wall and three spheres.
func DefaultScene() ([]shape.Object, error) {
	floor, err := shape.NewPlane(geom.P3(0, -1, 0), geom.V3(0, 1, 0), geom.V3(0, 0, 1), 0, 0)
	if err != nil {
		return nil, err
	}
	floor.SetColour(color.RGBA{R: 0x40, G: 0x60, B: 0x40, A: 0xFF})

	wall, err := shape.NewPlane(geom.P3(0, 1.5, -4), geom.V3(0, 0, 1), geom.V3(0, 1, 0), 10, 5)
	if err != nil {
		return nil, err
	}
	wall.SetColour(color.RGBA{R: 0x90, G: 0x90, B: 0xA0, A: 0xFF})

	spheres := []struct {
		centre geom.Point3D
		radius float64
		colour color.RGBA
	}{
		{geom.P3(0, 0, 0), 1, color.RGBA{R: 0xE0, G: 0x30, B: 0x30, A: 0xFF}},
		{geom.P3(-2.2, -0.4, 1), 0.6, color.RGBA{R: 0x30, G: 0x80, B: 0xE0, A: 0xFF}},
		{geom.P3(2, 0.2, -1.5), 1.2, color.RGBA{R: 0xE0, G: 0xC0, B: 0x30, A: 0xFF}},
	}

	objs := []shape.Object{floor, wall}
	for _, s := range spheres {
		sp, err := shape.NewSphere(s.centre, s.radius)
		if err != nil {
			return nil, err
		}
		sp.SetColour(s.colour)
		objs = append(objs, sp)
	}
	return objs, nil
}
