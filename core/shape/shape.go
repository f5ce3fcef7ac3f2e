// Package shape implements the scene primitives tested by the camera.
package shape

import (
	"errors"
	"image/color"

	"raycaster/core/geom"
)

// ErrDegenerate is returned when a primitive cannot be built from its inputs.
var ErrDegenerate = errors.New("shape: degenerate geometry")

// DefaultColour is the colour assigned to new objects.
var DefaultColour = color.RGBA{R: 126, G: 126, B: 126, A: 0xFF}

// parallelEpsilon bounds |dot(dir, normal)| below which a ray is treated as
// parallel to a plane.
const parallelEpsilon = 1e-12

// Object is anything the camera can cast rays against.
//
// Objects are owned by the caller. The camera only reads them and moves them
// temporarily into camera space for the duration of a render pass.
type Object interface {
	// Intersect returns the distance along dir from src to the nearest
	// intersection in front of src. dir must be unit length.
	Intersect(src geom.Point3D, dir geom.Vector3D) (float64, bool)

	// ApplyTransformation moves the object by m. Only rigid transforms (plus
	// reflections) are supported.
	ApplyTransformation(m geom.Matrix3D)

	// Centre is the reference point of the object.
	Centre() geom.Point3D

	// MaxRadius bounds the distance of any surface point from Centre.
	// Unbounded objects report false.
	MaxRadius() (float64, bool)

	Colour() color.RGBA
}

// base carries the state shared by all primitives.
type base struct {
	centre geom.Point3D
	colour color.RGBA
}

func newBase(centre geom.Point3D) base {
	return base{centre: centre, colour: DefaultColour}
}

func (b *base) Centre() geom.Point3D     { return b.centre }
func (b *base) Colour() color.RGBA       { return b.colour }
func (b *base) SetColour(c color.RGBA)   { b.colour = c }
func (b *base) SetCentre(p geom.Point3D) { b.centre = p }
