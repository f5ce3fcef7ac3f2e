package camera

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"raycaster/core/geom"
	"raycaster/core/shape"
)

// ErrNotInitialised is returned by UpdatePixelBuffer before Init.
var ErrNotInitialised = errors.New("camera: pixel buffer not initialised")

// Camera renders a list of objects into its pixel buffer.
//
// A Camera is not safe for concurrent use. Results read through ObjectInfoAt
// and ColourAtPixel are valid until the next UpdatePixelBuffer.
type Camera struct {
	viewPlane ViewPlane
	pixelBuf  PixelBuffer

	position geom.Point3D
	rotation geom.Vector3D // Euler angles in radians about X, Y and Z

	cameraToWorld         geom.Matrix3D
	worldTransformChanged bool

	pixelWidth  float64
	pixelHeight float64

	background color.RGBA

	// objects of the most recent pass; borrowed, never modified outside a pass.
	objects []shape.Object
}

// New returns a camera for vp. Init must be called before rendering.
func New(vp ViewPlane) *Camera {
	return &Camera{
		viewPlane:             vp,
		cameraToWorld:         geom.Identity(),
		worldTransformChanged: true,
	}
}

// Init places the camera at pos and sizes the pixel buffer to the view plane
// resolution.
func (c *Camera) Init(pos geom.Point3D) error {
	if err := c.viewPlane.Validate(); err != nil {
		return err
	}
	c.SetPosition(pos)
	c.pixelBuf.Init(c.viewPlane.ResolutionX, c.viewPlane.ResolutionY)
	c.pixelWidth, c.pixelHeight = c.viewPlane.PixelSize()
	c.objects = nil
	return nil
}

func (c *Camera) ViewPlane() ViewPlane       { return c.viewPlane }
func (c *Camera) Position() geom.Point3D     { return c.position }
func (c *Camera) Rotation() geom.Vector3D    { return c.rotation }
func (c *Camera) Background() color.RGBA     { return c.background }
func (c *Camera) SetBackground(bg color.RGBA) { c.background = bg }

// PixelBuffer exposes the hit records of the last pass. Callers must not
// modify it.
func (c *Camera) PixelBuffer() *PixelBuffer { return &c.pixelBuf }

func (c *Camera) SetPosition(pos geom.Point3D) {
	if pos != c.position {
		c.position = pos
		c.worldTransformChanged = true
	}
}

// SetRotation sets the Euler angles (radians) about the X, Y and Z axes.
// Rotations are applied X first, then Y, then Z.
func (c *Camera) SetRotation(rot geom.Vector3D) {
	if rot != c.rotation {
		c.rotation = rot
		c.worldTransformChanged = true
	}
}

// Move translates the camera by d in world space.
func (c *Camera) Move(d geom.Vector3D) { c.SetPosition(c.position.Add(d)) }

// Rotate adds d to the Euler angles.
func (c *Camera) Rotate(d geom.Vector3D) { c.SetRotation(c.rotation.Add(d)) }

// WorldTransform returns the current camera-to-world transform, recomputing
// it if the position or rotation changed.
func (c *Camera) WorldTransform() geom.Matrix3D {
	if c.worldTransformChanged {
		c.updateWorldTransform()
		c.worldTransformChanged = false
	}
	return c.cameraToWorld
}

// updateWorldTransform builds T(position) * Rz * Ry * Rx * S(1, 1, -1). The
// final scale converts the left-handed camera space into world space.
func (c *Camera) updateWorldTransform() {
	c.cameraToWorld = geom.Translation(c.position.AsVector()).
		Mul(geom.RotationZ(c.rotation.Z)).
		Mul(geom.RotationY(c.rotation.Y)).
		Mul(geom.RotationX(c.rotation.X)).
		Mul(geom.Scaling(1, 1, -1))
}

// Forward returns the viewing direction in world space.
func (c *Camera) Forward() geom.Vector3D {
	return c.WorldTransform().MulVector(geom.V3(0, 0, 1))
}

// RayDirectionThroughPixel returns the unit direction, in camera space, of the
// ray from the camera through pixel (i, j) with 0 <= i < ResolutionX and
// 0 <= j < ResolutionY.
func (c *Camera) RayDirectionThroughPixel(i, j int) geom.Vector3D {
	d := geom.V3(
		float64(i)*c.pixelWidth-c.viewPlane.HalfWidth,
		float64(j)*c.pixelHeight-c.viewPlane.HalfHeight,
		c.viewPlane.Distance,
	)
	d.Normalise()
	return d
}

// UpdatePixelBuffer casts rays against objects and records the nearest hit
// for every pixel.
//
// Objects are temporarily transformed into camera space and always restored
// before returning, including when the pass fails or an object panics. When
// two objects are hit at exactly the same distance the one earlier in objects
// wins. A pass that fails leaves the pixel buffer from the previous pass.
func (c *Camera) UpdatePixelBuffer(objects []shape.Object) error {
	if !c.pixelBuf.IsInitialised() {
		return ErrNotInitialised
	}
	cameraToWorld := c.WorldTransform()
	worldToCamera, err := cameraToWorld.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}

	c.pixelBuf.Clear()
	c.objects = objects

	applied := 0
	defer func() {
		for _, obj := range objects[:applied] {
			obj.ApplyTransformation(cameraToWorld)
		}
	}()
	for _, obj := range objects {
		obj.ApplyTransformation(worldToCamera)
		applied++
	}

	var origin geom.Point3D
	for idx, obj := range objects {
		fp, ok := c.footprint(obj)
		if !ok {
			continue
		}
		for i := fp.startX; i < fp.endX; i++ {
			for j := fp.startY; j < fp.endY; j++ {
				dist, hit := obj.Intersect(origin, c.RayDirectionThroughPixel(i, j))
				if !hit || math.IsNaN(dist) || math.IsInf(dist, 0) {
					continue
				}
				if dist < c.pixelBuf.At(i, j).Distance {
					c.pixelBuf.Set(i, j, ObjectInfo{Index: idx, Distance: dist})
				}
			}
		}
	}
	return nil
}

// ObjectInfoAt returns the hit record for pixel (i, j).
func (c *Camera) ObjectInfoAt(i, j int) ObjectInfo { return c.pixelBuf.At(i, j) }

// ObjectAtPixel returns the object recorded for pixel (i, j) by the last pass.
func (c *Camera) ObjectAtPixel(i, j int) (shape.Object, bool) {
	oi := c.pixelBuf.At(i, j)
	if !oi.Hit() || oi.Index >= len(c.objects) {
		return nil, false
	}
	return c.objects[oi.Index], true
}

// ColourAtPixel returns the colour of the nearest object at pixel (i, j), or
// the background colour if nothing was hit.
func (c *Camera) ColourAtPixel(i, j int) color.RGBA {
	obj, ok := c.ObjectAtPixel(i, j)
	if !ok {
		return c.background
	}
	return obj.Colour()
}
