package camera

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidViewPlane is returned by Init when the view plane has a
// non-positive resolution, extent or distance.
var ErrInvalidViewPlane = errors.New("camera: invalid view plane")

// ViewPlane is the rectangle in camera space through which rays are cast. It
// is centred on the forward (+Z) axis at Distance from the camera and spans
// [-HalfWidth, HalfWidth] x [-HalfHeight, HalfHeight].
type ViewPlane struct {
	ResolutionX int
	ResolutionY int
	HalfWidth   float64
	HalfHeight  float64
	Distance    float64
}

// DefaultViewPlane returns a 320x240 plane whose aspect matches its
// resolution.
func DefaultViewPlane() ViewPlane {
	return ViewPlane{
		ResolutionX: 320,
		ResolutionY: 240,
		HalfWidth:   2,
		HalfHeight:  1.5,
		Distance:    2,
	}
}

func (vp ViewPlane) Validate() error {
	if vp.ResolutionX <= 0 || vp.ResolutionY <= 0 {
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidViewPlane, vp.ResolutionX, vp.ResolutionY)
	}
	if !positive(vp.HalfWidth) || !positive(vp.HalfHeight) {
		return fmt.Errorf("%w: half extents %vx%v", ErrInvalidViewPlane, vp.HalfWidth, vp.HalfHeight)
	}
	if !positive(vp.Distance) {
		return fmt.Errorf("%w: distance %v", ErrInvalidViewPlane, vp.Distance)
	}
	return nil
}

// PixelSize returns the width and height of one pixel in view plane units.
func (vp ViewPlane) PixelSize() (w, h float64) {
	if vp.ResolutionX <= 0 || vp.ResolutionY <= 0 {
		return 0, 0
	}
	return vp.HalfWidth * 2 / float64(vp.ResolutionX), vp.HalfHeight * 2 / float64(vp.ResolutionY)
}

func positive(f float64) bool { return f > 0 && !math.IsInf(f, 0) }
