package app

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"raycaster/core/camera"
	"raycaster/core/geom"
)

// Config controls the viewer.
type Config struct {
	// View plane.
	Width      int
	Height     int
	HalfWidth  float64
	HalfHeight float64
	Distance   float64

	// Initial camera pose. Rotation holds Euler angles in radians.
	Position geom.Point3D
	Rotation geom.Vector3D

	// Orbit spins the camera around the world Y axis at OrbitSpeed rad/s.
	Orbit      bool
	OrbitSpeed float64

	// MoveStep and TurnStep are applied per key event.
	MoveStep float64
	TurnStep float64

	Background color.RGBA
	HUD        bool

	// StatsEvery logs a frame statistics line every N frames (0 = never).
	StatsEvery uint64
}

// DefaultConfig matches camera.DefaultViewPlane with the camera pulled back
// to see the default scene.
func DefaultConfig() Config {
	vp := camera.DefaultViewPlane()
	return Config{
		Width:      vp.ResolutionX,
		Height:     vp.ResolutionY,
		HalfWidth:  vp.HalfWidth,
		HalfHeight: vp.HalfHeight,
		Distance:   vp.Distance,
		Position:   geom.P3(0, 1, 9),
		Rotation:   geom.V3(-0.1, 0, 0),
		OrbitSpeed: 0.5,
		MoveStep:   0.25,
		TurnStep:   math.Pi / 90,
		Background: color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF},
		HUD:        true,
		StatsEvery: 120,
	}
}

// ViewPlane returns the camera view plane described by cfg.
func (cfg Config) ViewPlane() camera.ViewPlane {
	return camera.ViewPlane{
		ResolutionX: cfg.Width,
		ResolutionY: cfg.Height,
		HalfWidth:   cfg.HalfWidth,
		HalfHeight:  cfg.HalfHeight,
		Distance:    cfg.Distance,
	}
}

func (cfg Config) Validate() error {
	if err := cfg.ViewPlane().Validate(); err != nil {
		return err
	}
	if cfg.MoveStep < 0 || cfg.TurnStep < 0 {
		return errors.New("move and turn steps must not be negative")
	}
	return nil
}

// ParseVec3 parses "x y z" (commas are accepted as separators).
func ParseVec3(s string) (geom.Vector3D, error) {
	var v geom.Vector3D
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 3 {
		return v, fmt.Errorf("invalid vector %q, expected \"x y z\"", s)
	}
	if _, err := fmt.Sscan(strings.Join(fields, " "), &v.X, &v.Y, &v.Z); err != nil {
		return v, fmt.Errorf("invalid vector %q: %w", s, err)
	}
	if !v.IsFinite() {
		return v, fmt.Errorf("invalid vector %q: not finite", s)
	}
	return v, nil
}

// ParseSize parses "W H" or "WxH".
func ParseSize(s string) (w, h int, err error) {
	fields := strings.Fields(strings.NewReplacer("x", " ", "X", " ", ",", " ").Replace(s))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q, expected \"W H\"", s)
	}
	if _, err := fmt.Sscan(fields[0]+" "+fields[1], &w, &h); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: must be positive", s)
	}
	return w, h, nil
}

// ParseColour parses "#rrggbb".
func ParseColour(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xFF}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q, expected #rrggbb: %w", s, err)
	}
	return c, nil
}
