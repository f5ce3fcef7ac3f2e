package app

import (
	"flag"
	"fmt"
	"strconv"

	"raycaster/core/geom"
)

// BindFlags registers the scene and camera flags shared by the viewer and
// rcsnap. Parsed values are written into cfg.
func BindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Func("res", fmt.Sprintf("View plane resolution \"W H\" or WxH (default %dx%d).", cfg.Width, cfg.Height), func(s string) error {
		w, h, err := ParseSize(s)
		if err != nil {
			return err
		}
		cfg.Width, cfg.Height = w, h
		return nil
	})
	fs.Func("pos", fmt.Sprintf("Camera position \"x y z\" (default %s).", vecFlag(cfg.Position.AsVector())), func(s string) error {
		v, err := ParseVec3(s)
		if err != nil {
			return err
		}
		cfg.Position = v.AsPoint()
		return nil
	})
	fs.Func("rot", fmt.Sprintf("Camera rotation in radians \"x y z\" (default %s).", vecFlag(cfg.Rotation)), func(s string) error {
		v, err := ParseVec3(s)
		if err != nil {
			return err
		}
		cfg.Rotation = v
		return nil
	})
	fs.Func("bg", fmt.Sprintf("Background colour #rrggbb (default #%02x%02x%02x).", cfg.Background.R, cfg.Background.G, cfg.Background.B), func(s string) error {
		c, err := ParseColour(s)
		if err != nil {
			return err
		}
		cfg.Background = c
		return nil
	})
	fs.Float64Var(&cfg.Distance, "dist", cfg.Distance, "Distance from the camera to the view plane.")
	fs.Float64Var(&cfg.HalfWidth, "half-width", cfg.HalfWidth, "Half width of the view plane in world units.")
	fs.Float64Var(&cfg.HalfHeight, "half-height", cfg.HalfHeight, "Half height of the view plane in world units.")
	fs.BoolVar(&cfg.HUD, "hud", cfg.HUD, "Draw the pose overlay.")
}

func vecFlag(v geom.Vector3D) string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	return fmt.Sprintf("%q", f(v.X)+" "+f(v.Y)+" "+f(v.Z))
}
