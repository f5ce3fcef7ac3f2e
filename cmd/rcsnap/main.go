// Command rcsnap renders one frame of the default scene to a PNG or PPM file.
package main

import (
	"flag"
	"fmt"
	"os"

	"raycaster/app"
	"raycaster/hal"
	"raycaster/internal/snapshot"
)

func main() {
	cfg := app.DefaultConfig()
	cfg.HUD = false
	cfg.StatsEvery = 0
	app.BindFlags(flag.CommandLine, &cfg)
	out := flag.String("out", "", "Output file (.png or .ppm).")
	flag.Parse()

	if *out == "" {
		fatalf("usage: rcsnap -out frame.png [-res 320x240] [-pos \"x y z\"] [-rot \"x y z\"]")
	}
	if err := render(*out, cfg); err != nil {
		fatalf("rcsnap: %v", err)
	}
}

func render(path string, cfg app.Config) error {
	h := hal.New(cfg.Width, cfg.Height)
	v, err := app.New(h, cfg, nil)
	if err != nil {
		return err
	}
	if err := v.RenderFrame(); err != nil {
		return err
	}
	return snapshot.Save(path, hal.Snapshot(h))
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
