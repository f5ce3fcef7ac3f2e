package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"raycaster/app"
	"raycaster/hal"
	"raycaster/internal/buildinfo"
	"raycaster/internal/snapshot"
)

func main() {
	cfg := app.DefaultConfig()
	app.BindFlags(flag.CommandLine, &cfg)

	var headless hal.HeadlessConfig
	var (
		scale   = flag.Int("scale", 2, "Window scale factor.")
		out     = flag.String("out", "", "Write the last headless frame to this .png or .ppm file.")
		version = flag.Bool("version", false, "Print build information and exit.")
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.Orbit, "orbit", cfg.Orbit, "Orbit the camera around the scene.")
	flag.Float64Var(&cfg.OrbitSpeed, "orbit-speed", cfg.OrbitSpeed, "Orbit speed in radians per second.")
	flag.Uint64Var(&cfg.StatsEvery, "stats", cfg.StatsEvery, "Log frame statistics every N frames (0 = never).")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Line())
		return
	}
	if err := cfg.Validate(); err != nil {
		fatalf("config: %v", err)
	}
	fmt.Println(buildinfo.Line())

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	if headless.Enabled {
		headless.Width, headless.Height = cfg.Width, cfg.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var saveErr error
		done := func(h hal.HAL) {
			if *out == "" {
				return
			}
			saveErr = snapshot.Save(*out, hal.Snapshot(h))
		}
		err := hal.RunHeadless(ctx, newApp, headless, done)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, hal.ErrWindowClosed) {
			fatalf("%v", err)
		}
		if saveErr != nil {
			fatalf("snapshot: %v", saveErr)
		}
		return
	}

	if *out != "" {
		fatalf("-out requires -headless")
	}
	err := hal.RunWindow(hal.WindowConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  *scale,
		Title:  "raycaster (" + buildinfo.Short() + ")",
	}, newApp)
	if err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
