// Package app drives the ray caster: it owns the camera and the scene,
// renders one frame per step into the HAL framebuffer and turns keyboard input
// into camera motion.
package app

import (
	"fmt"
	"math"

	"raycaster/core/camera"
	"raycaster/core/geom"
	"raycaster/core/shape"
	"raycaster/hal"
)

// Viewer renders a scene through a camera into a framebuffer.
type Viewer struct {
	cfg Config

	log hal.Logger
	fb  hal.Framebuffer
	kbd hal.Keyboard
	clk hal.Time

	cam     *camera.Camera
	objects []shape.Object

	frame  uint64
	millis uint64

	orbit       bool
	orbitRadius float64
	orbitAngle  float64
	hud         bool
	quit        bool

	disp *fbDisplay
}

// New sets up a viewer over h rendering objects. A nil objects slice renders
// DefaultScene.
func New(h hal.HAL, cfg Config, objects []shape.Object) (*Viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if objects == nil {
		var err error
		if objects, err = DefaultScene(); err != nil {
			return nil, fmt.Errorf("default scene: %w", err)
		}
	}

	v := &Viewer{
		cfg:     cfg,
		log:     h.Logger(),
		objects: objects,
		orbit:   cfg.Orbit,
		hud:     cfg.HUD,
	}
	if d := h.Display(); d != nil {
		v.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil {
		v.kbd = in.Keyboard()
	}
	v.clk = h.Time()
	v.disp = newFBDisplay(v.fb)

	v.cam = camera.New(cfg.ViewPlane())
	if err := v.cam.Init(cfg.Position); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	v.cam.SetRotation(cfg.Rotation)
	v.cam.SetBackground(cfg.Background)

	v.orbitRadius = math.Hypot(cfg.Position.X, cfg.Position.Z)
	v.orbitAngle = math.Atan2(cfg.Position.X, cfg.Position.Z)

	v.logf("viewer: %dx%d objects=%d pos=%v rot=%v", cfg.Width, cfg.Height, len(objects), cfg.Position, cfg.Rotation)
	return v, nil
}

// NewWithConfig returns the step function used by hal.RunWindow and
// hal.RunHeadless. Setup errors are reported from the first step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	v, err := New(h, cfg, nil)
	if err != nil {
		v := &Viewer{log: h.Logger()}
		v.logf("viewer: %v", err)
		return func() error { return err }
	}
	return v.Step
}

func (v *Viewer) Camera() *camera.Camera   { return v.cam }
func (v *Viewer) Objects() []shape.Object { return v.objects }
func (v *Viewer) Frame() uint64           { return v.frame }

// Step handles pending input, renders one frame and presents it.
func (v *Viewer) Step() error {
	v.drainTicks()
	v.handleInput()
	if v.quit {
		return hal.ErrWindowClosed
	}
	if v.orbit {
		v.updateOrbit()
	}
	return v.RenderFrame()
}

// RenderFrame runs a render pass and copies the result to the framebuffer.
// A panic inside the pass is reported on screen and returned as an error.
func (v *Viewer) RenderFrame() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panic: %v", r)
			v.showPanic(r)
		}
	}()

	if err := v.cam.UpdatePixelBuffer(v.objects); err != nil {
		v.logf("render: %v", err)
		return err
	}
	v.frame++

	if v.fb != nil {
		v.blit()
		if v.hud {
			v.drawHUD()
		}
		if err := v.fb.Present(); err != nil {
			return fmt.Errorf("present: %w", err)
		}
	}

	if every := v.cfg.StatsEvery; every > 0 && v.frame%every == 0 {
		v.logf("frame=%d hits=%d pos=%v rot=%v", v.frame, v.cam.PixelBuffer().Hits(), v.cam.Position(), v.cam.Rotation())
	}
	return nil
}

// blit copies camera colours into the framebuffer. The view plane's j = 0 row
// is the bottom of the screen; sizes that differ from the view plane are
// scaled nearest-neighbour.
func (v *Viewer) blit() {
	if v.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := v.fb.Buffer()
	stride := v.fb.StrideBytes()
	w, h := v.fb.Width(), v.fb.Height()
	if buf == nil || stride <= 0 || w <= 0 || h <= 0 {
		return
	}

	resX, resY := v.cfg.Width, v.cfg.Height
	for y := 0; y < h; y++ {
		j := (h - 1 - y) * resY / h
		row := y * stride
		for x := 0; x < w; x++ {
			i := x * resX / w
			pixel := hal.RGB565(v.cam.ColourAtPixel(i, j))
			off := row + x*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = byte(pixel)
			buf[off+1] = byte(pixel >> 8)
		}
	}
}

func (v *Viewer) drainTicks() {
	if v.clk == nil {
		return
	}
	ch := v.clk.Ticks()
	for {
		select {
		case seq := <-ch:
			v.millis = seq
		default:
			return
		}
	}
}

func (v *Viewer) updateOrbit() {
	angle := v.orbitAngle + v.cfg.OrbitSpeed*float64(v.millis)/1000
	pos := v.cam.Position()
	v.cam.SetPosition(geom.P3(v.orbitRadius*math.Sin(angle), pos.Y, v.orbitRadius*math.Cos(angle)))
	rot := v.cam.Rotation()
	v.cam.SetRotation(geom.V3(rot.X, angle, rot.Z))
}

func (v *Viewer) handleInput() {
	if v.kbd == nil {
		return
	}
	ch := v.kbd.Events()
	for {
		select {
		case ev := <-ch:
			if ev.Press {
				v.handleKey(ev)
			}
		default:
			return
		}
	}
}

func (v *Viewer) handleKey(ev hal.KeyEvent) {
	turn := v.cfg.TurnStep
	move := v.cfg.MoveStep

	switch ev.Code {
	case hal.KeyLeft:
		v.cam.Rotate(geom.V3(0, turn, 0))
		return
	case hal.KeyRight:
		v.cam.Rotate(geom.V3(0, -turn, 0))
		return
	case hal.KeyUp:
		v.cam.Rotate(geom.V3(turn, 0, 0))
		return
	case hal.KeyDown:
		v.cam.Rotate(geom.V3(-turn, 0, 0))
		return
	case hal.KeyEscape:
		v.quit = true
		return
	case hal.KeySpace:
		v.setOrbit(!v.orbit)
		return
	}

	world := v.cam.WorldTransform()
	forward := world.MulVector(geom.V3(0, 0, 1))
	right := world.MulVector(geom.V3(1, 0, 0))

	switch ev.Rune {
	case 'w':
		v.cam.Move(forward.Scale(move))
	case 's':
		v.cam.Move(forward.Scale(-move))
	case 'd':
		v.cam.Move(right.Scale(move))
	case 'a':
		v.cam.Move(right.Scale(-move))
	case 'e':
		v.cam.Move(geom.V3(0, move, 0))
	case 'q':
		v.cam.Move(geom.V3(0, -move, 0))
	case 'h':
		v.hud = !v.hud
	case 'o':
		v.setOrbit(!v.orbit)
	case 'r':
		v.cam.SetPosition(v.cfg.Position)
		v.cam.SetRotation(v.cfg.Rotation)
		v.setOrbit(false)
	}
}

// setOrbit toggles orbiting, continuing from the current pose.
func (v *Viewer) setOrbit(on bool) {
	if on == v.orbit {
		return
	}
	v.orbit = on
	if !on {
		return
	}
	pos := v.cam.Position()
	v.orbitRadius = math.Hypot(pos.X, pos.Z)
	v.orbitAngle = math.Atan2(pos.X, pos.Z) - v.cfg.OrbitSpeed*float64(v.millis)/1000
}

func (v *Viewer) logf(format string, args ...any) {
	if v.log == nil {
		return
	}
	v.log.WriteLineString(fmt.Sprintf(format, args...))
}
