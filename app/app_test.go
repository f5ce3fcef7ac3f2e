package app

import (
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"raycaster/core/geom"
	"raycaster/core/shape"
	"raycaster/hal"
)

var (
	red   = color.RGBA{R: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

type testHAL struct {
	lines []string
	fb    *testFB
	keys  chan hal.KeyEvent
	ticks chan uint64
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{
		fb:    &testFB{w: w, h: h, buf: make([]byte, w*h*2)},
		keys:  make(chan hal.KeyEvent, 16),
		ticks: make(chan uint64, 16),
	}
}

func (h *testHAL) Logger() hal.Logger   { return h }
func (h *testHAL) Display() hal.Display { return h }
func (h *testHAL) Input() hal.Input     { return h }
func (h *testHAL) Time() hal.Time       { return h }

func (h *testHAL) WriteLineString(s string)     { h.lines = append(h.lines, s) }
func (h *testHAL) WriteLineBytes(b []byte)      { h.lines = append(h.lines, string(b)) }
func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Keyboard() hal.Keyboard       { return h }
func (h *testHAL) Events() <-chan hal.KeyEvent  { return h.keys }
func (h *testHAL) Ticks() <-chan uint64         { return h.ticks }

func (h *testHAL) press(code hal.KeyCode, r rune) {
	h.keys <- hal.KeyEvent{Code: code, Press: true, Rune: r}
}

func (h *testHAL) logged(substr string) bool {
	for _, l := range h.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }

func (f *testFB) Present() error {
	f.presents++
	return nil
}

func (f *testFB) ClearRGB(r, g, b uint8) {
	p := hal.RGB565(color.RGBA{R: r, G: g, B: b})
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

func (f *testFB) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 12
	cfg.Position = geom.P3(0, 0, 5)
	cfg.Rotation = geom.Vector3D{}
	cfg.Background = black
	cfg.HUD = false
	cfg.StatsEvery = 0
	return cfg
}

func redSphere(t *testing.T, c geom.Point3D, r float64) *shape.Sphere {
	t.Helper()
	s, err := shape.NewSphere(c, r)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	s.SetColour(red)
	return s
}

func newTestViewer(t *testing.T, h *testHAL, cfg Config, objs []shape.Object) *Viewer {
	t.Helper()
	v, err := New(h, cfg, objs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v
}

func TestRenderFrameBlitsCamera(t *testing.T) {
	h := newTestHAL(16, 12)
	v := newTestViewer(t, h, testConfig(), []shape.Object{redSphere(t, geom.P3(0, 0, 0), 1)})

	if err := v.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if v.Frame() != 1 || h.fb.presents != 1 {
		t.Fatalf("frame=%d presents=%d", v.Frame(), h.fb.presents)
	}
	if got := h.fb.pixel(8, 6); got != hal.RGB565(red) {
		t.Fatalf("centre=%#04x", got)
	}
	if got := h.fb.pixel(0, 0); got != hal.RGB565(black) {
		t.Fatalf("corner=%#04x", got)
	}
}

func TestBlitPutsBottomRowLast(t *testing.T) {
	h := newTestHAL(16, 12)
	v := newTestViewer(t, h, testConfig(), []shape.Object{redSphere(t, geom.P3(0, 1.5, 0), 0.8)})

	if err := v.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	hits := 0
	for y := 0; y < 12; y++ {
		if h.fb.pixel(8, y) != hal.RGB565(red) {
			continue
		}
		if y >= 6 {
			t.Fatalf("sphere above the camera drawn at y=%d", y)
		}
		hits++
	}
	if hits == 0 {
		t.Fatalf("sphere not drawn")
	}
}

func TestBlitScalesToFramebuffer(t *testing.T) {
	h := newTestHAL(32, 24)
	v := newTestViewer(t, h, testConfig(), []shape.Object{redSphere(t, geom.P3(0, 0, 0), 1)})

	if err := v.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if got := h.fb.pixel(16, 12); got != hal.RGB565(red) {
		t.Fatalf("centre=%#04x", got)
	}
	if got := h.fb.pixel(31, 23); got != hal.RGB565(black) {
		t.Fatalf("corner=%#04x", got)
	}
}

func TestNewDefaultsToDefaultScene(t *testing.T) {
	v := newTestViewer(t, newTestHAL(16, 12), testConfig(), nil)
	if got := len(v.Objects()); got != 5 {
		t.Fatalf("objects=%d", got)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 0
	if _, err := New(newTestHAL(16, 12), cfg, nil); err == nil {
		t.Fatalf("expected error")
	}

	step := NewWithConfig(newTestHAL(16, 12), cfg)
	if err := step(); err == nil {
		t.Fatalf("expected step error")
	}
}

func TestArrowKeysRotate(t *testing.T) {
	h := newTestHAL(16, 12)
	cfg := testConfig()
	v := newTestViewer(t, h, cfg, []shape.Object{})

	h.press(hal.KeyLeft, 0)
	h.press(hal.KeyLeft, 0)
	h.press(hal.KeyUp, 0)
	if err := v.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	want := geom.V3(cfg.TurnStep, 2*cfg.TurnStep, 0)
	if got := v.Camera().Rotation(); !got.ApproxEqual(want, 1e-12) {
		t.Fatalf("rot=%v want %v", got, want)
	}
}

func TestMoveKeysFollowHeading(t *testing.T) {
	h := newTestHAL(16, 12)
	cfg := testConfig()
	v := newTestViewer(t, h, cfg, []shape.Object{})

	h.press(hal.KeyUnknown, 'w')
	h.press(hal.KeyUnknown, 'e')
	if err := v.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	want := geom.P3(0, cfg.MoveStep, 5-cfg.MoveStep)
	if got := v.Camera().Position(); !got.ApproxEqual(want, 1e-9) {
		t.Fatalf("pos=%v want %v", got, want)
	}

	v.Camera().SetRotation(geom.V3(0, math.Pi/2, 0))
	h.press(hal.KeyUnknown, 'w')
	if err := v.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	want = want.Add(geom.V3(-cfg.MoveStep, 0, 0))
	if got := v.Camera().Position(); !got.ApproxEqual(want, 1e-9) {
		t.Fatalf("pos=%v want %v", got, want)
	}

	h.press(hal.KeyUnknown, 'r')
	if err := v.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := v.Camera().Position(); got != cfg.Position {
		t.Fatalf("reset pos=%v", got)
	}
}

func TestEscapeQuits(t *testing.T) {
	h := newTestHAL(16, 12)
	v := newTestViewer(t, h, testConfig(), []shape.Object{})

	h.press(hal.KeyEscape, 0)
	if err := v.Step(); !errors.Is(err, hal.ErrWindowClosed) {
		t.Fatalf("err=%v", err)
	}
	if v.Frame() != 0 {
		t.Fatalf("rendered after quit: frame=%d", v.Frame())
	}
}

func TestOrbitFollowsClock(t *testing.T) {
	h := newTestHAL(16, 12)
	cfg := testConfig()
	cfg.Orbit = true
	cfg.OrbitSpeed = 1
	v := newTestViewer(t, h, cfg, []shape.Object{})

	h.ticks <- 250
	h.ticks <- 500
	if err := v.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	want := geom.P3(5*math.Sin(0.5), 0, 5*math.Cos(0.5))
	if got := v.Camera().Position(); !got.ApproxEqual(want, 1e-9) {
		t.Fatalf("pos=%v want %v", got, want)
	}
	if got := v.Camera().Rotation().Y; math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("yaw=%v", got)
	}

	h.press(hal.KeySpace, 0)
	h.ticks <- 1500
	if err := v.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := v.Camera().Position(); !got.ApproxEqual(want, 1e-9) {
		t.Fatalf("moved after orbit stopped: pos=%v", got)
	}
}

func TestHUDDrawsText(t *testing.T) {
	h := newTestHAL(96, 48)
	cfg := testConfig()
	cfg.Width, cfg.Height = 96, 48
	cfg.HUD = true
	v := newTestViewer(t, h, cfg, []shape.Object{})

	if err := v.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	white := hal.RGB565(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF})
	lit := 0
	for y := 0; y < 12; y++ {
		for x := 0; x < 96; x++ {
			if h.fb.pixel(x, y) == white {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatalf("no HUD pixels")
	}

	h.press(hal.KeyUnknown, 'h')
	if err := v.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	for y := 0; y < 48; y++ {
		for x := 0; x < 96; x++ {
			if h.fb.pixel(x, y) == white {
				t.Fatalf("HUD still drawn at %d,%d", x, y)
			}
		}
	}
}

type panicObject struct {
	*shape.Sphere
}

func (panicObject) Intersect(geom.Point3D, geom.Vector3D) (float64, bool) {
	panic("boom")
}

func TestRenderPanicIsReported(t *testing.T) {
	h := newTestHAL(64, 48)
	s := redSphere(t, geom.P3(1, 2, 3), 1)
	v := newTestViewer(t, h, testConfig(), []shape.Object{panicObject{s}})

	err := v.RenderFrame()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err=%v", err)
	}
	if got := s.Centre(); !got.ApproxEqual(geom.P3(1, 2, 3), 1e-9) {
		t.Fatalf("centre not restored: %v", got)
	}
	if !h.logged("raycaster panic") {
		t.Fatalf("panic not logged: %q", h.lines)
	}
	if got := h.fb.pixel(63, 47); got != hal.RGB565(color.RGBA{R: 0x80}) {
		t.Fatalf("panic screen=%#04x", got)
	}
	if h.fb.presents != 1 {
		t.Fatalf("presents=%d", h.fb.presents)
	}
}

func TestTakeRunes(t *testing.T) {
	prefix, rest := takeRunes("héllo", 2)
	if prefix != "hé" || rest != "llo" {
		t.Fatalf("prefix=%q rest=%q", prefix, rest)
	}
	if prefix, rest := takeRunes("ab", 5); prefix != "ab" || rest != "" {
		t.Fatalf("prefix=%q rest=%q", prefix, rest)
	}
}
