package app

import (
	"fmt"
	"image/color"

	"raycaster/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	hudFont       tinyfont.Fonter = &proggy.TinySZ8pt7b
	hudLineHeight int16           = 10
	hudColour                     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	hudShadow                     = color.RGBA{A: 0xFF}
)

// fbDisplay adapts a hal.Framebuffer to drivers.Displayer so tinyfont can
// draw into it.
type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	hal.SetPixel(d.fb, int(x), int(y), c)
}

// Display is a no-op; the viewer presents once per frame.
func (d *fbDisplay) Display() error { return nil }

// writeText draws s with its top-left corner at (x, y) with a one pixel drop
// shadow.
func writeText(d drivers.Displayer, x, y int16, s string) {
	base := y + hudLineHeight - 2
	tinyfont.WriteLine(d, hudFont, x+1, base+1, s, hudShadow)
	tinyfont.WriteLine(d, hudFont, x, base, s, hudColour)
}

func (v *Viewer) hudLines() []string {
	pos := v.cam.Position()
	rot := v.cam.Rotation()
	lines := []string{
		fmt.Sprintf("frame %d  hits %d", v.frame, v.cam.PixelBuffer().Hits()),
		fmt.Sprintf("pos %.2f %.2f %.2f", pos.X, pos.Y, pos.Z),
		fmt.Sprintf("rot %.2f %.2f %.2f", rot.X, rot.Y, rot.Z),
	}
	if v.orbit {
		lines = append(lines, "orbit")
	}
	return lines
}

func (v *Viewer) drawHUD() {
	if v.disp == nil || v.disp.fb == nil {
		return
	}
	for n, line := range v.hudLines() {
		writeText(v.disp, 2, 2+int16(n)*hudLineHeight, line)
	}
}
