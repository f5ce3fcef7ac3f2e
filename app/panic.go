package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"tinygo.org/x/tinyfont"
)

// showPanic logs a render panic with its stack and paints it on screen.
func (v *Viewer) showPanic(r any) {
	stack := debug.Stack()
	v.logf("raycaster panic: frame=%d panic=%v", v.frame, r)
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		v.logf("%s", line)
	}

	if v.fb == nil {
		return
	}
	v.fb.ClearRGB(0x80, 0, 0)

	w, h := v.fb.Width(), v.fb.Height()
	_, charWidth := tinyfont.LineWidth(hudFont, "0")
	cols := 1
	if charWidth > 0 && w > 4 {
		cols = (w - 4) / int(charWidth)
	}

	lines := []string{
		"Render panic:",
		fmt.Sprintf("frame: %d", v.frame),
		fmt.Sprintf("panic: %v", r),
	}
	y := int16(2)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y+hudLineHeight) > h {
				_ = v.fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			writeText(v.disp, 2, y, chunk)
			y += hudLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = v.fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i], s[i:]
		}
		count++
	}
	return s, ""
}
