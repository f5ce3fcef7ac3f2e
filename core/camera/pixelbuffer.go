package camera

import "math"

// NoObject marks a pixel without a recorded hit.
const NoObject = -1

// ObjectInfo records the nearest hit for one pixel.
//
// Index refers into the object slice passed to the render pass that produced
// it. It does not keep the object alive and is only meaningful until the next
// pass.
type ObjectInfo struct {
	Index    int
	Distance float64
}

func noHit() ObjectInfo { return ObjectInfo{Index: NoObject, Distance: math.Inf(1)} }

// Hit reports whether an object was recorded.
func (oi ObjectInfo) Hit() bool { return oi.Index != NoObject }

// PixelBuffer is a grid of ObjectInfo, indexed by (i, j) with i along the
// width.
type PixelBuffer struct {
	width  int
	height int
	info   []ObjectInfo
}

// Init sizes the buffer and clears it. Non-positive sizes leave it
// uninitialised.
func (pb *PixelBuffer) Init(width, height int) {
	if width <= 0 || height <= 0 {
		*pb = PixelBuffer{}
		return
	}
	pb.width = width
	pb.height = height
	pb.info = make([]ObjectInfo, width*height)
	pb.Clear()
}

func (pb *PixelBuffer) IsInitialised() bool { return pb.info != nil }
func (pb *PixelBuffer) Width() int          { return pb.width }
func (pb *PixelBuffer) Height() int         { return pb.height }

// Clear resets every pixel to "no hit".
func (pb *PixelBuffer) Clear() {
	empty := noHit()
	for i := range pb.info {
		pb.info[i] = empty
	}
}

// At returns the record for pixel (i, j), or a no-hit record when out of
// range.
func (pb *PixelBuffer) At(i, j int) ObjectInfo {
	if i < 0 || j < 0 || i >= pb.width || j >= pb.height {
		return noHit()
	}
	return pb.info[j*pb.width+i]
}

// Set stores the record for pixel (i, j). Out of range writes are dropped.
func (pb *PixelBuffer) Set(i, j int, oi ObjectInfo) {
	if i < 0 || j < 0 || i >= pb.width || j >= pb.height {
		return
	}
	pb.info[j*pb.width+i] = oi
}

// Hits counts pixels with a recorded object.
func (pb *PixelBuffer) Hits() int {
	n := 0
	for _, oi := range pb.info {
		if oi.Hit() {
			n++
		}
	}
	return n
}
