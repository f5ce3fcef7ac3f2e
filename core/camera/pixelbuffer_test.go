package camera

import (
	"math"
	"testing"
)

func TestPixelBufferLifecycle(t *testing.T) {
	var pb PixelBuffer
	if pb.IsInitialised() {
		t.Fatalf("zero buffer initialised")
	}

	pb.Init(4, 3)
	if !pb.IsInitialised() || pb.Width() != 4 || pb.Height() != 3 {
		t.Fatalf("size=%dx%d", pb.Width(), pb.Height())
	}
	oi := pb.At(3, 2)
	if oi.Hit() || !math.IsInf(oi.Distance, 1) {
		t.Fatalf("fresh pixel=%+v", oi)
	}

	pb.Set(3, 2, ObjectInfo{Index: 1, Distance: 2.5})
	if got := pb.At(3, 2); got.Index != 1 || got.Distance != 2.5 {
		t.Fatalf("pixel=%+v", got)
	}
	if pb.Hits() != 1 {
		t.Fatalf("hits=%d", pb.Hits())
	}

	pb.Set(4, 0, ObjectInfo{Index: 2})
	if got := pb.At(4, 0); got.Hit() {
		t.Fatalf("out of range read=%+v", got)
	}

	pb.Clear()
	if pb.Hits() != 0 {
		t.Fatalf("hits after clear=%d", pb.Hits())
	}

	pb.Init(0, 3)
	if pb.IsInitialised() {
		t.Fatalf("zero width buffer initialised")
	}
}
