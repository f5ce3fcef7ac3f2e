package hal

import "time"

// hostTime publishes one tick per elapsed millisecond of wall time, counted
// from the first step. Tick values are 1-based, so the value read last is
// the elapsed time in milliseconds plus one.
type hostTime struct {
	ch    chan uint64
	clock func() time.Time

	start time.Time
	sent  uint64
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), clock: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step publishes the ticks due since the previous step. Ticks that do not
// fit in the channel are dropped; their sequence numbers are not reused.
func (t *hostTime) step() {
	now := t.clock()
	if t.start.IsZero() {
		t.start = now
	}
	elapsed := now.Sub(t.start)
	if elapsed < 0 {
		return
	}
	due := uint64(elapsed/time.Millisecond) + 1
	for t.sent < due {
		t.sent++
		select {
		case t.ch <- t.sent:
		default:
		}
	}
}
