// Package framerate measures the recent frame rate for the HUD.
package framerate

import "time"

// Tap records the last N frame intervals into a ring buffer and keeps their
// sum, so Rate costs nothing per call. It is not safe for concurrent use; the
// host marks and reads it from its render goroutine.
type Tap struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
	sum       time.Duration
	last      time.Time
}

func NewTap(ringSize int) *Tap {
	return &Tap{
		buffer: make([]time.Duration, max(ringSize, 1)),
	}
}

// Mark records the interval since the previous mark.
func (t *Tap) Mark(now time.Time) {
	if t.last.IsZero() {
		t.last = now
		return
	}
	d := now.Sub(t.last)
	t.last = now

	// overwrite the oldest sample once the ring is full
	t.sum -= t.buffer[t.nextIndex]
	t.buffer[t.nextIndex] = d
	t.sum += d
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.filled < len(t.buffer) {
		t.filled++
	}
}

// Rate averages the recorded intervals, in frames per second.
func (t *Tap) Rate() float64 {
	if t.filled == 0 || t.sum <= 0 {
		return 0
	}
	return float64(t.filled) / t.sum.Seconds()
}
