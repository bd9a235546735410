package framerate

import (
	"math"
	"testing"
	"time"
)

func TestRateEmpty(t *testing.T) {
	tap := NewTap(4)
	if r := tap.Rate(); r != 0 {
		t.Fatalf("empty tap rate = %v", r)
	}
	tap.Mark(time.Unix(0, 0))
	if r := tap.Rate(); r != 0 {
		t.Fatalf("single mark rate = %v", r)
	}
}

func TestRateSteady(t *testing.T) {
	tap := NewTap(8)
	now := time.Unix(100, 0)
	for i := 0; i < 5; i++ {
		tap.Mark(now)
		now = now.Add(time.Second / 50)
	}
	if r := tap.Rate(); math.Abs(r-50) > 1e-9 {
		t.Fatalf("rate = %v, want 50", r)
	}
}

func TestRateForgetsOldSamples(t *testing.T) {
	tap := NewTap(3)
	now := time.Unix(0, 0)
	tap.Mark(now)
	// three slow frames, then three fast ones push them out of the ring
	for i := 0; i < 3; i++ {
		now = now.Add(100 * time.Millisecond)
		tap.Mark(now)
	}
	if r := tap.Rate(); math.Abs(r-10) > 1e-9 {
		t.Fatalf("slow rate = %v, want 10", r)
	}
	for i := 0; i < 3; i++ {
		now = now.Add(10 * time.Millisecond)
		tap.Mark(now)
	}
	if r := tap.Rate(); math.Abs(r-100) > 1e-9 {
		t.Fatalf("fast rate = %v, want 100", r)
	}
	if tap.sum != 30*time.Millisecond {
		t.Fatalf("running sum = %v, want 30ms", tap.sum)
	}
}
