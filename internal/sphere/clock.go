package sphere

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrClockDone is returned by a FrameClock that has no frames left.
var ErrClockDone = errors.New("frame clock exhausted")

// FrameClock paces the render loop. Wait blocks until the next frame is due.
type FrameClock interface {
	Wait(ctx context.Context) error
}

// TickerClock delivers frames at a fixed rate.
type TickerClock struct {
	t *time.Ticker
}

func NewTickerClock(hz int) (*TickerClock, error) {
	if hz <= 0 {
		return nil, fmt.Errorf("invalid frame rate: %d", hz)
	}
	d := time.Second / time.Duration(hz)
	if d <= 0 {
		return nil, fmt.Errorf("invalid frame rate: %d", hz)
	}
	return &TickerClock{t: time.NewTicker(d)}, nil
}

func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.t.C:
		return nil
	}
}

func (c *TickerClock) Stop() { c.t.Stop() }

// StepClock releases exactly N frames without waiting.
type StepClock struct {
	left uint64
}

func NewStepClock(n uint64) *StepClock { return &StepClock{left: n} }

func (c *StepClock) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.left == 0 {
		return ErrClockDone
	}
	c.left--
	return nil
}
