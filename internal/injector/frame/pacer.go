package frame

import (
	"context"
	"time"
)

// Pacer delivers a frame sequence at real-time rate. Each frame is stamped
// with a microsecond timestamp that starts at the wall clock when pacing
// begins and advances by exactly one chunk duration per frame, across the
// whole sequence including the trailing silence. One chunk duration of
// wall-clock delay separates consecutive emissions, so a consumer
// expecting a live microphone feed is never handed audio ahead of time.
type Pacer struct {
	interval time.Duration
	step     int64 // timestamp increment per frame, µs
}

// NewPacer creates a pacer for the given frame duration.
func NewPacer(chunkMs int) *Pacer {
	return &Pacer{
		interval: time.Duration(chunkMs) * time.Millisecond,
		step:     int64(chunkMs) * 1000,
	}
}

// Each stamps and delivers every frame to fn in order, suspending for one
// chunk interval after each delivery. It stops immediately when fn returns
// an error or ctx is canceled; a pending delay is not waited out for
// frames that will never be sent.
func (p *Pacer) Each(ctx context.Context, frames []Frame, fn func(Frame) error) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	ts := time.Now().UnixMicro()
	for _, f := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}

		f.TimestampMicros = ts
		if err := fn(f); err != nil {
			return err
		}
		ts += p.step

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
