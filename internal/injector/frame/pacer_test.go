package frame

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testFrames(n int) []Frame {
	format := Format{SampleRate: 16000, Channels: 1, SampleWidth: 2}
	frames := make([]Frame, n)
	for i := range frames {
		frames[i] = Frame{Format: format, Payload: []byte{byte(i)}}
	}
	return frames
}

func TestPacerTimestampsAdvanceByChunkDuration(t *testing.T) {
	const chunkMs = 1
	pacer := NewPacer(chunkMs)

	var stamps []int64
	err := pacer.Each(context.Background(), testFrames(20), func(f Frame) error {
		stamps = append(stamps, f.TimestampMicros)
		return nil
	})
	if err != nil {
		t.Fatalf("Each() error = %v", err)
	}

	if len(stamps) != 20 {
		t.Fatalf("emitted %d frames, want 20", len(stamps))
	}
	for i := 1; i < len(stamps); i++ {
		if delta := stamps[i] - stamps[i-1]; delta != chunkMs*1000 {
			t.Errorf("timestamp delta at %d = %d µs, want %d", i, delta, chunkMs*1000)
		}
	}
}

func TestPacerTimestampsContinuousAcrossSilence(t *testing.T) {
	// The silence run comes out of Chunk with the same format; the pacer
	// must not restart its clock at the data/silence boundary.
	format := Format{SampleRate: 1000, Channels: 1, SampleWidth: 2}
	frames := Chunk(make([]byte, 3*format.ChunkBytes(1)), format, 1)

	pacer := NewPacer(1)
	var stamps []int64
	if err := pacer.Each(context.Background(), frames, func(f Frame) error {
		stamps = append(stamps, f.TimestampMicros)
		return nil
	}); err != nil {
		t.Fatalf("Each() error = %v", err)
	}

	if len(stamps) != 3+SilenceFrames {
		t.Fatalf("emitted %d frames, want %d", len(stamps), 3+SilenceFrames)
	}
	for i := 1; i < len(stamps); i++ {
		if delta := stamps[i] - stamps[i-1]; delta != 1000 {
			t.Errorf("timestamp delta at %d = %d µs, want 1000 (boundary at 3)", i, delta)
		}
	}
}

func TestPacerSpacesEmissions(t *testing.T) {
	const chunkMs = 5
	pacer := NewPacer(chunkMs)

	start := time.Now()
	if err := pacer.Each(context.Background(), testFrames(5), func(Frame) error { return nil }); err != nil {
		t.Fatalf("Each() error = %v", err)
	}

	// Five frames with a delay after each should take at least 4 intervals
	// even under scheduler jitter.
	if elapsed := time.Since(start); elapsed < 4*chunkMs*time.Millisecond {
		t.Errorf("Each() returned after %v, want at least %v", elapsed, 4*chunkMs*time.Millisecond)
	}
}

func TestPacerStopsOnConsumerError(t *testing.T) {
	pacer := NewPacer(1)
	wantErr := errors.New("transport closed")

	sent := 0
	err := pacer.Each(context.Background(), testFrames(100), func(Frame) error {
		sent++
		if sent == 5 {
			return wantErr
		}
		return nil
	})

	if !errors.Is(err, wantErr) {
		t.Errorf("Each() error = %v, want %v", err, wantErr)
	}
	if sent != 5 {
		t.Errorf("emitted %d frames after consumer error, want 5", sent)
	}
}

func TestPacerStopsOnCancel(t *testing.T) {
	// A canceled context must end pacing immediately, not after the
	// remaining frames' delays.
	pacer := NewPacer(50)
	ctx, cancel := context.WithCancel(context.Background())

	sent := 0
	done := make(chan error, 1)
	start := time.Now()
	go func() {
		done <- pacer.Each(ctx, testFrames(1000), func(Frame) error {
			sent++
			return nil
		})
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Each() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Each() did not return promptly after cancel")
	}

	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Each() took %v to stop, want well under the sequence duration", elapsed)
	}
	if sent >= 10 {
		t.Errorf("emitted %d frames before cancel took effect, want a handful", sent)
	}
}
