// Package frame slices raw PCM audio into fixed-duration frames and paces
// their delivery against the wall clock.
package frame

// DefaultChunkMs is the frame duration the emulator's virtual microphone
// is driven with.
const DefaultChunkMs = 30

// SilenceFrames is the number of all-zero frames appended after the last
// data frame. The receiver applies jitter-buffer smoothing; the silence
// run drains its buffer so playback ends cleanly instead of cutting off.
// Tuned against the emulator, not derived (10 frames at 30 ms is ~300 ms).
const SilenceFrames = 10

// Format describes the PCM layout shared by every frame in a sequence.
type Format struct {
	SampleRate  int // Hz
	Channels    int
	SampleWidth int // bytes per sample per channel
}

// ChunkBytes returns the payload size of one full frame of chunkMs audio.
// Integer division truncates: rate/width/channel combinations that do not
// land on a whole byte count produce slightly short frames. That matches
// the behavior the receiver was tuned against; do not round up here
// without re-validating end to end.
func (f Format) ChunkBytes(chunkMs int) int {
	return f.SampleRate * f.Channels * f.SampleWidth * chunkMs / 1000
}

// Frame is one fixed-duration slice of audio, the atomic unit sent to the
// emulator. Timestamp is zero until the Pacer stamps it.
type Frame struct {
	Format          Format
	TimestampMicros int64
	Payload         []byte
}

// Chunk walks data in non-overlapping windows of Format.ChunkBytes and
// returns the resulting frames followed by exactly SilenceFrames all-zero
// frames of a full chunk each. The last data frame may be short when the
// buffer does not divide evenly; it is emitted as-is, never padded or
// dropped. An empty buffer yields only the silence run.
func Chunk(data []byte, format Format, chunkMs int) []Frame {
	chunkBytes := format.ChunkBytes(chunkMs)
	frames := make([]Frame, 0, len(data)/chunkBytes+1+SilenceFrames)

	for offset := 0; offset < len(data); offset += chunkBytes {
		end := offset + chunkBytes
		if end > len(data) {
			end = len(data)
		}
		frames = append(frames, Frame{Format: format, Payload: data[offset:end]})
	}

	silence := make([]byte, chunkBytes)
	for i := 0; i < SilenceFrames; i++ {
		frames = append(frames, Frame{Format: format, Payload: silence})
	}

	return frames
}
