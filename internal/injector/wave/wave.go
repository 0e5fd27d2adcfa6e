// Package wave reads PCM audio out of RIFF/WAV containers for injection.
package wave

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// MaxCaptureSeconds bounds how much audio is pulled out of a container.
// Streaming WAV writers advertise bogus data-chunk sizes (often INT_MAX),
// so the declared size cannot be trusted for allocation.
const MaxCaptureSeconds = 60

// FormatError reports a container whose sample format the injection
// pipeline cannot carry. The pipeline never transcodes.
type FormatError struct {
	BitsPerSample int
	Channels      int
}

func (e *FormatError) Error() string {
	if e.BitsPerSample != 16 {
		return fmt.Sprintf("expected 16-bit audio, got %d-bit", e.BitsPerSample)
	}
	return fmt.Sprintf("expected mono or stereo audio, got %d channels", e.Channels)
}

// Audio holds decoded PCM samples and their layout.
type Audio struct {
	Data        []byte // interleaved little-endian samples
	Channels    int
	SampleWidth int // bytes per sample per channel
	SampleRate  int // Hz
}

// Duration returns the audio length in whole milliseconds.
func (a *Audio) Duration() int {
	frameBytes := a.Channels * a.SampleWidth
	if frameBytes == 0 || a.SampleRate == 0 {
		return 0
	}
	return len(a.Data) / frameBytes * 1000 / a.SampleRate
}

// ReadFile parses a WAV file and returns its PCM data and format.
// Only 16-bit mono or stereo PCM passes; anything else is a *FormatError.
// At most MaxCaptureSeconds of audio is read regardless of what the
// container's data chunk declares.
func ReadFile(filePath string) (*Audio, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	riffID := make([]byte, 4)
	if _, err := io.ReadFull(file, riffID); err != nil {
		return nil, fmt.Errorf("failed to read RIFF header: %w", err)
	}
	if string(riffID) != "RIFF" {
		return nil, fmt.Errorf("not a valid RIFF file")
	}

	var riffSize uint32
	if err := binary.Read(file, binary.LittleEndian, &riffSize); err != nil {
		return nil, fmt.Errorf("failed to read RIFF size: %w", err)
	}

	waveID := make([]byte, 4)
	if _, err := io.ReadFull(file, waveID); err != nil {
		return nil, fmt.Errorf("failed to read WAVE header: %w", err)
	}
	if string(waveID) != "WAVE" {
		return nil, fmt.Errorf("not a valid WAVE file")
	}

	audio := &Audio{}
	haveFormat := false
	for {
		chunkID := make([]byte, 4)
		if _, err := io.ReadFull(file, chunkID); err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to read chunk ID: %w", err)
		}

		var chunkSize uint32
		if err := binary.Read(file, binary.LittleEndian, &chunkSize); err != nil {
			return nil, fmt.Errorf("failed to read chunk size: %w", err)
		}

		switch string(chunkID) {
		case "fmt ":
			var audioFormat, numChannels uint16
			var sampleRate, byteRate uint32
			var blockAlign, bitsPerSample uint16

			if err := binary.Read(file, binary.LittleEndian, &audioFormat); err != nil {
				return nil, fmt.Errorf("failed to read audio format: %w", err)
			}
			if audioFormat != 1 {
				return nil, fmt.Errorf("only PCM audio format (1) is supported, got %d", audioFormat)
			}
			if err := binary.Read(file, binary.LittleEndian, &numChannels); err != nil {
				return nil, fmt.Errorf("failed to read channels: %w", err)
			}
			if err := binary.Read(file, binary.LittleEndian, &sampleRate); err != nil {
				return nil, fmt.Errorf("failed to read sample rate: %w", err)
			}
			if sampleRate == 0 {
				return nil, fmt.Errorf("invalid sample rate 0")
			}
			if err := binary.Read(file, binary.LittleEndian, &byteRate); err != nil {
				return nil, fmt.Errorf("failed to read byte rate: %w", err)
			}
			if err := binary.Read(file, binary.LittleEndian, &blockAlign); err != nil {
				return nil, fmt.Errorf("failed to read block align: %w", err)
			}
			if err := binary.Read(file, binary.LittleEndian, &bitsPerSample); err != nil {
				return nil, fmt.Errorf("failed to read bits per sample: %w", err)
			}
			// Some encoders pad the fmt chunk past the 16 PCM bytes.
			if chunkSize > 16 {
				if _, err := file.Seek(int64(chunkSize)-16, io.SeekCurrent); err != nil {
					return nil, fmt.Errorf("failed to skip fmt extension: %w", err)
				}
			}

			if bitsPerSample != 16 {
				return nil, &FormatError{BitsPerSample: int(bitsPerSample), Channels: int(numChannels)}
			}
			if numChannels != 1 && numChannels != 2 {
				return nil, &FormatError{BitsPerSample: 16, Channels: int(numChannels)}
			}

			audio.Channels = int(numChannels)
			audio.SampleWidth = int(bitsPerSample) / 8
			audio.SampleRate = int(sampleRate)
			haveFormat = true

			slog.Debug("[WAV] Parsed format chunk", "sampleRate", audio.SampleRate, "channels", audio.Channels, "bitsPerSample", bitsPerSample)

		case "data":
			if !haveFormat {
				return nil, fmt.Errorf("data chunk before fmt chunk")
			}

			readSize := int(chunkSize)
			maxBytes := MaxCaptureSeconds * audio.SampleRate * audio.Channels * audio.SampleWidth
			if readSize > maxBytes || chunkSize == 0xFFFFFFFF {
				slog.Debug("[WAV] Capping data read", "declared", chunkSize, "cap_bytes", maxBytes)
				readSize = maxBytes
			}

			data := make([]byte, readSize)
			n, err := io.ReadFull(file, data)
			if err == io.ErrUnexpectedEOF {
				// Container shorter than its declared size; keep what is there.
				data = data[:n]
			} else if err != nil {
				return nil, fmt.Errorf("failed to read audio data: %w", err)
			}
			audio.Data = data

			slog.Info("[WAV] Loaded audio data", "file", filePath, "size_bytes", len(data), "duration_ms", audio.Duration())
			return audio, nil

		default:
			if _, err := file.Seek(int64(chunkSize), io.SeekCurrent); err != nil {
				return nil, fmt.Errorf("failed to skip chunk: %w", err)
			}
		}
	}

	return nil, fmt.Errorf("data chunk not found in WAV file")
}
