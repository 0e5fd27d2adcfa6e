package wave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeWAV writes a minimal RIFF/WAVE file. declaredSize overrides the
// data chunk's declared byte count when non-zero, to simulate streaming
// writers that lie about it.
func writeWAV(t *testing.T, channels, bitsPerSample, sampleRate int, pcm []byte, declaredSize uint32) string {
	t.Helper()

	var buf bytes.Buffer
	width := bitsPerSample / 8
	blockAlign := channels * width
	byteRate := sampleRate * blockAlign

	dataSize := uint32(len(pcm))
	if declaredSize != 0 {
		dataSize = declaredSize
	}

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	buf.Write(pcm)

	path := filepath.Join(t.TempDir(), "test.wav")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	pcm := make([]byte, 640)
	for i := range pcm {
		pcm[i] = byte(i)
	}
	path := writeWAV(t, 1, 16, 16000, pcm, 0)

	audio, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if audio.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", audio.SampleRate)
	}
	if audio.Channels != 1 {
		t.Errorf("Channels = %d, want 1", audio.Channels)
	}
	if audio.SampleWidth != 2 {
		t.Errorf("SampleWidth = %d, want 2", audio.SampleWidth)
	}
	if !bytes.Equal(audio.Data, pcm) {
		t.Errorf("Data does not round-trip: got %d bytes, want %d", len(audio.Data), len(pcm))
	}
	if got := audio.Duration(); got != 20 {
		t.Errorf("Duration() = %d ms, want 20", got)
	}
}

func TestReadFileSkipsUnknownChunks(t *testing.T) {
	pcm := []byte{1, 2, 3, 4}
	path := writeWAV(t, 1, 16, 8000, pcm, 0)

	// Splice a LIST chunk between fmt and data.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	list := append([]byte("LIST"), 0x04, 0x00, 0x00, 0x00, 'I', 'N', 'F', 'O')
	spliced := append(append(append([]byte{}, raw[:36]...), list...), raw[36:]...)
	if err := os.WriteFile(path, spliced, 0o644); err != nil {
		t.Fatal(err)
	}

	audio, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(audio.Data, pcm) {
		t.Errorf("Data = %v, want %v", audio.Data, pcm)
	}
}

func TestReadFileRejectsNon16Bit(t *testing.T) {
	for _, bits := range []int{8, 24} {
		path := writeWAV(t, 1, bits, 8000, make([]byte, 64), 0)

		_, err := ReadFile(path)
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("ReadFile(%d-bit) error = %v, want *FormatError", bits, err)
		}
		if formatErr.BitsPerSample != bits {
			t.Errorf("FormatError.BitsPerSample = %d, want %d", formatErr.BitsPerSample, bits)
		}
	}
}

func TestReadFileRejectsTooManyChannels(t *testing.T) {
	path := writeWAV(t, 6, 16, 8000, make([]byte, 120), 0)

	_, err := ReadFile(path)
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("ReadFile() error = %v, want *FormatError", err)
	}
	if formatErr.Channels != 6 {
		t.Errorf("FormatError.Channels = %d, want 6", formatErr.Channels)
	}
}

func TestReadFileCapsDeclaredSize(t *testing.T) {
	// 100 Hz mono 16-bit caps at 100*2*60 = 12000 bytes.
	pcm := make([]byte, 13000)
	path := writeWAV(t, 1, 16, 100, pcm, 0)

	audio, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if want := MaxCaptureSeconds * 100 * 2; len(audio.Data) != want {
		t.Errorf("len(Data) = %d, want capped %d", len(audio.Data), want)
	}
}

func TestReadFileToleratesBogusDeclaredSize(t *testing.T) {
	// Streaming WAVs declare INT_MAX-ish data sizes; the reader must still
	// return the bytes that exist without allocating the declared amount.
	pcm := make([]byte, 320)
	path := writeWAV(t, 1, 16, 8000, pcm, 0xFFFFFFFF)

	audio, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(audio.Data) != len(pcm) {
		t.Errorf("len(Data) = %d, want %d", len(audio.Data), len(pcm))
	}
}

func TestReadFileMissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.wav"))
	if err == nil {
		t.Fatal("ReadFile() error = nil, want open error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want wrapped os.ErrNotExist", err)
	}
}
