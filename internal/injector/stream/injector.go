// Package stream submits paced audio frames to the emulator's
// EmulatorController service over a client-streaming gRPC call.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/sebas/micinject/internal/injector/frame"
	"github.com/sebas/micinject/internal/injector/wave"
	emuv1 "github.com/sebas/micinject/pkg/emucontrol/v1"
)

// Config holds injector connection settings.
type Config struct {
	Address        string
	ConnectTimeout time.Duration
}

// DefaultConfig returns sensible defaults for a local emulator.
func DefaultConfig() Config {
	return Config{
		Address:        "localhost:8556",
		ConnectTimeout: 10 * time.Second,
	}
}

// StreamError reports a failed injection call with the remote status.
type StreamError struct {
	Code   codes.Code
	Detail string
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("injectAudio failed: %s - %s", e.Code, e.Detail)
}

// Injector owns one gRPC connection to the emulator.
type Injector struct {
	conn   *grpc.ClientConn
	client emuv1.EmulatorControllerClient
}

// Dial connects to the emulator's gRPC endpoint. The emulator only speaks
// plaintext on localhost, so transport credentials are insecure.
func Dial(cfg Config) (*Injector, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	conn, err := grpc.DialContext(ctx, cfg.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to emulator at %s: %w", cfg.Address, err)
	}

	slog.Info("[Inject] Connected to emulator gRPC", "address", cfg.Address)
	return &Injector{
		conn:   conn,
		client: emuv1.NewEmulatorControllerClient(conn),
	}, nil
}

// Close releases the connection.
func (i *Injector) Close() error {
	return i.conn.Close()
}

// Inject streams the decoded audio into the virtual microphone at
// real-time pace and blocks until the emulator acknowledges the full
// sequence or the call fails. One call, no retry.
func (i *Injector) Inject(ctx context.Context, audio *wave.Audio, chunkMs int) error {
	runID := uuid.NewString()

	format := frame.Format{
		SampleRate:  audio.SampleRate,
		Channels:    audio.Channels,
		SampleWidth: audio.SampleWidth,
	}
	frames := frame.Chunk(audio.Data, format, chunkMs)

	slog.Info("[Inject] Starting injection run",
		"run_id", runID,
		"frames", len(frames),
		"chunk_ms", chunkMs,
		"sample_rate", audio.SampleRate,
		"channels", audio.Channels,
	)

	call, err := i.client.InjectAudio(ctx)
	if err != nil {
		return streamError(err)
	}

	wireFormat := &emuv1.AudioFormat{
		SamplingRate: uint64(audio.SampleRate),
		Channels:     channelsOf(audio.Channels),
		Format:       emuv1.AudioFormat_AUD_FMT_S16,
	}

	pacer := frame.NewPacer(chunkMs)
	err = pacer.Each(ctx, frames, func(f frame.Frame) error {
		return call.Send(&emuv1.AudioPacket{
			Format:    wireFormat,
			Timestamp: uint64(f.TimestampMicros),
			Audio:     f.Payload,
		})
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		// Send reports io.EOF once the server has terminated the stream;
		// the real status only comes back from CloseAndRecv.
		if errors.Is(err, io.EOF) {
			if _, rerr := call.CloseAndRecv(); rerr != nil {
				return streamError(rerr)
			}
		}
		return streamError(err)
	}

	if _, err := call.CloseAndRecv(); err != nil {
		return streamError(err)
	}

	slog.Info("[Inject] Injection complete", "run_id", runID, "frames", len(frames))
	return nil
}

func channelsOf(n int) emuv1.AudioFormat_Channels {
	if n == 1 {
		return emuv1.AudioFormat_Mono
	}
	return emuv1.AudioFormat_Stereo
}

func streamError(err error) *StreamError {
	st := status.Convert(err)
	return &StreamError{Code: st.Code(), Detail: st.Message()}
}
