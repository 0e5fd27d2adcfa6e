// Command inject streams a WAV file into a running Android emulator's
// virtual microphone over gRPC, at the pace a live microphone would
// produce it.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sebas/micinject/internal/injector/config"
	"github.com/sebas/micinject/internal/injector/stream"
	"github.com/sebas/micinject/internal/injector/wave"
	"github.com/sebas/micinject/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger.InitLogger(os.Stdout)
	logger.SetLevel(cfg.LogLevel)

	slog.Info("Starting audio injection",
		"file", cfg.WavPath,
		"emulator", cfg.Addr(),
		"chunk_ms", cfg.ChunkMs,
	)

	// A mid-stream interrupt cancels the context so the call is closed
	// instead of left half-open on the emulator side.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	audio, err := wave.ReadFile(cfg.WavPath)
	if err != nil {
		slog.Error("Failed to read audio file", "file", cfg.WavPath, "error", err)
		os.Exit(1)
	}

	injector, err := stream.Dial(stream.Config{
		Address:        cfg.Addr(),
		ConnectTimeout: stream.DefaultConfig().ConnectTimeout,
	})
	if err != nil {
		slog.Error("Failed to connect to emulator", "error", err)
		os.Exit(1)
	}
	defer injector.Close()

	if err := injector.Inject(ctx, audio, cfg.ChunkMs); err != nil {
		slog.Error("Audio injection failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Audio injection complete")
}
