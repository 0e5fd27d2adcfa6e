// Command mockapi serves a minimal stand-in for the production backend
// during emulator E2E runs: it hands out a pre-configured Headscale
// pre-auth key and answers health checks.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sebas/micinject/internal/logger"
	"github.com/sebas/micinject/internal/mockapi/config"
	"github.com/sebas/micinject/internal/mockapi/server"
)

func main() {
	cfg := config.Load()

	logger.InitLogger(os.Stdout)
	logger.SetLevel(cfg.LogLevel)

	addr := fmt.Sprintf("%s:%d", cfg.BindAddr, cfg.Port)
	srv, err := server.NewServer(server.Config{
		Addr:      addr,
		ServerURL: cfg.ServerURL,
		AuthKey:   cfg.AuthKey,
	})
	if err != nil {
		slog.Error("Failed to create mock API server", "error", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		slog.Error("Failed to start mock API server", "error", err)
		os.Exit(1)
	}

	slog.Info("Mock API listening", "addr", addr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	slog.Info("Received signal, shutting down", "signal", sig)

	if err := srv.Stop(); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
}
