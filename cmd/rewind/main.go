// Command rewind resets the emulator's virtual microphone playback
// position through the telnet console, so the same injected audio can be
// replayed from the start.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sebas/micinject/internal/console"
	"github.com/sebas/micinject/internal/logger"
)

func main() {
	host := flag.String("host", "localhost", "Emulator console host")
	port := flag.Int("port", 5554, "Emulator console port")
	token := flag.String("token", "", "Console auth token (auto-discovered if not set)")
	timeout := flag.Duration("timeout", 5*time.Second, "Per-exchange timeout")
	logLevel := flag.String("loglevel", "info", "Log level")
	flag.Parse()

	logger.InitLogger(os.Stdout)
	logger.SetLevel(*logLevel)

	authToken := *token
	if authToken == "" {
		var err error
		authToken, err = console.AuthToken()
		if err != nil {
			slog.Error("Failed to locate console auth token", "error", err)
			os.Exit(1)
		}
	}

	addr := fmt.Sprintf("%s:%d", *host, *port)
	client, err := console.Dial(addr, *timeout)
	if err != nil {
		slog.Error("Failed to connect to emulator console", "addr", addr, "error", err)
		os.Exit(1)
	}
	defer client.Close()

	if err := client.Auth(authToken); err != nil {
		slog.Error("Console authentication failed", "error", err)
		os.Exit(1)
	}

	if err := client.RewindAudio(); err != nil {
		slog.Error("Rewind command failed", "error", err)
		os.Exit(1)
	}

	if err := client.Quit(); err != nil {
		slog.Warn("Failed to close console session cleanly", "error", err)
	}

	slog.Info("Virtual microphone rewound", "addr", addr)
}
