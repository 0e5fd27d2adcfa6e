// Package config loads injector settings from flags and the environment.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Config holds the injector configuration
type Config struct {
	Host     string
	Port     int
	ChunkMs  int
	LogLevel string
	WavPath  string
}

// Addr returns the emulator gRPC endpoint address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load loads configuration from command line flags and environment
// variables. The single positional argument is the WAV file to inject.
func Load() (*Config, error) {
	cfg := &Config{}

	flag.StringVar(&cfg.Host, "host", "localhost", "Emulator gRPC host")
	flag.IntVar(&cfg.Port, "port", 8556, "Emulator gRPC port")
	flag.IntVar(&cfg.ChunkMs, "chunk-ms", 30, "Frame duration in milliseconds")
	flag.StringVar(&cfg.LogLevel, "loglevel", "info", "Log level")

	flag.Parse()

	// Environment overrides
	if v := os.Getenv("EMULATOR_GRPC_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("EMULATOR_GRPC_PORT"); v != "" {
		cfg.Port, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("LOGLEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if flag.NArg() != 1 {
		return nil, fmt.Errorf("usage: %s [flags] <file.wav>", os.Args[0])
	}
	cfg.WavPath = flag.Arg(0)

	if cfg.ChunkMs <= 0 {
		return nil, fmt.Errorf("chunk-ms must be positive, got %d", cfg.ChunkMs)
	}

	return cfg, nil
}
