// Package config loads mock API settings from flags and the environment.
package config

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the mock API configuration
type Config struct {
	Port      int
	BindAddr  string
	ServerURL string // URL the emulator uses to reach Headscale
	AuthKey   string // pre-auth key handed out to clients
	LogLevel  string
}

// Load loads configuration from command line flags and environment
// variables. A local .env file is honored when present so E2E scripts can
// share settings with the shell helpers.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	flag.IntVar(&cfg.Port, "port", 8181, "HTTP listen port")
	flag.StringVar(&cfg.BindAddr, "bind", "0.0.0.0", "HTTP bind address")
	flag.StringVar(&cfg.ServerURL, "server-url", "http://10.0.2.2:8080", "Headscale URL advertised to clients")
	flag.StringVar(&cfg.LogLevel, "loglevel", "info", "Log level")

	flag.Parse()

	// Environment overrides
	if v := os.Getenv("MOCK_API_PORT"); v != "" {
		cfg.Port, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("HEADSCALE_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("HEADSCALE_PREAUTH_KEY"); v != "" {
		cfg.AuthKey = v
	}
	if v := os.Getenv("LOGLEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}
