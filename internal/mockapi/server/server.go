// Package server implements the mock backend API used during E2E runs.
// It stands in for the production backend's VPN enrollment endpoint so an
// emulator image can be driven without real infrastructure.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	typesv1 "github.com/sebas/micinject/api/types/v1"
)

// Config holds the values the stub hands out.
type Config struct {
	Addr      string
	ServerURL string
	AuthKey   string
}

// Server is the mock API HTTP server.
type Server struct {
	cfg        Config
	httpServer *http.Server
}

// NewServer creates the mock API server. The pre-auth key is mandatory:
// handing out an empty key would let the E2E run proceed and then fail
// much later inside the client, which is miserable to debug.
func NewServer(cfg Config) (*Server, error) {
	if cfg.AuthKey == "" {
		return nil, fmt.Errorf("pre-auth key not set (HEADSCALE_PREAUTH_KEY)")
	}

	s := &Server{cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/vpn/auth-key", s.handleAuthKey)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	return s, nil
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	slog.Info("[MockAPI] Starting HTTP server", "addr", s.cfg.Addr, "server_url", s.cfg.ServerURL)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("[MockAPI] Server error", "error", err)
			panic(err)
		}
	}()
	return nil
}

// Stop shuts down the server
func (s *Server) Stop() error {
	if s.httpServer != nil {
		return s.httpServer.Close()
	}
	return nil
}

func (s *Server) handleAuthKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	slog.Info("[MockAPI] Handing out pre-auth key", "remote", r.RemoteAddr)
	s.writeJSON(w, typesv1.AuthKeyResponse{
		ServerURL: s.cfg.ServerURL,
		AuthKey:   s.cfg.AuthKey,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, typesv1.HealthResponse{Status: "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("[MockAPI] Failed to encode response", "error", err)
	}
}
