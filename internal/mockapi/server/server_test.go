package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	typesv1 "github.com/sebas/micinject/api/types/v1"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(Config{
		Addr:      "127.0.0.1:0",
		ServerURL: "http://10.0.2.2:8080",
		AuthKey:   "preauth-key-123",
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return s
}

func TestAuthKeyEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vpn/auth-key", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp typesv1.AuthKeyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ServerURL != "http://10.0.2.2:8080" {
		t.Errorf("server_url = %q, want %q", resp.ServerURL, "http://10.0.2.2:8080")
	}
	if resp.AuthKey != "preauth-key-123" {
		t.Errorf("auth_key = %q, want %q", resp.AuthKey, "preauth-key-123")
	}
}

func TestAuthKeyRejectsGet(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vpn/auth-key", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp typesv1.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status field = %q, want \"ok\"", resp.Status)
	}
}

func TestUnknownPathIs404(t *testing.T) {
	s := newTestServer(t)

	for _, tt := range []struct {
		method, path string
	}{
		{http.MethodGet, "/api/v1/vpn/auth-key/extra"},
		{http.MethodPost, "/api/v1/something-else"},
		{http.MethodGet, "/"},
	} {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("%s %s status = %d, want 404", tt.method, tt.path, rec.Code)
		}
	}
}

func TestNewServerRequiresAuthKey(t *testing.T) {
	_, err := NewServer(Config{Addr: "127.0.0.1:0", ServerURL: "http://10.0.2.2:8080"})
	if err == nil {
		t.Fatal("NewServer() error = nil, want missing pre-auth key error")
	}
}
