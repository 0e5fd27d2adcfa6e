// Package types defines the JSON shapes served by the mock backend API.
package types

// AuthKeyResponse is the response from POST /api/v1/vpn/auth-key.
// It mirrors the production backend endpoint the Android client calls
// to join the VPN mesh.
type AuthKeyResponse struct {
	ServerURL string `json:"server_url"`
	AuthKey   string `json:"auth_key"`
}

// HealthResponse is the response from GET /health
type HealthResponse struct {
	Status string `json:"status"`
}
