package console

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AuthToken locates the console auth token for a locally running emulator.
// The emulator writes an advertising file per instance under the runtime
// directory; the classic dotfile in the home directory is the fallback for
// older emulators.
func AuthToken() (string, error) {
	if token := advertisedToken(); token != "" {
		return token, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	data, err := os.ReadFile(filepath.Join(home, ".emulator_console_auth_token"))
	if err != nil {
		return "", fmt.Errorf("no emulator auth token found: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// advertisedToken scans the emulator's advertising files
// (/run/user/<uid>/avd/running/pid_<n>.ini) for a token line.
func advertisedToken() string {
	matches, err := filepath.Glob("/run/user/*/avd/running/pid_*.ini")
	if err != nil {
		return ""
	}
	for _, ini := range matches {
		if token := tokenFromAdvertisingFile(ini); token != "" {
			return token
		}
	}
	return ""
}

func tokenFromAdvertisingFile(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if value, ok := strings.CutPrefix(line, "grpc.token="); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
