// Package config resolves where the tempo store lives on disk.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvDBPath overrides the store location when set.
const EnvDBPath = "TEMPO_DB"

// DBPath returns the path to the database file.
// Resolution order: TEMPO_DB env var, then ~/.tempo/tempo.db.
func DBPath() (string, error) {
	if path := os.Getenv(EnvDBPath); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tempo", "tempo.db"), nil
}
