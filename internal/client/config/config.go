// Package config holds the two configuration layers of the inkdrop CLI:
// the persisted Config (device token and chosen upload directory, stored as
// a small JSON file in the user's home directory) and the runtime Settings
// (endpoints, timeouts, config file location).
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/inkdrop/internal/client/hierarchy"
)

// Config is the state persisted between runs.
//
// Both fields are optional: a fresh installation has neither. The device
// token is written once after the one-time-code exchange; the parent
// directory is written after the user picks an upload target.
type Config struct {
	DeviceToken string               `json:"deviceToken,omitempty"`
	Parent      *hierarchy.Directory `json:"parent,omitempty"`
}

// Load reads the persisted config from path.
//
// Loading is soft: a missing, unreadable, or unparseable file yields an
// empty Config and a nil error. The returned bool reports whether a usable
// file was actually read, so callers can log the degraded case.
func Load(path string) (*Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Config{}, false
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return &Config{}, false
	}
	return &cfg, true
}

// Save rewrites the persisted config at path. The write goes through a
// temporary file in the same directory followed by a rename, so a crash
// mid-write never leaves a truncated config behind. The file is created
// with 0600 since it holds a long-lived credential.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".inkdrop-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
