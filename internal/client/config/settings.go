package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dmitrijs2005/inkdrop/internal/flagx"
)

// Settings holds runtime options that are not persisted between runs.
//
// Fields:
//   - AuthHost: base URL of the authentication service (device and session
//     token endpoints).
//   - DiscoveryURL: full URL of the service-manager endpoint that resolves
//     the document-storage host, including its fixed query parameters.
//   - ConfigPath: location of the persisted JSON config.
//   - RenderTimeout: upper bound for the headless-browser PDF rendering.
type Settings struct {
	AuthHost      string
	DiscoveryURL  string
	ConfigPath    string
	RenderTimeout time.Duration
}

// LoadDefaults populates s with the production endpoints and a config file
// in the user's home directory.
func (s *Settings) LoadDefaults() {
	s.AuthHost = "https://webapp-production-dot-remarkable-production.appspot.com"
	s.DiscoveryURL = "https://service-manager-production-dot-remarkable-production.appspot.com" +
		"/service/json/1/document-storage?environment=production&group=auth0%7C5a68dc51cb30df3877a1d7c4&apiVer=2"
	s.RenderTimeout = 60 * time.Second

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	s.ConfigPath = filepath.Join(home, ".inkdrop.json")
}

// LoadSettings constructs Settings, applies defaults, then overlays values
// from the environment and command-line flags. Later sources take
// precedence over earlier ones. The environment is typically seeded from a
// .env file by the entrypoint before this runs.
func LoadSettings(args []string) *Settings {
	s := &Settings{}
	s.LoadDefaults()
	s.parseEnv()
	s.parseFlags(args)
	return s
}

func (s *Settings) parseEnv() {
	if v := os.Getenv("INKDROP_AUTH_HOST"); v != "" {
		s.AuthHost = v
	}
	if v := os.Getenv("INKDROP_DISCOVERY_URL"); v != "" {
		s.DiscoveryURL = v
	}
	if v := os.Getenv("INKDROP_CONFIG"); v != "" {
		s.ConfigPath = v
	}
	if v := os.Getenv("INKDROP_RENDER_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			s.RenderTimeout = time.Duration(secs) * time.Second
		}
	}
}

// parseFlags overlays Settings with values from command-line flags.
//
// Supported flags:
//
//	-c / -config string   path to the persisted config file
//
// Args are filtered through flagx.FilterArgs so the positional puzzle URL
// and flags owned by other packages pass through untouched.
func (s *Settings) parseFlags(args []string) {
	if path := flagx.ConfigPathFlags(args); path != "" {
		s.ConfigPath = path
	}
}
