package config

import "time"

// Config holds runtime settings for the sessionkeeper CLI.
//
// Fields:
//   - IdentityEndpoint: base URL of the identity provider REST API.
//   - ProfileStoreURL: base URL of the profile store.
//   - StoragePath: path to the local SQLite database holding the session slot.
//   - RequestTimeout: per-request HTTP timeout for both remote calls.
type Config struct {
	IdentityEndpoint string
	ProfileStoreURL  string
	StoragePath      string
	RequestTimeout   time.Duration
}

// LoadDefaults populates c with sensible defaults. Both endpoints point at
// the bundled dev backend.
func (c *Config) LoadDefaults() {
	c.IdentityEndpoint = "http://127.0.0.1:8080"
	c.ProfileStoreURL = "http://127.0.0.1:8080"
	c.StoragePath = "session.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
