package config

import "time"

// Config holds runtime settings for the TuriSync CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - DatabaseDriver: local store backend, "sqlite" or "postgres".
//   - DatabaseDSN: data source name for the local store.
//   - RequestTimeout: per-request timeout for API calls.
//
// Units: RequestTimeout is a time.Duration (e.g., 10*time.Second).
type Config struct {
	APIBaseURL     string
	DatabaseDriver string
	DatabaseDSN    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "turisync.db"
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
