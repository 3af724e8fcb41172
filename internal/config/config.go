// Package config assembles runtime settings for the spinup CLI from
// defaults, an optional JSON file and command-line flags, in that
// order of precedence.
package config

import "time"

// Config holds runtime settings for the spinup CLI.
//
// Fields:
//   - Host: base URL of the archive service.
//   - APIKey: bearer credential sent with every API call.
//   - Tags: tag string applied to every finalized upload.
//   - Workers: upper bound on concurrently running upload tasks.
//   - RequestTimeout: per-request deadline for API calls; Transfer of
//     large files is exempt (it gets no fixed deadline, only context
//     cancellation).
//   - Paths: files or directories to upload, directories recursively.
type Config struct {
	Host           string
	APIKey         string
	Tags           string
	Workers        int
	RequestTimeout time.Duration
	Paths          []string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Host = "https://spin-archive.org"
	c.Workers = 4
	c.RequestTimeout = 60 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays
// values from JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
