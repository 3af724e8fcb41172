package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	t.Run("overrides defaults and collects paths", func(t *testing.T) {
		os.Args = []string{"spinup",
			"-a", "https://archive.example.org",
			"-k", "secret",
			"-t", "tag1 tag2",
			"-w", "8",
			"-timeout", "30",
			"clips", "extra.mp4",
		}

		var cfg Config
		cfg.LoadDefaults()
		parseFlags(&cfg)

		assert.Equal(t, "https://archive.example.org", cfg.Host)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, "tag1 tag2", cfg.Tags)
		assert.Equal(t, 8, cfg.Workers)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, []string{"clips", "extra.mp4"}, cfg.Paths)
	})

	t.Run("keeps defaults when no flags given", func(t *testing.T) {
		os.Args = []string{"spinup", "movie.mp4"}

		var cfg Config
		cfg.LoadDefaults()
		parseFlags(&cfg)

		assert.Equal(t, "https://spin-archive.org", cfg.Host)
		assert.Equal(t, 4, cfg.Workers)
		assert.Equal(t, []string{"movie.mp4"}, cfg.Paths)
	})
}
