package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/spinup/internal/flagx"
	"github.com/dmitrijs2005/spinup/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It
// relies on timex.Duration so JSON can specify the request timeout
// either as a string like "60s" or as integer nanoseconds. After
// parsing, values are copied into the runtime Config.
type JsonConfig struct {
	Host           string         `json:"host"`
	APIKey         string         `json:"api_key"`
	Tags           string         `json:"tags"`
	Workers        int            `json:"workers"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file. The
// file path comes from the -c or -config flags; when neither is given
// no JSON is loaded. Fields absent from the JSON keep their current
// values. Panics on read or unmarshal errors, matching parseFlags.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Host != "" {
		cfg.Host = jc.Host
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.Tags != "" {
		cfg.Tags = jc.Tags
	}
	if jc.Workers > 0 {
		cfg.Workers = jc.Workers
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
