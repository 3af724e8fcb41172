package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/spinup/internal/flagx"
)

// valueFlags lists every flag that consumes the following argument,
// so positional file arguments can be told apart from flag values.
var valueFlags = []string{"-a", "-k", "-t", "-w", "-timeout", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string        base URL of the archive service (default from Config)
//	-k string        API key (bearer credential)
//	-t string        tag string applied to finalized uploads
//	-w int           number of concurrent upload workers
//	-timeout int     per-request timeout in seconds
//
// Remaining positional arguments are collected into Config.Paths.
//
// Note: the function filters os.Args to only include the flags it
// knows about, using flagx.FilterArgs, to avoid interference with
// other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-t", "-w", "-timeout"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Host, "a", cfg.Host, "base URL of the archive service")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key")
	fs.StringVar(&cfg.Tags, "t", cfg.Tags, "tags applied to uploaded files")
	fs.IntVar(&cfg.Workers, "w", cfg.Workers, "number of concurrent upload workers")
	requestTimeout := fs.Int("timeout", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.Paths = flagx.Positional(os.Args[1:], valueFlags)
}
