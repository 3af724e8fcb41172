// Package cli wires configuration, discovery, the protocol client and
// the uploader into the spinup command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/dmitrijs2005/spinup/internal/archive"
	"github.com/dmitrijs2005/spinup/internal/config"
	"github.com/dmitrijs2005/spinup/internal/logging"
	"github.com/dmitrijs2005/spinup/internal/scan"
	"github.com/dmitrijs2005/spinup/internal/uploader"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	reporter Reporter

	// protocol overrides the real archive client when non-nil; used
	// by tests.
	protocol uploader.Protocol

	out  io.Writer
	errW io.Writer
}

func NewApp(c *config.Config) *App {
	sl := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(sl).With("run_id", uuid.NewString())

	return &App{
		config:   c,
		log:      logger,
		reporter: NewConsoleReporter(os.Stdout),
		out:      os.Stdout,
		errW:     os.Stderr,
	}
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		a.log.Warn(context.Background(), "shutdown signal received, cancelling remaining uploads")
		cancelFunc()
	}()
}

// ensureAPIKey prompts for the credential on an interactive terminal
// when it was not supplied via flags or config file.
func (a *App) ensureAPIKey() error {
	if a.config.APIKey != "" {
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("API key is required (use -k or a config file)")
	}

	fmt.Fprintln(a.errW, "-Enter API key")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}

	key := strings.TrimSpace(string(b))
	if key == "" {
		return errors.New("API key is required")
	}

	a.config.APIKey = key
	return nil
}

// Run executes one upload batch and returns the process exit code:
// non-zero when the arguments are unusable or nothing is eligible,
// zero otherwise regardless of how many individual uploads failed.
func (a *App) Run(ctx context.Context) int {

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.initSignalHandler(cancel)

	if len(a.config.Paths) == 0 {
		fmt.Fprintln(a.errW, "No files or directories specified.")
		return 1
	}

	if err := a.ensureAPIKey(); err != nil {
		fmt.Fprintln(a.errW, err)
		return 1
	}

	files, err := scan.Collect(a.config.Paths)
	if err != nil {
		fmt.Fprintln(a.errW, err)
		return 1
	}

	eligible := scan.FilterMedia(files)
	if len(eligible) == 0 {
		fmt.Fprintln(a.errW, "No video files found.")
		return 1
	}

	var totalSize int64
	for _, f := range eligible {
		if info, err := os.Stat(f); err == nil {
			totalSize += info.Size()
		}
	}

	a.reporter.Banner(len(eligible), totalSize, a.config.Tags)
	a.log.Info(ctx, "starting upload batch", "files", len(eligible), "workers", a.config.Workers, "host", a.config.Host)

	protocol := a.protocol
	if protocol == nil {
		protocol = archive.NewClient(a.config.Host, a.config.APIKey, a.config.RequestTimeout, a.log)
	}

	u := uploader.New(protocol, a.config.Tags, a.config.Workers, a.log)

	var succeeded, failed int
	for outcome := range u.Run(ctx, eligible) {
		a.reporter.Report(outcome)
		if outcome.Succeeded() {
			succeeded++
		} else {
			failed++
		}
	}

	a.reporter.Summary(succeeded, failed)
	a.log.Info(ctx, "upload batch finished", "succeeded", succeeded, "failed", failed)

	return 0
}
