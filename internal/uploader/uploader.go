// Package uploader drives per-file upload tasks through the archive
// protocol with bounded concurrency. Each task is self-contained:
// its session never escapes to another task, and its failure never
// cancels or blocks a sibling.
package uploader

import (
	"context"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/spinup/internal/archive"
	"github.com/dmitrijs2005/spinup/internal/logging"
)

// DefaultWorkers is the worker budget used when none is configured.
const DefaultWorkers = 4

// Protocol is the subset of the archive client the uploader needs.
// It is satisfied by *archive.Client and by instrumented fakes in
// tests.
type Protocol interface {
	Initiate(ctx context.Context, fileName string, contentLength int64) (*archive.UploadSession, error)
	Transfer(ctx context.Context, localPath string, destinationURL string) error
	Finalize(ctx context.Context, record archive.FinalizationRecord) (string, error)
}

type Uploader struct {
	protocol Protocol
	tags     string
	workers  int
	log      logging.Logger
}

// New returns an Uploader that tags every finalized upload with tags
// and runs at most workers tasks concurrently.
func New(protocol Protocol, tags string, workers int, log logging.Logger) *Uploader {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Uploader{protocol: protocol, tags: tags, workers: workers, log: log}
}

// Run starts one upload task per path and returns a channel carrying
// exactly one Outcome per path, in completion order. The channel is
// closed once every task has a terminal outcome; an empty path list
// closes it immediately without any network calls. Cancelling ctx
// makes not-yet-started tasks fail fast; it does not abandon the
// accounting, so every path still gets its outcome.
func (u *Uploader) Run(ctx context.Context, paths []string) <-chan Outcome {

	outcomes := make(chan Outcome, len(paths))

	go func() {
		defer close(outcomes)

		g := new(errgroup.Group)
		g.SetLimit(u.workers)

		for _, path := range paths {
			path := path
			g.Go(func() error {
				outcomes <- u.uploadOne(ctx, path)
				return nil
			})
		}

		_ = g.Wait()
	}()

	return outcomes
}

// uploadOne drives a single file through Initiate, Transfer and
// Finalize. The first failed phase short-circuits; the remote side is
// not cleaned up.
func (u *Uploader) uploadOne(ctx context.Context, path string) Outcome {

	if err := ctx.Err(); err != nil {
		return Outcome{Path: path, Err: err}
	}

	target, err := NewTarget(path)
	if err != nil {
		return Outcome{Path: path, Err: err}
	}

	u.log.Info(ctx, "uploading file", "file", target.Name, "size", humanize.Bytes(uint64(target.Size)))

	session, err := u.protocol.Initiate(ctx, target.Name, target.Size)
	if err != nil {
		return Outcome{Path: path, Err: err}
	}

	if err := u.protocol.Transfer(ctx, target.Path, session.URL); err != nil {
		return Outcome{Path: path, Err: err}
	}

	record := archive.FinalizationRecord{ID: session.ID, Tags: u.tags}

	url, err := u.protocol.Finalize(ctx, record)
	if err != nil {
		return Outcome{Path: path, Err: err}
	}

	return Outcome{Path: path, URL: url}
}
