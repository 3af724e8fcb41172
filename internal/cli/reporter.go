package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/dmitrijs2005/spinup/internal/uploader"
)

// Reporter consumes per-file upload outcomes. The core makes no
// assumption about how they are displayed.
type Reporter interface {
	// Banner announces the run before any task starts.
	Banner(count int, totalSize int64, tags string)

	// Report renders one terminal outcome.
	Report(outcome uploader.Outcome)

	// Summary renders the aggregate counts after all outcomes arrived.
	Summary(succeeded, failed int)
}

// ConsoleReporter writes human-readable progress lines to w.
type ConsoleReporter struct {
	w io.Writer
}

func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

func (r *ConsoleReporter) Banner(count int, totalSize int64, tags string) {
	fmt.Fprintf(r.w, "Uploading %d files (%s) with tags `%s`\n",
		count, humanize.Bytes(uint64(totalSize)), color.New(color.Bold).Sprint(tags))
}

func (r *ConsoleReporter) Report(o uploader.Outcome) {
	if o.Succeeded() {
		fmt.Fprintf(r.w, "[%s] Uploaded: %s\n", o.Path, color.GreenString(o.URL))
		return
	}
	fmt.Fprintf(r.w, "[%s] Error: %s\n", o.Path, color.RedString(o.Err.Error()))
}

func (r *ConsoleReporter) Summary(succeeded, failed int) {
	fmt.Fprintf(r.w, "Done: %d uploaded, %d failed\n", succeeded, failed)
}
