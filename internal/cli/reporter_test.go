package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/spinup/internal/uploader"
)

func disableColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func TestConsoleReporter(t *testing.T) {
	disableColor(t)

	t.Run("banner", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewConsoleReporter(&buf)

		r.Banner(3, 12_000_000, "vhs 90s")

		assert.Contains(t, buf.String(), "Uploading 3 files")
		assert.Contains(t, buf.String(), "12 MB")
		assert.Contains(t, buf.String(), "`vhs 90s`")
	})

	t.Run("success outcome", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewConsoleReporter(&buf)

		r.Report(uploader.Outcome{Path: "clips/a.mp4", URL: "https://spin-archive.org/uploads/abc"})

		assert.Equal(t, "[clips/a.mp4] Uploaded: https://spin-archive.org/uploads/abc\n", buf.String())
	})

	t.Run("failure outcome", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewConsoleReporter(&buf)

		r.Report(uploader.Outcome{Path: "clips/b.mp4", Err: errors.New("duplicate file")})

		assert.Equal(t, "[clips/b.mp4] Error: duplicate file\n", buf.String())
	})

	t.Run("summary", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewConsoleReporter(&buf)

		r.Summary(9, 1)

		assert.Equal(t, "Done: 9 uploaded, 1 failed\n", buf.String())
	})
}
