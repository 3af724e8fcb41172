package scan

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// IsMedia reports whether the file at path is an eligible upload
// target. Eligibility is decided by sniffing the file content, not by
// extension, so a renamed text file does not slip through.
func IsMedia(path string) bool {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mtype.String(), "video/")
}

// FilterMedia returns the subset of files that IsMedia accepts,
// preserving order.
func FilterMedia(files []string) []string {
	eligible := make([]string, 0, len(files))
	for _, f := range files {
		if IsMedia(f) {
			eligible = append(eligible, f)
		}
	}
	return eligible
}
