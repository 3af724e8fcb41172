package uploader

import (
	"fmt"
	"os"
)

// UploadTarget is a file resolved for upload: its path, base name and
// byte length. It is immutable for the lifetime of one task.
type UploadTarget struct {
	Path string
	Name string
	Size int64
}

// NewTarget resolves the file at path into an UploadTarget.
func NewTarget(path string) (UploadTarget, error) {
	info, err := os.Stat(path)
	if err != nil {
		return UploadTarget{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return UploadTarget{Path: path, Name: info.Name(), Size: info.Size()}, nil
}
