package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	ErrNotRegularFile = errors.New("not a regular file")
	ErrFileTooLarge   = errors.New("file too large")
)

// OpenRegular opens path for reading after checking that it is a regular
// file no bigger than maxSize bytes (0 disables the limit). It returns the
// open file and its base name; the caller closes the file.
func OpenRegular(path string, maxSize int64) (*os.File, string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, "", fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	if maxSize > 0 && fi.Size() > maxSize {
		return nil, "", fmt.Errorf("%s is %d bytes, limit %d: %w", path, fi.Size(), maxSize, ErrFileTooLarge)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}

	return f, filepath.Base(path), nil
}
