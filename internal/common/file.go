package common

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteFileAtomic writes data to a temp file in the same directory, syncs it
// and renames it over path, so readers see either the old or the new file.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	return writeViaTemp(path, data, perm, func(tmpPath string) error {
		if err := os.Rename(tmpPath, path); err != nil {
			return fmt.Errorf("failed to replace %s: %w", path, err)
		}
		return nil
	})
}

// WriteFileExclusive is WriteFileAtomic that never replaces an existing path.
// The temp file is hard-linked into place, so of two concurrent writers only
// one succeeds; the other gets an error matching fs.ErrExist.
func WriteFileExclusive(path string, data []byte, perm fs.FileMode) error {
	return writeViaTemp(path, data, perm, func(tmpPath string) error {
		if err := os.Link(tmpPath, path); err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		return nil
	})
}

func writeViaTemp(path string, data []byte, perm fs.FileMode, publish func(tmpPath string) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	return publish(tmpPath)
}

// WithBOM prefixes data with a UTF-8 BOM for proper display in Windows.
func WithBOM(data []byte) []byte {
	return append(append([]byte{}, utf8BOM...), data...)
}

// TrimBOM skips a UTF-8 BOM if present.
func TrimBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
