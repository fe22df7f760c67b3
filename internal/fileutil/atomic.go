// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

const ownerReadWrite = 0o600

// WriteAtomic writes data to path through a temporary file in the same
// directory followed by a rename, so the caller either sees the complete
// file or no file at all. Returns the number of bytes written.
func WriteAtomic(path string, data []byte) (size int64, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("creating temporary file: %w", err)
	}

	defer func() {
		tmp.Close() //nolint:gosec // best-effort cleanup

		if err != nil {
			os.Remove(tmp.Name()) //nolint:gosec // best-effort cleanup
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return 0, fmt.Errorf("writing temporary file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), ownerReadWrite); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	return int64(len(data)), nil
}
