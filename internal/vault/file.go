package vault

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// readStore reads the whole store file. A missing file is the first-run
// case, reported via the second return rather than an error.
func readStore(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read store: %w", err)
	}
	return data, true, nil
}

// writeStore replaces the store file in one step: the blob goes to a temp
// file that is renamed over the target, so a crash mid-write leaves the
// previous blob intact.
func writeStore(path string, blob []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(blob)); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}
