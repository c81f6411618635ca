package convert

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteTarget writes the rendered document to path, creating the parent
// directory if it does not exist.
func WriteTarget(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		err := os.MkdirAll(dir, dirPerm)
		if err != nil {
			return fmt.Errorf("failed to create target directory %s: %w", dir, err)
		}
	}

	err := os.WriteFile(path, data, filePerm)
	if err != nil {
		return fmt.Errorf("failed to write target file %s: %w", path, err)
	}

	return nil
}
