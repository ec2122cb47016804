package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// File permission constants.
	dirPermUserGroupRX = 0o750
	filePermUserRW     = 0o600
)

// TryWriteFile writes content to a file path, handling force/overwrite logic.
// When the file exists and force is false the write is skipped. Parent
// directories are created as needed.
//
// Returns true when the file was written, false when an existing file was
// kept.
func TryWriteFile(content string, output string, force bool) (bool, error) {
	if output == "" {
		return false, ErrEmptyOutputPath
	}

	output = filepath.Clean(output)

	if !force {
		_, err := os.Stat(output)
		if err == nil {
			return false, nil // File exists and force is false, skip writing
		} else if !errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("failed to check file %s: %w", output, err)
		}
	}

	dir := filepath.Dir(output)

	err := os.MkdirAll(dir, dirPermUserGroupRX)
	if err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	err = os.WriteFile(output, []byte(content), filePermUserRW)
	if err != nil {
		return false, fmt.Errorf("failed to write file %s: %w", output, err)
	}

	return true, nil
}
