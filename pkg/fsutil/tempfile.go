package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// TempFile is a scoped temporary file: created writable and seekable, and
// removed from disk when closed, regardless of which step of the surrounding
// workflow failed.
type TempFile struct {
	file *os.File
}

// NewTempFile creates a temporary file in the default temp directory using
// the given name pattern (see [os.CreateTemp]).
func NewTempFile(pattern string) (*TempFile, error) {
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return &TempFile{file: file}, nil
}

// Path returns the on-disk path of the file.
func (t *TempFile) Path() string {
	return t.file.Name()
}

// Read reads from the current offset.
func (t *TempFile) Read(p []byte) (int, error) {
	return t.file.Read(p) //nolint:wrapcheck // io.Reader contract, callers wrap
}

// Write writes at the current offset.
func (t *TempFile) Write(p []byte) (int, error) {
	return t.file.Write(p) //nolint:wrapcheck // io.Writer contract, callers wrap
}

// Sync flushes written content to disk before the path is handed to another
// process.
func (t *TempFile) Sync() error {
	err := t.file.Sync()
	if err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	return nil
}

// Rewind repositions the file at offset 0 so written content can be re-read.
func (t *TempFile) Rewind() error {
	_, err := t.file.Seek(0, io.SeekStart)
	if err != nil {
		return fmt.Errorf("rewind temp file: %w", err)
	}

	return nil
}

// Close closes the file and removes it from disk. Removal happens even when
// closing fails.
func (t *TempFile) Close() error {
	closeErr := t.file.Close()
	removeErr := os.Remove(t.file.Name())

	if closeErr != nil {
		closeErr = fmt.Errorf("close temp file: %w", closeErr)
	}

	if removeErr != nil {
		removeErr = fmt.Errorf("remove temp file: %w", removeErr)
	}

	return errors.Join(closeErr, removeErr)
}
