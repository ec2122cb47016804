package fsutil

import "errors"

// ErrEmptyOutputPath is returned when a write is requested without an output path.
var ErrEmptyOutputPath = errors.New("output path is empty")
