package report

import "errors"

// ErrUnknownState is returned when a diff entry carries an unknown state.
var ErrUnknownState = errors.New("unknown diff state")
