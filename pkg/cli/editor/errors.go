package editor

import "errors"

// ErrNoEditor is returned when no editor could be resolved.
var ErrNoEditor = errors.New(
	"no editor found; set --editor, spec.editor in envedit.yaml, or the EDITOR environment variable",
)
