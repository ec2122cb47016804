// Package editor resolves and launches the user's external editor.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Resolver handles editor command resolution with proper precedence.
type Resolver struct {
	configured string
}

// NewResolver creates a resolver. The configured command carries the merged
// --editor flag / spec.editor config value; it wins over everything else.
func NewResolver(configured string) *Resolver {
	return &Resolver{configured: configured}
}

// Resolve resolves the editor command based on precedence:
// 1. --editor flag or spec.editor from envedit.yaml (merged by the config layer)
// 2. ENVEDIT_EDITOR, EDITOR, or VISUAL environment variables
// 3. Fallback to vim, nano, vi.
//
// Returns an empty string when no editor could be found.
func (r *Resolver) Resolve() string {
	if r.configured != "" {
		return r.configured
	}

	for _, name := range []string{"ENVEDIT_EDITOR", "EDITOR", "VISUAL"} {
		if editorEnv := os.Getenv(name); editorEnv != "" {
			return editorEnv
		}
	}

	for _, editorName := range []string{"vim", "nano", "vi"} {
		editorPath, err := exec.LookPath(editorName)
		if err == nil {
			return editorPath
		}
	}

	return ""
}

// Opener launches an editor on a file path and blocks until it exits.
type Opener interface {
	// Open runs the editor command (which may carry embedded arguments, e.g.
	// "code --wait") with the extra arguments and the file path appended.
	Open(ctx context.Context, editorCmd string, extraArgs []string, path string) error
}

// TerminalOpener runs the editor attached to the current terminal.
type TerminalOpener struct{}

// NewTerminalOpener creates an Opener attached to stdin/stdout/stderr.
func NewTerminalOpener() TerminalOpener {
	return TerminalOpener{}
}

// Open runs the editor and waits for it to exit. A failure to launch or a
// non-zero exit is returned as an error; the caller treats it as fatal.
func (TerminalOpener) Open(ctx context.Context, editorCmd string, extraArgs []string, path string) error {
	if editorCmd == "" {
		return ErrNoEditor
	}

	// The command may carry its own arguments ("code --wait").
	fields := strings.Fields(editorCmd)
	args := make([]string, 0, len(fields)-1+len(extraArgs)+1)
	args = append(args, fields[1:]...)
	args = append(args, extraArgs...)
	args = append(args, path)

	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		return fmt.Errorf("editor %q failed: %w", fields[0], err)
	}

	return nil
}
