// Package report renders a classified environment diff for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/devantler-tech/envedit/pkg/envvar/diff"
	fcolor "github.com/fatih/color"
)

// Line colors, matching the usual diff convention.
//
//nolint:gochecknoglobals
var (
	addedColor   = fcolor.New(fcolor.FgGreen)
	deletedColor = fcolor.New(fcolor.FgRed)
)

// Renderer writes diff entries one line per change, in entry order.
type Renderer struct {
	writer      io.Writer
	changedOnly bool
}

// NewRenderer creates a Renderer writing to the given writer. When
// changedOnly is set, Unchanged entries are omitted from the report.
func NewRenderer(writer io.Writer, changedOnly bool) *Renderer {
	return &Renderer{writer: writer, changedOnly: changedOnly}
}

// Render writes the report. Unchanged entries print as "  name=value",
// additions as "+ name=value", deletions as "- name=value", and
// modifications as a deletion line followed by an addition line.
func (r *Renderer) Render(entries []diff.Entry) error {
	for _, entry := range entries {
		err := r.renderEntry(entry)
		if err != nil {
			return fmt.Errorf("render diff entry %q: %w", entry.Name, err)
		}
	}

	return nil
}

// renderEntry writes the line(s) for a single entry.
func (r *Renderer) renderEntry(entry diff.Entry) error {
	switch entry.State {
	case diff.StateAdded:
		_, err := addedColor.Fprintf(r.writer, "+ %s=%s\n", entry.Name, entry.NewValue)

		return err //nolint:wrapcheck // wrapped by Render
	case diff.StateDeleted:
		_, err := deletedColor.Fprintf(r.writer, "- %s=%s\n", entry.Name, entry.OldValue)

		return err //nolint:wrapcheck // wrapped by Render
	case diff.StateModified:
		_, err := deletedColor.Fprintf(r.writer, "- %s=%s\n", entry.Name, entry.OldValue)
		if err != nil {
			return err //nolint:wrapcheck // wrapped by Render
		}

		_, err = addedColor.Fprintf(r.writer, "+ %s=%s\n", entry.Name, entry.NewValue)

		return err //nolint:wrapcheck // wrapped by Render
	case diff.StateUnchanged:
		if r.changedOnly {
			return nil
		}

		_, err := fmt.Fprintf(r.writer, "  %s=%s\n", entry.Name, entry.NewValue)

		return err //nolint:wrapcheck // wrapped by Render
	default:
		return fmt.Errorf("%w: %q", ErrUnknownState, entry.State)
	}
}
