// Package editsession orchestrates one interactive environment edit: snapshot
// the environment, hand it to an editor, and report what changed.
package editsession

import (
	"context"
	"fmt"
	"io"

	"github.com/devantler-tech/envedit/pkg/cli/editor"
	"github.com/devantler-tech/envedit/pkg/cli/ui/notify"
	"github.com/devantler-tech/envedit/pkg/cli/ui/report"
	"github.com/devantler-tech/envedit/pkg/cli/ui/timer"
	"github.com/devantler-tech/envedit/pkg/envsource"
	"github.com/devantler-tech/envedit/pkg/envvar"
	"github.com/devantler-tech/envedit/pkg/envvar/diff"
	"github.com/devantler-tech/envedit/pkg/fsutil"
)

// tempFilePattern names the scratch file handed to the editor.
const tempFilePattern = "envedit-*.env"

// Session runs a single edit of the environment snapshot.
type Session struct {
	// Source supplies the environment snapshot.
	Source envsource.Source
	// Opener launches the editor on the scratch file.
	Opener editor.Opener
	// Editor is the resolved editor command, possibly with embedded arguments.
	Editor string
	// EditorArgs are extra arguments inserted before the file path.
	EditorArgs []string
	// Reporter renders the classified diff.
	Reporter *report.Renderer
	// Timer tracks elapsed time for the completion message.
	Timer timer.Timer
	// Out receives the completion message when ShowTiming is set.
	Out io.Writer
	// ShowTiming enables the timed completion message after the report.
	ShowTiming bool
}

// Run snapshots the environment, opens the editor on a temp file holding the
// snapshot, re-parses the edited file, and renders the diff between the two.
// The temp file is removed on every path out of this function.
func (s *Session) Run(ctx context.Context) error {
	snapshot, err := envvar.FromPairs(s.Source.Pairs())
	if err != nil {
		return fmt.Errorf("snapshot environment: %w", err)
	}

	file, err := fsutil.NewTempFile(tempFilePattern)
	if err != nil {
		return fmt.Errorf("create scratch file: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	err = snapshot.Write(file)
	if err != nil {
		return fmt.Errorf("write snapshot to %q: %w", file.Path(), err)
	}

	err = file.Sync()
	if err != nil {
		return fmt.Errorf("flush snapshot to %q: %w", file.Path(), err)
	}

	err = s.Opener.Open(ctx, s.Editor, s.EditorArgs, file.Path())
	if err != nil {
		return fmt.Errorf("open editor: %w", err)
	}

	err = file.Rewind()
	if err != nil {
		return fmt.Errorf("reread %q: %w", file.Path(), err)
	}

	edited, err := envvar.Parse(file)
	if err != nil {
		return fmt.Errorf("parse edited file %q: %w", file.Path(), err)
	}

	err = s.Reporter.Render(diff.Compute(snapshot, edited))
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if s.ShowTiming {
		notify.SuccessWithTimerf(s.Out, s.Timer, "environment edited")
	}

	return nil
}
