package di

import (
	"fmt"

	"github.com/devantler-tech/envedit/pkg/cli/editor"
	"github.com/devantler-tech/envedit/pkg/cli/ui/timer"
	"github.com/devantler-tech/envedit/pkg/envsource"
	"github.com/samber/do/v2"
)

// ResolveEnvironmentSource resolves the environment snapshot source.
func ResolveEnvironmentSource(injector Injector) (envsource.Source, error) {
	source, err := do.Invoke[envsource.Source](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve environment source: %w", err)
	}

	return source, nil
}

// ResolveEditorOpener resolves the editor opener.
func ResolveEditorOpener(injector Injector) (editor.Opener, error) {
	opener, err := do.Invoke[editor.Opener](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve editor opener: %w", err)
	}

	return opener, nil
}

// ResolveTimer resolves the stage timer.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	resolved, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer: %w", err)
	}

	return resolved, nil
}
