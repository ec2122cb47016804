package di

import (
	"github.com/devantler-tech/envedit/pkg/cli/editor"
	"github.com/devantler-tech/envedit/pkg/cli/ui/timer"
	"github.com/devantler-tech/envedit/pkg/envsource"
	"github.com/samber/do/v2"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by the root command
// and tests. It registers default implementations for the environment source,
// the editor opener, and the timer.
func NewRuntime() *Runtime {
	return New(
		provideEnvironmentSource,
		provideEditorOpener,
		provideTimer,
	)
}

// provideEnvironmentSource registers the process environment source.
func provideEnvironmentSource(i Injector) error {
	do.Provide(i, func(Injector) (envsource.Source, error) {
		return envsource.NewOSSource(), nil
	})

	return nil
}

// provideEditorOpener registers the terminal-attached editor opener.
func provideEditorOpener(i Injector) error {
	do.Provide(i, func(Injector) (editor.Opener, error) {
		return editor.NewTerminalOpener(), nil
	})

	return nil
}

// provideTimer registers the timer dependency with the injector.
func provideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}
