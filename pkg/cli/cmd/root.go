// Package cmd contains the envedit command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/devantler-tech/envedit/pkg/cli/editor"
	"github.com/devantler-tech/envedit/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/envedit/pkg/cli/ui/report"
	runtime "github.com/devantler-tech/envedit/pkg/di"
	"github.com/devantler-tech/envedit/pkg/io/configmanager"
	"github.com/devantler-tech/envedit/pkg/svc/editsession"
	fcolor "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// TimingFlagName is the persistent flag enabling the timed completion message.
const TimingFlagName = "timing"

// NewRootCmd creates and returns the root command with version info and
// subcommands, backed by the default runtime container.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return NewRootCmdWithRuntime(version, commit, date, runtime.NewRuntime())
}

// NewRootCmdWithRuntime creates the root command against a caller-supplied
// runtime container, so callers can substitute the environment source, editor
// opener, or timer.
func NewRootCmdWithRuntime(
	version, commit, date string,
	runtimeContainer *runtime.Runtime,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envedit",
		Short: "envedit is a CLI tool for editing environment variables in your editor",
		Long: "envedit snapshots the current environment into a temporary file, opens it " +
			"in your editor, and reports what was added, deleted, and modified when the " +
			"editor exits.",
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().Bool(
		TimingFlagName,
		false,
		"Show timing output after the report",
	)

	manager := configmanager.NewCommandConfigManager(cmd, configmanager.DefaultFieldSelectors()...)
	cmd.RunE = runtime.RunEWithRuntime(runtimeContainer, handleRootRunE(manager))

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewSchemaCmd())

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// --- internals ---

// handleRootRunE runs the edit session with the loaded configuration and the
// services resolved from the injector.
func handleRootRunE(
	manager *configmanager.ConfigManager,
) func(*cobra.Command, runtime.Injector) error {
	return func(cmd *cobra.Command, injector runtime.Injector) error {
		// Keep piped report output free of escape codes.
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fcolor.NoColor = true
		}

		config, err := manager.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		source, err := runtime.ResolveEnvironmentSource(injector)
		if err != nil {
			return err
		}

		opener, err := runtime.ResolveEditorOpener(injector)
		if err != nil {
			return err
		}

		stageTimer, err := runtime.ResolveTimer(injector)
		if err != nil {
			return err
		}

		showTiming, err := cmd.Flags().GetBool(TimingFlagName)
		if err != nil {
			return fmt.Errorf("read %s flag: %w", TimingFlagName, err)
		}

		session := &editsession.Session{
			Source:     source,
			Opener:     opener,
			Editor:     editor.NewResolver(config.Spec.Editor).Resolve(),
			EditorArgs: config.Spec.EditorArgs,
			Reporter:   report.NewRenderer(cmd.OutOrStdout(), config.Spec.Diff.ChangedOnly),
			Timer:      stageTimer,
			Out:        cmd.OutOrStdout(),
			ShowTiming: showTiming,
		}

		return session.Run(cmd.Context())
	}
}
