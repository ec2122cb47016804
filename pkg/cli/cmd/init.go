package cmd

import (
	"fmt"

	"github.com/devantler-tech/envedit/pkg/apis/envedit/v1alpha1"
	"github.com/devantler-tech/envedit/pkg/fsutil/scaffolder"
	"github.com/spf13/cobra"
)

// ForceFlagName is the flag that overwrites an existing configuration file.
const ForceFlagName = "force"

// NewInitCmd creates the init command, which scaffolds an envedit.yaml in the
// working directory.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Generate an envedit.yaml configuration file",
		RunE:         handleInitRunE,
		SilenceUsage: true,
	}

	cmd.Flags().Bool(ForceFlagName, false, "Overwrite an existing envedit.yaml")
	cmd.Flags().StringP("output", "o", "envedit.yaml", "Path to write the configuration file to")

	return cmd
}

// handleInitRunE handles the init command.
func handleInitRunE(cmd *cobra.Command, _ []string) error {
	force, err := cmd.Flags().GetBool(ForceFlagName)
	if err != nil {
		return fmt.Errorf("read %s flag: %w", ForceFlagName, err)
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("read output flag: %w", err)
	}

	return scaffolder.
		NewScaffolder(*v1alpha1.NewEnvEdit(), cmd.OutOrStdout()).
		Scaffold(output, force)
}
