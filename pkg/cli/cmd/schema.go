package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/devantler-tech/envedit/pkg/apis/envedit/v1alpha1"
	"github.com/devantler-tech/envedit/pkg/cli/ui/notify"
	"github.com/devantler-tech/envedit/pkg/fsutil"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

// NewSchemaCmd creates the schema command, which emits the JSON schema for
// envedit.yaml.
func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "schema",
		Short:        "Print the JSON schema for envedit.yaml",
		RunE:         handleSchemaRunE,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "", "Write the schema to a file instead of stdout")

	return cmd
}

// handleSchemaRunE handles the schema command.
func handleSchemaRunE(cmd *cobra.Command, _ []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("read output flag: %w", err)
	}

	schemaJSON, err := generateSchema()
	if err != nil {
		return err
	}

	if output == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schemaJSON))
		if err != nil {
			return fmt.Errorf("print schema: %w", err)
		}

		return nil
	}

	_, err = fsutil.TryWriteFile(string(schemaJSON)+"\n", output, true)
	if err != nil {
		return fmt.Errorf("write schema: %w", err)
	}

	notify.Generatef(cmd.OutOrStdout(), "generated '%s'", output)

	return nil
}

// generateSchema reflects the configuration types into an indented JSON schema
// document.
func generateSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	schema := reflector.Reflect(&v1alpha1.EnvEdit{})
	schema.ID = ""
	schema.Title = "EnvEdit Configuration"
	schema.Description = "JSON schema for envedit configuration (envedit.yaml)"

	// All fields use omitzero, so nothing is required.
	schema.Required = nil

	if schema.Properties != nil {
		if property, ok := schema.Properties.Get("kind"); ok && property != nil {
			property.Enum = []any{v1alpha1.Kind}
		}

		if property, ok := schema.Properties.Get("apiVersion"); ok && property != nil {
			property.Enum = []any{v1alpha1.APIVersion}
		}
	}

	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return schemaJSON, nil
}
