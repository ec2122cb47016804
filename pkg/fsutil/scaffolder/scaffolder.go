// Package scaffolder generates envedit.yaml configuration files.
package scaffolder

import (
	"fmt"
	"io"

	"github.com/devantler-tech/envedit/pkg/apis/envedit/v1alpha1"
	"github.com/devantler-tech/envedit/pkg/cli/ui/notify"
	"github.com/devantler-tech/envedit/pkg/fsutil"
	"sigs.k8s.io/yaml"
)

// Scaffolder writes an EnvEdit configuration to disk as YAML.
type Scaffolder struct {
	config v1alpha1.EnvEdit
	writer io.Writer
}

// NewScaffolder creates a Scaffolder for the given configuration. Progress
// messages go to the writer.
func NewScaffolder(config v1alpha1.EnvEdit, writer io.Writer) *Scaffolder {
	return &Scaffolder{config: config, writer: writer}
}

// Scaffold marshals the configuration and writes it to the output path. An
// existing file is kept unless force is set.
func (s *Scaffolder) Scaffold(output string, force bool) error {
	content, err := yaml.Marshal(s.config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	written, err := fsutil.TryWriteFile(string(content), output, force)
	if err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	if written {
		notify.Generatef(s.writer, "generated '%s'", output)
	} else {
		notify.Infof(s.writer, "'%s' exists, skipping (use --force to overwrite)", output)
	}

	return nil
}
