package scaffolder_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/devantler-tech/envedit/pkg/apis/envedit/v1alpha1"
	"github.com/devantler-tech/envedit/pkg/fsutil/scaffolder"
	fcolor "github.com/fatih/color"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	fcolor.NoColor = true

	exitCode := m.Run()

	snaps.Clean(m, snaps.CleanOpts{Sort: true})

	os.Exit(exitCode)
}

func TestScaffold_GeneratesConfigFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "envedit.yaml")
	out := &bytes.Buffer{}

	err := scaffolder.NewScaffolder(*v1alpha1.NewEnvEdit(), out).Scaffold(output, false)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "✚ generated")

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, string(content))
}

func TestScaffold_KeepsExistingFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "envedit.yaml")
	require.NoError(t, os.WriteFile(output, []byte("existing: true\n"), 0o600))

	out := &bytes.Buffer{}

	err := scaffolder.NewScaffolder(*v1alpha1.NewEnvEdit(), out).Scaffold(output, false)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "skipping")

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(content))
}

func TestScaffold_ForceOverwrites(t *testing.T) {
	output := filepath.Join(t.TempDir(), "envedit.yaml")
	require.NoError(t, os.WriteFile(output, []byte("existing: true\n"), 0o600))

	out := &bytes.Buffer{}

	config := v1alpha1.NewEnvEdit()
	config.Spec.Editor = "code --wait"

	err := scaffolder.NewScaffolder(*config, out).Scaffold(output, true)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "✚ generated")

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "editor: code --wait")
}

func TestScaffold_EmptyOutputPath(t *testing.T) {
	err := scaffolder.NewScaffolder(*v1alpha1.NewEnvEdit(), &bytes.Buffer{}).Scaffold("", false)

	require.Error(t, err)
}
