package envvar_test

import (
	"testing"

	"github.com/devantler-tech/envedit/pkg/envvar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVariable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		varName  string
		varValue string
	}{
		{
			name:     "simple pair",
			varName:  "KEY",
			varValue: "VALUE",
		},
		{
			name:     "empty value",
			varName:  "EMPTY",
			varValue: "",
		},
		{
			name:     "value containing separator",
			varName:  "PATH",
			varValue: "/usr/bin:/bin",
		},
		{
			name:     "value containing equals sign",
			varName:  "OPTS",
			varValue: "a=b",
		},
		{
			name:     "value containing newline",
			varName:  "MULTILINE",
			varValue: "abc\ndef\n",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			variable, err := envvar.NewVariable(tt.varName, tt.varValue)

			require.NoError(t, err)
			assert.Equal(t, tt.varName, variable.Name)
			assert.Equal(t, tt.varValue, variable.Value)
		})
	}
}

func TestNewVariable_NameContainsSeparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		varName string
	}{
		{name: "leading separator", varName: "=KEY"},
		{name: "embedded separator", varName: "KE=Y"},
		{name: "trailing separator", varName: "KEY="},
		{name: "separator only", varName: "="},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := envvar.NewVariable(tt.varName, "whatever")

			require.ErrorIs(t, err, envvar.ErrNameContainsSeparator)
		})
	}
}

func TestVariable_String(t *testing.T) {
	t.Parallel()

	variable, err := envvar.NewVariable("KEY", "VALUE")

	require.NoError(t, err)
	assert.Equal(t, "KEY=VALUE", variable.String())
}
