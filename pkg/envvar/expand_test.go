package envvar_test

import (
	"testing"

	"github.com/devantler-tech/envedit/pkg/envvar"
	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	t.Setenv("ENVEDIT_TEST_EDITOR", "vim")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty string", value: "", want: ""},
		{name: "no placeholder", value: "code --wait", want: "code --wait"},
		{name: "set variable", value: "${ENVEDIT_TEST_EDITOR}", want: "vim"},
		{name: "placeholder inside text", value: "${ENVEDIT_TEST_EDITOR} -R", want: "vim -R"},
		{name: "unset variable", value: "${ENVEDIT_TEST_UNSET}", want: ""},
		{name: "unset with default", value: "${ENVEDIT_TEST_UNSET:-nano}", want: "nano"},
		{name: "unset with empty default", value: "${ENVEDIT_TEST_UNSET:-}", want: ""},
		{name: "set variable ignores default", value: "${ENVEDIT_TEST_EDITOR:-nano}", want: "vim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, envvar.Expand(tt.value))
		})
	}
}
