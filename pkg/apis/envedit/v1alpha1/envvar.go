package v1alpha1

import "github.com/devantler-tech/envedit/pkg/envvar"

// ExpandEnvVars expands environment variable placeholders in all string
// fields of the configuration.
//
// Placeholders use the format ${VAR_NAME} with optional ${VAR_NAME:-default}
// syntax. If a referenced environment variable is not set and no default is
// given, the placeholder is replaced with an empty string.
//
// This method should be called after unmarshaling the configuration so all
// user-facing string values support environment variable expansion.
func (e *EnvEdit) ExpandEnvVars() {
	e.Spec.Editor = envvar.Expand(e.Spec.Editor)

	for i, arg := range e.Spec.EditorArgs {
		e.Spec.EditorArgs[i] = envvar.Expand(arg)
	}
}
