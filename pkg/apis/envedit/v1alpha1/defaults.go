package v1alpha1

// NewEnvEdit creates a new EnvEdit configuration with API metadata set and
// all behavior fields at their zero defaults.
func NewEnvEdit() *EnvEdit {
	return &EnvEdit{
		APIVersion: APIVersion,
		Kind:       Kind,
		Spec:       Spec{},
	}
}
