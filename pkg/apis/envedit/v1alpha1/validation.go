package v1alpha1

import "fmt"

// Validate checks the configuration for consistency. API metadata may be
// omitted entirely, but when present it must match this API's group, version,
// and kind.
func (e *EnvEdit) Validate() error {
	if e.APIVersion != "" && e.APIVersion != APIVersion {
		return fmt.Errorf("%w: %q (expected %q)", ErrInvalidAPIVersion, e.APIVersion, APIVersion)
	}

	if e.Kind != "" && e.Kind != Kind {
		return fmt.Errorf("%w: %q (expected %q)", ErrInvalidKind, e.Kind, Kind)
	}

	return nil
}
