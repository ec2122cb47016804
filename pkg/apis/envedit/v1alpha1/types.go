// Package v1alpha1 defines the envedit configuration API types.
package v1alpha1

const (
	// Group is the API group for envedit.
	Group = "envedit.devantler.tech"
	// Version is the API version for envedit.
	Version = "v1alpha1"
	// Kind is the kind for envedit configurations.
	Kind = "EnvEdit"
	// APIVersion is the full API version for envedit.
	APIVersion = Group + "/" + Version
)

// --- Core Types ---

// EnvEdit represents an envedit tool configuration including API metadata and
// the desired editing behavior.
type EnvEdit struct {
	APIVersion string `json:"apiVersion,omitzero" jsonschema:"description=API version of the envedit config"`
	Kind       string `json:"kind,omitzero"       jsonschema:"description=Kind of the envedit config"`

	Spec Spec `json:"spec,omitzero"`
}

// Spec defines the desired behavior of an edit session.
type Spec struct {
	//nolint:lll
	Editor     string   `json:"editor,omitzero"     jsonschema:"description=Editor command for the edit session (e.g. code --wait)"`
	EditorArgs []string `json:"editorArgs,omitzero" jsonschema:"description=Extra arguments passed to the editor before the file path"`

	Diff DiffSpec `json:"diff,omitzero"`
}

// DiffSpec defines how the resulting diff is reported.
type DiffSpec struct {
	ChangedOnly bool `json:"changedOnly,omitzero" jsonschema:"description=Hide unchanged variables in the report"`
}
