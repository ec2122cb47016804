package configmanager

import "github.com/spf13/pflag"

// FieldSelector describes one configurable field: the configuration key it
// lives under, the flag that overrides it, and its default value.
type FieldSelector struct {
	// Key is the configuration key, e.g. "spec.editor".
	Key string
	// Flag is the command line flag name, e.g. "editor".
	Flag string

	defaultValue any
	registerFlag func(flags *pflag.FlagSet)
}

// StringField creates a field selector for a string configuration field.
func StringField(key, flag, description, defaultValue string) FieldSelector {
	return FieldSelector{
		Key:          key,
		Flag:         flag,
		defaultValue: defaultValue,
		registerFlag: func(flags *pflag.FlagSet) {
			flags.String(flag, defaultValue, description)
		},
	}
}

// StringSliceField creates a field selector for a string slice configuration
// field.
func StringSliceField(key, flag, description string, defaultValue []string) FieldSelector {
	return FieldSelector{
		Key:          key,
		Flag:         flag,
		defaultValue: defaultValue,
		registerFlag: func(flags *pflag.FlagSet) {
			flags.StringSlice(flag, defaultValue, description)
		},
	}
}

// BoolField creates a field selector for a boolean configuration field.
func BoolField(key, flag, description string, defaultValue bool) FieldSelector {
	return FieldSelector{
		Key:          key,
		Flag:         flag,
		defaultValue: defaultValue,
		registerFlag: func(flags *pflag.FlagSet) {
			flags.Bool(flag, defaultValue, description)
		},
	}
}

// DefaultFieldSelectors returns the selectors for all user-facing fields of
// the edit session.
func DefaultFieldSelectors() []FieldSelector {
	return []FieldSelector{
		StringField(
			"spec.editor",
			"editor",
			"editor command to use (e.g. 'code --wait', 'vim', 'nano')",
			"",
		),
		StringSliceField(
			"spec.editorArgs",
			"editor-args",
			"extra arguments passed to the editor before the file path",
			nil,
		),
		BoolField(
			"spec.diff.changedOnly",
			"changed-only",
			"only report added, deleted, and modified variables",
			false,
		),
	}
}
