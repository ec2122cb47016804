// Package diff classifies the changes between two environment variable sets.
package diff

import (
	"slices"
	"strings"

	"github.com/devantler-tech/envedit/pkg/envvar"
)

// State classifies how a variable changed between two sets.
type State string

const (
	// StateUnchanged means the variable exists in both sets with byte-identical values.
	StateUnchanged State = "Unchanged"
	// StateModified means the variable exists in both sets with differing values.
	StateModified State = "Modified"
	// StateAdded means the variable exists only in the new set.
	StateAdded State = "Added"
	// StateDeleted means the variable exists only in the old set.
	StateDeleted State = "Deleted"
)

// Entry is one variable's classified change. OldValue carries no meaning for
// StateAdded and NewValue none for StateDeleted; the state alone determines
// which sides carry a value.
type Entry struct {
	Name     string
	State    State
	OldValue string
	NewValue string
}

// Compute classifies every variable name present in either set.
//
// Names are seeded from the new set as Added, then reclassified by walking
// the old set: byte-identical values are Unchanged, differing values
// Modified, and names absent from the new set Deleted. A name that left the
// new set is always Deleted, even when its old value was empty. Duplicate
// names within one set collapse last-write-wins, the later sorted occurrence
// winning, even though [envvar.Set] itself keeps duplicates. The result is
// sorted by name ascending.
func Compute(old, updated *envvar.Set) []Entry {
	entries := make(map[string]Entry, updated.Len())

	for _, variable := range updated.Variables() {
		entries[variable.Name] = Entry{
			Name:     variable.Name,
			State:    StateAdded,
			NewValue: variable.Value,
		}
	}

	for _, variable := range old.Variables() {
		entry, found := entries[variable.Name]
		if !found || entry.State == StateDeleted {
			// A name absent from the new set is always Deleted, even when a
			// duplicate old record carries an empty value.
			entries[variable.Name] = Entry{
				Name:     variable.Name,
				State:    StateDeleted,
				OldValue: variable.Value,
			}

			continue
		}

		entry.OldValue = variable.Value
		if variable.Value == entry.NewValue {
			entry.State = StateUnchanged
		} else {
			entry.State = StateModified
		}

		entries[variable.Name] = entry
	}

	result := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry)
	}

	slices.SortFunc(result, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return result
}
