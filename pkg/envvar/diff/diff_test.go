package diff_test

import (
	"testing"

	"github.com/devantler-tech/envedit/pkg/envvar"
	"github.com/devantler-tech/envedit/pkg/envvar/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, pairs ...envvar.Pair) *envvar.Set {
	t.Helper()

	set, err := envvar.FromPairs(pairs)
	require.NoError(t, err)

	return set
}

func TestCompute_ClassifiesEveryName(t *testing.T) {
	t.Parallel()

	old := mustSet(t,
		envvar.Pair{Name: "KEY", Value: "VALUE"},
		envvar.Pair{Name: "GONE", Value: "old"},
		envvar.Pair{Name: "CHANGED", Value: "before"},
	)
	updated := mustSet(t,
		envvar.Pair{Name: "KEY", Value: "VALUE"},
		envvar.Pair{Name: "NEW", Value: "x"},
		envvar.Pair{Name: "CHANGED", Value: "after"},
	)

	entries := diff.Compute(old, updated)

	assert.Equal(t, []diff.Entry{
		{Name: "CHANGED", State: diff.StateModified, OldValue: "before", NewValue: "after"},
		{Name: "GONE", State: diff.StateDeleted, OldValue: "old"},
		{Name: "KEY", State: diff.StateUnchanged, OldValue: "VALUE", NewValue: "VALUE"},
		{Name: "NEW", State: diff.StateAdded, NewValue: "x"},
	}, entries)
}

func TestCompute_EmptySets(t *testing.T) {
	t.Parallel()

	entries := diff.Compute(mustSet(t), mustSet(t))

	assert.Empty(t, entries)
}

func TestCompute_AllDeleted(t *testing.T) {
	t.Parallel()

	old := mustSet(t,
		envvar.Pair{Name: "A", Value: "1"},
		envvar.Pair{Name: "B", Value: ""},
	)

	entries := diff.Compute(old, mustSet(t))

	assert.Equal(t, []diff.Entry{
		{Name: "A", State: diff.StateDeleted, OldValue: "1"},
		{Name: "B", State: diff.StateDeleted, OldValue: ""},
	}, entries)
}

func TestCompute_AllAdded(t *testing.T) {
	t.Parallel()

	updated := mustSet(t,
		envvar.Pair{Name: "A", Value: "1"},
		envvar.Pair{Name: "B", Value: ""},
	)

	entries := diff.Compute(mustSet(t), updated)

	assert.Equal(t, []diff.Entry{
		{Name: "A", State: diff.StateAdded, NewValue: "1"},
		{Name: "B", State: diff.StateAdded, NewValue: ""},
	}, entries)
}

func TestCompute_ExactEqualityNoTrimming(t *testing.T) {
	t.Parallel()

	old := mustSet(t, envvar.Pair{Name: "KEY", Value: "value"})
	updated := mustSet(t, envvar.Pair{Name: "KEY", Value: "value "})

	entries := diff.Compute(old, updated)

	require.Len(t, entries, 1)
	assert.Equal(t, diff.StateModified, entries[0].State)
}

func TestCompute_EmptyOldValueStillDeleted(t *testing.T) {
	t.Parallel()

	old := mustSet(t, envvar.Pair{Name: "EMPTY", Value: ""})

	entries := diff.Compute(old, mustSet(t))

	require.Len(t, entries, 1)
	assert.Equal(t, diff.StateDeleted, entries[0].State)
}

func TestCompute_DuplicatesCollapseLastWriteWins(t *testing.T) {
	t.Parallel()

	// The sets keep duplicates, but the diff map collapses them with the
	// later sorted occurrence winning.
	old := mustSet(t,
		envvar.Pair{Name: "DUP", Value: "old-first"},
		envvar.Pair{Name: "DUP", Value: "old-second"},
	)
	updated := mustSet(t,
		envvar.Pair{Name: "DUP", Value: "new-first"},
		envvar.Pair{Name: "DUP", Value: "old-second"},
	)

	entries := diff.Compute(old, updated)

	assert.Equal(t, []diff.Entry{
		{Name: "DUP", State: diff.StateUnchanged, OldValue: "old-second", NewValue: "old-second"},
	}, entries)
}

func TestCompute_DuplicateDeletedNameStaysDeleted(t *testing.T) {
	t.Parallel()

	old := mustSet(t,
		envvar.Pair{Name: "DUP", Value: "x"},
		envvar.Pair{Name: "DUP", Value: ""},
	)

	entries := diff.Compute(old, mustSet(t))

	assert.Equal(t, []diff.Entry{
		{Name: "DUP", State: diff.StateDeleted, OldValue: ""},
	}, entries)
}

func TestCompute_Totality(t *testing.T) {
	t.Parallel()

	old := mustSet(t,
		envvar.Pair{Name: "A", Value: "1"},
		envvar.Pair{Name: "B", Value: "2"},
		envvar.Pair{Name: "C", Value: "3"},
	)
	updated := mustSet(t,
		envvar.Pair{Name: "B", Value: "2"},
		envvar.Pair{Name: "C", Value: "changed"},
		envvar.Pair{Name: "D", Value: "4"},
	)

	entries := diff.Compute(old, updated)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}

	// Every name from either set appears exactly once, sorted ascending.
	assert.Equal(t, []string{"A", "B", "C", "D"}, names)
}
