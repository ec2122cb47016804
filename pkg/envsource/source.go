// Package envsource supplies environment variables as raw name/value pairs.
package envsource

import (
	"os"
	"strings"

	"github.com/devantler-tech/envedit/pkg/envvar"
)

// Source supplies the current environment as raw name/value pairs. Iteration
// order is unspecified and names are not guaranteed to be unique.
type Source interface {
	Pairs() []envvar.Pair
}

// OSSource reads the live process environment.
type OSSource struct{}

// NewOSSource creates a Source backed by the process environment.
func NewOSSource() OSSource {
	return OSSource{}
}

// Pairs returns the process environment split into name/value pairs. Each
// entry is split on the first '=' only; everything after it is the value.
func (OSSource) Pairs() []envvar.Pair {
	environ := os.Environ()
	pairs := make([]envvar.Pair, 0, len(environ))

	for _, entry := range environ {
		name, value, _ := strings.Cut(entry, envvar.Separator)
		pairs = append(pairs, envvar.Pair{Name: name, Value: value})
	}

	return pairs
}

// StaticSource serves a fixed list of pairs, for deterministic tests.
type StaticSource struct {
	pairs []envvar.Pair
}

// NewStaticSource creates a Source serving exactly the given pairs.
func NewStaticSource(pairs ...envvar.Pair) *StaticSource {
	return &StaticSource{pairs: pairs}
}

// Pairs returns the fixed pair list in construction order.
func (s *StaticSource) Pairs() []envvar.Pair {
	return s.pairs
}
