package envvar

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// minLineSegments is the minimum number of '='-delimited segments a parsable
// line must produce.
const minLineSegments = 2

// Pair is a raw (name, value) pair supplied by an environment source.
type Pair struct {
	Name  string
	Value string
}

// Set is an ordered collection of Variables, sorted by name ascending using
// byte ordering. Duplicate names are kept as separate records; consumers that
// need uniqueness collapse them themselves (see the diff package).
type Set struct {
	variables []Variable
}

// FromPairs builds a Set from raw pairs. The first invalid name aborts the
// whole build and no partial set is returned.
func FromPairs(pairs []Pair) (*Set, error) {
	set := &Set{variables: make([]Variable, 0, len(pairs))}

	for _, pair := range pairs {
		variable, err := NewVariable(pair.Name, pair.Value)
		if err != nil {
			return nil, fmt.Errorf("build variable set: %w", err)
		}

		set.variables = append(set.variables, variable)
	}

	set.sort()

	return set, nil
}

// Parse reads "name=value" lines from the reader and builds a Set.
//
// Each physical line is split on every occurrence of '=' and only the first
// two segments are kept, so "A=1=2" parses as name "A" and value "1" with the
// remainder silently discarded. A line without any '=' (including a blank
// line) fails with its 0-based line index. The first failure aborts parsing
// and no partial set is returned.
func Parse(reader io.Reader) (*Set, error) {
	set := &Set{}
	scanner := bufio.NewScanner(reader)

	for index := 0; scanner.Scan(); index++ {
		segments := strings.Split(scanner.Text(), Separator)
		if len(segments) < minLineSegments {
			return nil, fmt.Errorf("line %d is malformed: %w", index, ErrMissingSeparator)
		}

		variable, err := NewVariable(segments[0], segments[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", index, err)
		}

		set.variables = append(set.variables, variable)
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("read variable lines: %w", err)
	}

	set.sort()

	return set, nil
}

// Variables returns the records in sorted order.
func (s *Set) Variables() []Variable {
	return s.variables
}

// Len returns the number of records, duplicates included.
func (s *Set) Len() int {
	return len(s.variables)
}

// Lines renders one "name=value" line per record in sorted order. Embedded
// '=' or newlines in values are written literally, which is the lossy
// tradeoff of the line format.
func (s *Set) Lines() []string {
	lines := make([]string, 0, len(s.variables))

	for _, variable := range s.variables {
		lines = append(lines, variable.String())
	}

	return lines
}

// Write writes the set in line format, one record per line with a trailing
// newline.
func (s *Set) Write(writer io.Writer) error {
	for _, variable := range s.variables {
		_, err := fmt.Fprintln(writer, variable.String())
		if err != nil {
			return fmt.Errorf("write variable line: %w", err)
		}
	}

	return nil
}

// sort orders records by name ascending. The sort is stable so duplicate
// names keep their input order, which the diff relies on for its
// last-write-wins collapse.
func (s *Set) sort() {
	slices.SortStableFunc(s.variables, func(a, b Variable) int {
		return strings.Compare(a.Name, b.Name)
	})
}
