package envvar

import (
	"fmt"
	"strings"
)

// Separator delimits a variable name from its value in the on-disk line
// format. It is the only character forbidden in variable names.
const Separator = "="

// Variable is a single environment variable name/value pair. The value may
// itself contain the separator character; the name never does.
type Variable struct {
	Name  string
	Value string
}

// NewVariable constructs a Variable after validating the name. The only
// restriction on environment variable names is that they cannot contain '='.
func NewVariable(name, value string) (Variable, error) {
	if strings.Contains(name, Separator) {
		return Variable{}, fmt.Errorf("variable name %q: %w", name, ErrNameContainsSeparator)
	}

	return Variable{Name: name, Value: value}, nil
}

// String renders the variable in the on-disk line format. Values are not
// escaped, so a value containing a newline spans multiple physical lines.
func (v Variable) String() string {
	return v.Name + Separator + v.Value
}
