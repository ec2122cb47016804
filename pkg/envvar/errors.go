package envvar

import "errors"

// ErrNameContainsSeparator is returned when a variable name contains the '=' separator.
var ErrNameContainsSeparator = errors.New("variable name contains illegal character '='")

// ErrMissingSeparator is returned when a parsed line has no '=' separator at all.
var ErrMissingSeparator = errors.New("missing '=' separator")
