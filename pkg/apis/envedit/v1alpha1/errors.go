package v1alpha1

import "errors"

// ErrInvalidAPIVersion is returned when the config declares an unknown apiVersion.
var ErrInvalidAPIVersion = errors.New("invalid apiVersion")

// ErrInvalidKind is returned when the config declares an unknown kind.
var ErrInvalidKind = errors.New("invalid kind")
