// Package envvar models sets of environment variables and the line-oriented
// "name=value" format used to hand them to an external editor.
//
// A [Set] is built either from raw name/value pairs supplied by an
// environment source or by parsing edited text back in with [Parse]. Sets are
// kept sorted by name; duplicate names are preserved as separate records.
package envvar
