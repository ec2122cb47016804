// Package fsutil provides filesystem helpers: scoped temporary files for
// edit sessions and guarded file writing for scaffolded configuration.
package fsutil
