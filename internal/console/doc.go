// Package console prints leveled status lines (success, info, warning, error,
// title) and drives a single-line progress spinner. All output goes through a
// Reporter so commands and tests can redirect it.
package console
