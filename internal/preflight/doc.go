// Package preflight validates a target directory before an organize run
// touches it.
//
// CheckTarget is the gate the organizer runs first: it reports NotFound,
// NotADirectory, or PermissionDenied, in that order, and never mutates
// anything. RunAll wraps the same checks in printable results for the
// `dirtidy check` command.
package preflight
