// Package failures defines the error markers shared by every stage of an
// organize run.
//
// Stages wrap their failures with Wrap so callers can classify them with
// errors.Is while the message still carries the stage and operation that
// failed. The CLI is the only place that turns these into an exit status.
package failures
