// Package logging assembles structured slog loggers and formatting helpers used
// across dirtidy.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so every line of a run carries its run
// ID. A no-op logger is provided for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components emit
// data with the same shape as the rest of the tool.
package logging
