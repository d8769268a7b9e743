// Package config loads, normalizes, and validates dirtidy configuration.
//
// The extension-category map is the heart of the configuration: an ordered
// list of categories, each owning a set of lowercase, dot-prefixed extensions.
// Order matters because the first category that claims an extension wins. The
// compiled-in defaults mirror the reference map so the tool works without any
// file on disk; a TOML file can replace the categories or tune logging.
//
// A Config value is immutable once Load returns it. Callers pass it (or the
// category slice) explicitly into the components that need it.
package config
