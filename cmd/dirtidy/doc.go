// Package main hosts the dirtidy CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration, builds the logger, and hands
// the target directory to the organizer. Output meant for people or scripts
// goes to stdout; logs go to stderr.
package main
