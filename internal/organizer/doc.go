// Package organizer sorts the files of one directory into category folders.
//
// A run validates the target, takes an advisory lock on it, scans its regular
// files, provisions one folder per needed category, and moves each file into
// its folder. Collisions are resolved by inserting "(N)" before the extension,
// so nothing is ever overwritten. The first fatal error stops the run; files
// already moved stay where they are.
//
// Every stage reports failures through the failures markers so the CLI can
// name the error kind without parsing messages.
package organizer
