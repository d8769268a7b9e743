// Package scanner lists the regular files directly inside a directory and
// derives each file's extension.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dirtidy/internal/failures"
)

// Record is one regular file found at scan time.
type Record struct {
	Name      string
	Extension string
}

// Stem returns the name with its extension removed.
func (r Record) Stem() string {
	return strings.TrimSuffix(r.Name, r.Extension)
}

// Scan returns the regular files directly under dir in listing order (sorted
// by name). Entries are resolved through symlinks, so a link to a regular file
// is kept while links to directories, broken links, and special files are
// skipped.
func Scan(dir string) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		marker := failures.ErrNotFound
		if errors.Is(err, fs.ErrPermission) {
			marker = failures.ErrPermissionDenied
		}
		return nil, failures.Wrap(marker, "scanning", "list directory", fmt.Sprintf("cannot list %s", dir), err)
	}

	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !isRegular(dir, entry) {
			continue
		}
		records = append(records, Record{Name: name, Extension: Extension(name)})
	}
	return records, nil
}

func isRegular(dir string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Extension returns the suffix of name starting at its last '.', ignoring
// leading dots. Dot-files without a further '.' have no extension.
//
//	Extension("photo.JPG")   == ".JPG"
//	Extension("a.tar.gz")    == ".gz"
//	Extension(".bashrc")     == ""
//	Extension(".config.bak") == ".bak"
//	Extension("README")      == ""
func Extension(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	idx := strings.LastIndexByte(trimmed, '.')
	if idx < 0 {
		return ""
	}
	return trimmed[idx:]
}
