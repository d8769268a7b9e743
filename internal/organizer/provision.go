package organizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dirtidy/internal/category"
	"dirtidy/internal/failures"
	"dirtidy/internal/scanner"
)

// Categories returns the distinct categories records resolve to, in the
// order they are first needed.
func Categories(records []scanner.Record, resolver *category.Resolver) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, rec := range records {
		name := resolver.Resolve(rec.Extension)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Provision ensures root holds a folder for every category records need and
// returns those categories. Existing folders are accepted; anything else at a
// folder path, or any mkdir failure, is ErrFolderCreation.
func Provision(records []scanner.Record, root string, resolver *category.Resolver) ([]string, error) {
	names := Categories(records, resolver)
	for _, name := range names {
		if err := ensureFolder(filepath.Join(root, name)); err != nil {
			return nil, err
		}
	}
	return names, nil
}

func ensureFolder(path string) error {
	err := os.Mkdir(path, 0o755)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return failures.Wrap(failures.ErrFolderCreation, "provisioning", "create folder", fmt.Sprintf("Failed to create %s", path), err)
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		return failures.Wrap(failures.ErrFolderCreation, "provisioning", "inspect folder", fmt.Sprintf("Failed to inspect %s", path), statErr)
	}
	if !info.IsDir() {
		return failures.Wrap(failures.ErrFolderCreation, "provisioning", "create folder", fmt.Sprintf("%s exists and is not a directory", path), nil)
	}
	return nil
}
