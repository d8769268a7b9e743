package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"dirtidy/internal/config"
	"dirtidy/internal/failures"
)

const stageName = "validating"

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckTarget verifies path exists, is a directory, and allows listing,
// creating subfolders, and renaming entries. The first failing check is
// returned; an empty path counts as not found.
func CheckTarget(path string) error {
	if strings.TrimSpace(path) == "" {
		return failures.Wrap(failures.ErrNotFound, stageName, "stat target", "No target directory given", nil)
	}
	info, err := os.Stat(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return failures.Wrap(failures.ErrNotFound, stageName, "stat target", fmt.Sprintf("%s does not exist", path), err)
		case errors.Is(err, fs.ErrPermission):
			return failures.Wrap(failures.ErrPermissionDenied, stageName, "stat target", fmt.Sprintf("cannot inspect %s", path), err)
		default:
			return failures.Wrap(failures.ErrNotFound, stageName, "stat target", fmt.Sprintf("cannot inspect %s", path), err)
		}
	}
	if !info.IsDir() {
		return failures.Wrap(failures.ErrNotADirectory, stageName, "stat target", fmt.Sprintf("%s is not a directory", path), nil)
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return failures.Wrap(failures.ErrPermissionDenied, stageName, "check access", fmt.Sprintf("%s needs read and write access", path), err)
	}
	return nil
}

// CheckDirectoryAccess runs CheckTarget and reports the outcome as a Result.
func CheckDirectoryAccess(name, path string) Result {
	if err := CheckTarget(path); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s)", path, failures.Kind(err))}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckCategoryFolders reports category names that are already taken by a
// non-directory entry inside target. Provisioning would fail on those.
func CheckCategoryFolders(target string, categories []string) Result {
	const name = "Category folders"
	var blocked []string
	for _, category := range categories {
		info, err := os.Lstat(filepath.Join(target, category))
		if err != nil {
			continue
		}
		if !info.IsDir() {
			blocked = append(blocked, category)
		}
	}
	if len(blocked) > 0 {
		return Result{Name: name, Detail: fmt.Sprintf("blocked by files: %s", strings.Join(blocked, ", "))}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d categories available", len(categories))}
}

// RunAll executes every preflight check for target. The folder check only runs
// once the target itself is usable.
func RunAll(cfg *config.Config, target string, categories []string) []Result {
	results := []Result{CheckDirectoryAccess("Target directory", target)}
	if !results[0].Passed {
		return results
	}
	results = append(results, checkConfig(cfg))
	results = append(results, CheckCategoryFolders(target, categories))
	return results
}

func checkConfig(cfg *config.Config) Result {
	const name = "Category map"
	if cfg == nil {
		return Result{Name: name, Detail: "configuration unavailable"}
	}
	if conflicts := cfg.DuplicateExtensions(); len(conflicts) > 0 {
		parts := make([]string, 0, len(conflicts))
		for _, c := range conflicts {
			parts = append(parts, fmt.Sprintf("%s→%s", c.Extension, c.Winner))
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("shared extensions resolve first-match: %s", strings.Join(parts, ", "))}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d categories, no shared extensions", len(cfg.Categories))}
}
