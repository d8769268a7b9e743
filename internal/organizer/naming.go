package organizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dirtidy/internal/scanner"
)

const maxNameAttempts = 10000

// nameClaims tracks destination paths handed out during one run so a name is
// never given twice, even before the file lands on disk (dry runs).
type nameClaims map[string]struct{}

func (c nameClaims) claim(path string) {
	c[path] = struct{}{}
}

func (c nameClaims) occupied(path string) (bool, error) {
	if _, ok := c[path]; ok {
		return true, nil
	}
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// nextFreeName returns the first unoccupied name for rec inside dir: the
// original name, then "stem(1)ext", "stem(2)ext", and so on.
func (c nameClaims) nextFreeName(dir string, rec scanner.Record) (string, error) {
	taken, err := c.occupied(filepath.Join(dir, rec.Name))
	if err != nil {
		return "", err
	}
	if !taken {
		return rec.Name, nil
	}
	stem := rec.Stem()
	for attempt := 1; attempt <= maxNameAttempts; attempt++ {
		candidate := disambiguate(stem, rec.Extension, attempt)
		taken, err := c.occupied(filepath.Join(dir, candidate))
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("exhausted %d alternative names for %s in %s", maxNameAttempts, rec.Name, dir)
}

func disambiguate(stem, ext string, n int) string {
	return fmt.Sprintf("%s(%d)%s", stem, n, ext)
}
