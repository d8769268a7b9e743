package organizer

import (
	"os"
	"path/filepath"
	"testing"

	"dirtidy/internal/scanner"
)

func TestNextFreeNameUsesOriginalWhenFree(t *testing.T) {
	claims := make(nameClaims)
	got, err := claims.nextFreeName(t.TempDir(), scanner.Record{Name: "report.txt", Extension: ".txt"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "report.txt" {
		t.Fatalf("expected original name, got %s", got)
	}
}

func TestNextFreeNameSkipsDiskAndClaims(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"report.txt", "report(1).txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	claims := make(nameClaims)
	rec := scanner.Record{Name: "report.txt", Extension: ".txt"}

	got, err := claims.nextFreeName(dir, rec)
	if err != nil {
		t.Fatal(err)
	}
	if got != "report(2).txt" {
		t.Fatalf("expected report(2).txt, got %s", got)
	}

	claims.claim(filepath.Join(dir, got))
	got, err = claims.nextFreeName(dir, rec)
	if err != nil {
		t.Fatal(err)
	}
	if got != "report(3).txt" {
		t.Fatalf("expected claimed name to be skipped, got %s", got)
	}
}

func TestDisambiguateKeepsExtensionShape(t *testing.T) {
	tests := []struct {
		rec  scanner.Record
		want string
	}{
		{scanner.Record{Name: "a.txt", Extension: ".txt"}, "a(1).txt"},
		{scanner.Record{Name: "README", Extension: ""}, "README(1)"},
		{scanner.Record{Name: ".bashrc", Extension: ""}, ".bashrc(1)"},
		{scanner.Record{Name: "a.tar.gz", Extension: ".gz"}, "a.tar(1).gz"},
		{scanner.Record{Name: "photo.JPG", Extension: ".JPG"}, "photo(1).JPG"},
	}
	for _, tt := range tests {
		if got := disambiguate(tt.rec.Stem(), tt.rec.Extension, 1); got != tt.want {
			t.Errorf("disambiguate(%q) = %q, want %q", tt.rec.Name, got, tt.want)
		}
	}
}

func TestAcquireRunLockIsExclusive(t *testing.T) {
	target := t.TempDir()
	first, err := acquireRunLock(target)
	if err != nil {
		t.Fatalf("first lock: %v", err)
	}
	t.Cleanup(func() { _ = first.Unlock() })

	if _, err := acquireRunLock(target); err == nil {
		t.Fatal("expected second lock on the same target to fail")
	}
	if filepath.Dir(lockPath(target)) == target {
		t.Fatal("lock file must live outside the target")
	}
}

func TestRunLockIsReusableAfterRelease(t *testing.T) {
	target := t.TempDir()
	first, err := acquireRunLock(target)
	if err != nil {
		t.Fatalf("first lock: %v", err)
	}
	if err := first.Unlock(); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if _, err := os.Stat(lockPath(target)); err != nil {
		t.Fatalf("expected lock file to stay for reuse: %v", err)
	}

	second, err := acquireRunLock(target)
	if err != nil {
		t.Fatalf("expected lock to be free after release: %v", err)
	}
	defer func() { _ = second.Unlock() }()
	if second.Path() != lockPath(target) {
		t.Fatalf("expected the same lock file, got %s", second.Path())
	}
}
