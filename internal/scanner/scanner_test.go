package scanner_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dirtidy/internal/failures"
	"dirtidy/internal/scanner"
	"dirtidy/internal/testsupport"
)

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"photo.JPG":   ".JPG",
		"notes.txt":   ".txt",
		"a.tar.gz":    ".gz",
		"README":      "",
		".bashrc":     "",
		"..hidden":    "",
		".config.bak": ".bak",
		"trailing.":   ".",
		"":            "",
	}
	for name, want := range tests {
		if got := scanner.Extension(name); got != want {
			t.Errorf("Extension(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestRecordStem(t *testing.T) {
	r := scanner.Record{Name: "report.final.txt", Extension: ".txt"}
	if got := r.Stem(); got != "report.final" {
		t.Fatalf("unexpected stem %q", got)
	}
	r = scanner.Record{Name: ".bashrc", Extension: ""}
	if got := r.Stem(); got != ".bashrc" {
		t.Fatalf("unexpected stem %q", got)
	}
}

func TestScanListsRegularFilesOnly(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "b.txt"), 4)
	testsupport.WriteFile(t, filepath.Join(dir, "a.JPG"), 4)
	testsupport.WriteFile(t, filepath.Join(dir, "noext"), 4)
	testsupport.WriteFile(t, filepath.Join(dir, "Documents", "inner.txt"), 4)
	if err := os.Mkdir(filepath.Join(dir, "empty.d"), 0o755); err != nil {
		t.Fatal(err)
	}

	records, err := scanner.Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []scanner.Record{
		{Name: "a.JPG", Extension: ".JPG"},
		{Name: "b.txt", Extension: ".txt"},
		{Name: "noext", Extension: ""},
	}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %+v", len(want), records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Fatalf("record %d: got %+v want %+v", i, records[i], want[i])
		}
	}
}

func TestScanFollowsSymlinksToFilesOnly(t *testing.T) {
	dir := t.TempDir()
	outside := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(outside, "real.pdf"), 4)
	if err := os.Symlink(filepath.Join(outside, "real.pdf"), filepath.Join(dir, "link.pdf")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(outside, filepath.Join(dir, "linkdir")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(outside, "missing"), filepath.Join(dir, "broken.txt")); err != nil {
		t.Fatal(err)
	}

	records, err := scanner.Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(records) != 1 || records[0].Name != "link.pdf" {
		t.Fatalf("expected only link.pdf, got %+v", records)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := scanner.Scan(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, failures.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
