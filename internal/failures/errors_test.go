package failures_test

import (
	"errors"
	"strings"
	"testing"

	"dirtidy/internal/failures"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := failures.Wrap(failures.ErrMove, "moving", "rename", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, failures.ErrMove) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"moving", "rename", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsToMove(t *testing.T) {
	err := failures.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, failures.ErrMove) {
		t.Fatalf("expected ErrMove marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "organize failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestKindMapping(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("plain"), ""},
		{failures.Wrap(failures.ErrNotFound, "validate", "stat", "missing", nil), "NotFound"},
		{failures.Wrap(failures.ErrNotADirectory, "validate", "stat", "file", nil), "NotADirectory"},
		{failures.Wrap(failures.ErrPermissionDenied, "validate", "access", "denied", nil), "PermissionDenied"},
		{failures.Wrap(failures.ErrFolderCreation, "provisioning", "mkdir", "x", nil), "FolderCreationError"},
		{failures.Wrap(failures.ErrMove, "moving", "rename", "x", nil), "MoveError"},
		{failures.Wrap(failures.ErrBusy, "locking", "", "x", nil), "Busy"},
		{failures.Wrap(failures.ErrConfiguration, "config", "", "x", nil), "ConfigurationError"},
	}
	for _, tt := range tests {
		if got := failures.Kind(tt.err); got != tt.want {
			t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
