package failures

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrNotADirectory    = errors.New("not a directory")
	ErrPermissionDenied = errors.New("permission denied")
	ErrFolderCreation   = errors.New("folder creation error")
	ErrMove             = errors.New("move error")
	ErrBusy             = errors.New("target busy")
	ErrConfiguration    = errors.New("configuration error")
)

var markers = []struct {
	err  error
	name string
}{
	{ErrNotFound, "NotFound"},
	{ErrNotADirectory, "NotADirectory"},
	{ErrPermissionDenied, "PermissionDenied"},
	{ErrFolderCreation, "FolderCreationError"},
	{ErrMove, "MoveError"},
	{ErrBusy, "Busy"},
	{ErrConfiguration, "ConfigurationError"},
}

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker. The marker should be one of the exported sentinel errors
// above; a nil marker falls back to ErrMove.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrMove
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns the taxonomy name of the first marker err carries, or "" when
// err is nil or untagged.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range markers {
		if errors.Is(err, m.err) {
			return m.name
		}
	}
	return ""
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "organize failure"
	}
	return strings.Join(parts, ": ")
}
