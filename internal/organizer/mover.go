package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dirtidy/internal/category"
	"dirtidy/internal/failures"
	"dirtidy/internal/fileutil"
	"dirtidy/internal/logging"
	"dirtidy/internal/scanner"
)

// moveRetries bounds how often a move re-picks a name when the chosen one is
// taken between the check and the rename.
const moveRetries = 3

// Mover relocates scanned files from root into root/<category>.
type Mover struct {
	root     string
	resolver *category.Resolver
	logger   *slog.Logger
	claims   nameClaims
	dryRun   bool
}

// NewMover returns a Mover for one run. Claims are per Mover, so use a fresh
// one for every run.
func NewMover(root string, resolver *category.Resolver, logger *slog.Logger, dryRun bool) *Mover {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Mover{
		root:     root,
		resolver: resolver,
		logger:   logger,
		claims:   make(nameClaims),
		dryRun:   dryRun,
	}
}

// Move places rec into its category folder, renaming it when the original
// name is taken. In dry-run mode it only plans the destination.
func (m *Mover) Move(ctx context.Context, rec scanner.Record) (Move, error) {
	logger := logging.WithContext(ctx, m.logger)
	cat := m.resolver.Resolve(rec.Extension)
	src := filepath.Join(m.root, rec.Name)
	dir := filepath.Join(m.root, cat)

	info, err := os.Stat(src)
	if err != nil {
		return Move{}, failures.Wrap(failures.ErrMove, "moving", "stat source", fmt.Sprintf("Source %s is no longer available", rec.Name), err)
	}

	var final string
	for attempt := 0; ; attempt++ {
		final, err = m.claims.nextFreeName(dir, rec)
		if err != nil {
			return Move{}, failures.Wrap(failures.ErrMove, "moving", "allocate name", fmt.Sprintf("Unable to allocate a name for %s", rec.Name), err)
		}
		m.claims.claim(filepath.Join(dir, final))
		if m.dryRun {
			break
		}
		err = fileutil.MoveFile(src, filepath.Join(dir, final))
		if err == nil {
			break
		}
		if errors.Is(err, fileutil.ErrDestinationExists) && attempt < moveRetries {
			logger.Debug("destination appeared during move; picking another name",
				logging.String("original", rec.Name),
				logging.String("final", final),
			)
			continue
		}
		return Move{}, failures.Wrap(failures.ErrMove, "moving", "move file", fmt.Sprintf("Failed to move %s into %s", rec.Name, cat), err)
	}

	move := Move{
		Original: rec.Name,
		Final:    final,
		Category: cat,
		Size:     info.Size(),
		Renamed:  final != rec.Name,
	}
	msg := "file organized"
	if m.dryRun {
		msg = "file planned"
	}
	logger.Info(msg,
		logging.String("original", move.Original),
		logging.String("final", move.Final),
		logging.String("category", move.Category),
		logging.Bool("renamed", move.Renamed),
	)
	return move, nil
}
