package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"dirtidy/internal/category"
	"dirtidy/internal/config"
	"dirtidy/internal/logging"
	"dirtidy/internal/preflight"
	"dirtidy/internal/scanner"
)

// Options tunes a single run.
type Options struct {
	// DryRun plans moves without creating folders or moving files.
	DryRun bool
}

// Organizer runs the validate, scan, provision, move pipeline.
type Organizer struct {
	resolver *category.Resolver
	logger   *slog.Logger
}

// New constructs an Organizer from the category map in cfg.
func New(cfg *config.Config, logger *slog.Logger) *Organizer {
	var categories []config.Category
	if cfg != nil {
		categories = cfg.Categories
	}
	return NewWithResolver(category.New(categories), logger)
}

// NewWithResolver builds an Organizer around a prepared resolver.
func NewWithResolver(resolver *category.Resolver, logger *slog.Logger) *Organizer {
	return &Organizer{resolver: resolver, logger: logging.NewComponentLogger(logger, "organizer")}
}

// Run organizes target. Validation failures return before anything is
// touched. Once moves start, a failure stops the run and the returned Summary
// lists the files that were already moved.
func (o *Organizer) Run(ctx context.Context, target string, opts Options) (Summary, error) {
	start := time.Now()
	summary := Summary{RunID: uuid.NewString(), DryRun: opts.DryRun}
	ctx = logging.WithRunID(ctx, summary.RunID)
	logger := logging.WithContext(ctx, o.logger)

	if err := preflight.CheckTarget(target); err != nil {
		logger.Error("target validation failed",
			logging.String(logging.FieldTarget, target),
			logging.Error(err),
			logging.String(logging.FieldEventType, "target_invalid"),
			logging.String(logging.FieldErrorHint, "pass an existing, writable directory"),
		)
		return summary, err
	}
	root, err := filepath.Abs(target)
	if err != nil {
		return summary, fmt.Errorf("resolve target path: %w", err)
	}
	summary.Target = root

	if !opts.DryRun {
		lock, err := acquireRunLock(root)
		if err != nil {
			return summary, err
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				logger.Warn("failed to release run lock", logging.Error(err))
			}
		}()
	}

	records, err := scanner.Scan(root)
	if err != nil {
		return summary, err
	}
	logger.Info("scan completed",
		logging.String(logging.FieldTarget, root),
		logging.Int("files", len(records)),
		logging.Bool("dry_run", opts.DryRun),
	)

	if opts.DryRun {
		summary.Categories = Categories(records, o.resolver)
	} else {
		summary.Categories, err = Provision(records, root, o.resolver)
		if err != nil {
			logger.Error("folder provisioning failed",
				logging.Error(err),
				logging.String(logging.FieldEventType, "provision_failed"),
				logging.String(logging.FieldErrorHint, "remove or rename files named like a category"),
			)
			return summary, err
		}
		logger.Debug("category folders ready", logging.Any("categories", summary.Categories))
	}

	mover := NewMover(root, o.resolver, o.logger, opts.DryRun)
	summary.Moves = make([]Move, 0, len(records))
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			logger.Warn("run interrupted", logging.Int("moved", summary.Count()), logging.Int("remaining", len(records)-summary.Count()))
			return summary, fmt.Errorf("organize interrupted after %d file(s): %w", summary.Count(), err)
		}
		move, err := mover.Move(ctx, rec)
		if err != nil {
			logger.Error("move failed; stopping run",
				logging.String("original", rec.Name),
				logging.Error(err),
				logging.Int("moved", summary.Count()),
				logging.String(logging.FieldEventType, "move_failed"),
				logging.String(logging.FieldErrorHint, "files already moved stay in their category folders"),
			)
			return summary, err
		}
		summary.Moves = append(summary.Moves, move)
		summary.Bytes += move.Size
	}

	logger.Info("organize completed",
		logging.Int("files", summary.Count()),
		logging.Int("renamed", summary.Renamed()),
		logging.Int64("bytes", summary.Bytes),
		logging.Duration("elapsed", time.Since(start)),
	)
	return summary, nil
}
