package engine

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hellofresh/catalog-seeder/pkg/database"
	"github.com/hellofresh/catalog-seeder/pkg/storage"
)

// Engine is the engine which dispatches and orchestrates a seed run.
type Engine struct {
	store storage.Store
}

// New creates a new engine given the store.
func New(store storage.Store) *Engine {
	return &Engine{store: store}
}

// Seed saves every set, at most concurrency sets at a time.
// Hooks run once around the whole run when the store implements storage.Hooker.
func (e *Engine) Seed(ctx context.Context, sets []*database.Set, concurrency int) error {
	if concurrency < 1 {
		concurrency = 1
	}

	tables := make([]string, len(sets))
	for i, set := range sets {
		tables[i] = set.Table
	}

	hooker, hasHooks := e.store.(storage.Hooker)
	if hasHooks {
		if err := hooker.PreSave(ctx, tables); err != nil {
			return errors.Wrap(err, "failed to execute pre save")
		}
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, set := range sets {
		set := set
		g.Go(func() error {
			logger := log.WithFields(log.Fields{"table": set.Table, "rows": len(set.Rows)})
			start := time.Now()

			if err := e.store.Save(gCtx, set); err != nil {
				logger.WithError(err).Error("failed to save table")
				return errors.Wrapf(err, "failed to save %s", set.Table)
			}

			logger.WithField("took", time.Since(start)).Debug("table saved")
			return nil
		})
	}

	err := g.Wait()

	if hasHooks {
		if hookErr := hooker.PostSave(ctx, tables); hookErr != nil {
			log.WithError(hookErr).Error("post save failed")
			if err == nil {
				err = errors.Wrap(hookErr, "failed to execute post save")
			}
		}
	}

	return err
}
