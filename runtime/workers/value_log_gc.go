package workers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const discardRatio = 0.5

// ValueLogGCWorker reclaims value log space left behind by updates and deletes.
type ValueLogGCWorker struct {
	log      *slog.Logger
	db       *badger.DB
	interval time.Duration
}

func NewValueLogGCWorker(log *slog.Logger, db *badger.DB, interval time.Duration) *ValueLogGCWorker {
	return &ValueLogGCWorker{log: log, db: db, interval: interval}
}

func (w *ValueLogGCWorker) Name() string {
	return "value-log-gc"
}

// Run returns nil straight away for in-memory databases, which have no value log.
func (w *ValueLogGCWorker) Run(ctx context.Context) error {
	if w.db.Opts().InMemory {
		w.log.Info("In-memory store, value log GC disabled")
		return nil
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rewrites, err := w.collect()
			if err != nil {
				return err
			}
			if rewrites > 0 {
				w.log.Info("Value log GC", "rewrites", rewrites)
			}
		}
	}
}

// collect runs GC until Badger reports nothing left to rewrite.
func (w *ValueLogGCWorker) collect() (int, error) {
	rewrites := 0
	for {
		err := w.db.RunValueLogGC(discardRatio)
		switch {
		case err == nil:
			rewrites++
		case stderrors.Is(err, badger.ErrNoRewrite), stderrors.Is(err, badger.ErrRejected):
			return rewrites, nil
		default:
			return rewrites, err
		}
	}
}
