package worker

import (
	"context"
	"time"

	"github.com/rookgm/salesadmin/internal/logger"
	"go.uber.org/zap"
)

// Loader performs the bulk load of every collection
type Loader interface {
	Load(ctx context.Context) error
}

// Refresher is worker reloading the collections from the backend
type Refresher struct {
	loader   Loader
	interval time.Duration
}

// NewRefresher create new refresher. A zero interval disables periodic reloads.
func NewRefresher(loader Loader, interval time.Duration) *Refresher {
	return &Refresher{loader: loader, interval: interval}
}

// Run performs the initial load and then reloads on every tick until ctx is done
func (rf *Refresher) Run(ctx context.Context) {
	rf.reload(ctx)

	if rf.interval <= 0 {
		return
	}

	ticker := time.NewTicker(rf.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("refresher is done")
			return
		case <-ticker.C:
			rf.reload(ctx)
		}
	}
}

func (rf *Refresher) reload(ctx context.Context) {
	start := time.Now()
	if err := rf.loader.Load(ctx); err != nil {
		logger.Log.Error("error reloading collections", zap.Error(err))
		return
	}
	logger.Log.Debug("collections reloaded", zap.Duration("took", time.Since(start)))
}
