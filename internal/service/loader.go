package service

import (
	"context"

	"github.com/rookgm/salesadmin/internal/models"
	"github.com/rookgm/salesadmin/internal/store"
	"golang.org/x/sync/errgroup"
)

// Lister returns a whole backend collection
type Lister[T any] interface {
	List(ctx context.Context) []T
}

// Loader performs the bulk load of every collection
type Loader struct {
	loads []func(ctx context.Context)
}

// NewLoader creates new empty Loader
func NewLoader() *Loader {
	return &Loader{}
}

// Bind adds a collection filled from src on every Load
func Bind[T models.Entity](l *Loader, coll *store.Collection[T], src Lister[T]) {
	l.loads = append(l.loads, func(ctx context.Context) {
		coll.ReplaceAll(src.List(ctx))
	})
}

// Load fetches every bound collection concurrently. Each completion replaces its own
// collection, so the order in which they finish does not matter.
func (l *Loader) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, load := range l.loads {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			load(gctx)
			return nil
		})
	}
	return g.Wait()
}
