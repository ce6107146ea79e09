package service

import (
	"context"
	"sync"

	"github.com/rookgm/salesadmin/internal/models"
)

// fakeRemote is an in-memory backend collection
type fakeRemote[T models.Record[T]] struct {
	mu sync.Mutex

	items    []T
	nextID   func() string
	createFn func(body T) (T, error)
	updateFn func(id string, body T) (T, error)

	deleteErr  error
	deleteGate chan struct{}
	deleted    []string

	creates []T
	updates []T
}

func (r *fakeRemote[T]) List(ctx context.Context) []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

func (r *fakeRemote[T]) Create(ctx context.Context, body T) (T, error) {
	r.mu.Lock()
	r.creates = append(r.creates, body)
	fn := r.createFn
	r.mu.Unlock()

	if fn != nil {
		return fn(body)
	}
	return body.WithKey(r.nextID()), nil
}

func (r *fakeRemote[T]) Update(ctx context.Context, id string, body T) (T, error) {
	r.mu.Lock()
	r.updates = append(r.updates, body)
	fn := r.updateFn
	r.mu.Unlock()

	if fn != nil {
		return fn(id, body)
	}
	return body, nil
}

func (r *fakeRemote[T]) Delete(ctx context.Context, id string) error {
	if r.deleteGate != nil {
		<-r.deleteGate
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, id)
	return r.deleteErr
}

func (r *fakeRemote[T]) calls() (creates, updates int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.creates), len(r.updates)
}
