package gateway

import (
	"context"
	"net/http"

	"github.com/rookgm/salesadmin/internal/logger"
	"go.uber.org/zap"
)

// Endpoint is a typed view of one resource collection
type Endpoint[T any] struct {
	c   *Client
	res Resource
}

// NewEndpoint creates new Endpoint instance
func NewEndpoint[T any](c *Client, res Resource) *Endpoint[T] {
	return &Endpoint[T]{c: c, res: res}
}

// Resource returns the collection served by e
func (e *Endpoint[T]) Resource() Resource {
	return e.res
}

// List returns every item of the collection.
// Any failure is logged and yields an empty list, callers cannot tell "no data" from "load failed".
func (e *Endpoint[T]) List(ctx context.Context) []T {
	var items []T
	if err := e.c.do(ctx, http.MethodGet, e.res, "", nil, &items); err != nil {
		logger.Log.Error("list failed", zap.String("resource", string(e.res)), zap.Error(err))
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Create posts body and returns the created item with its server assigned id
func (e *Endpoint[T]) Create(ctx context.Context, body T) (T, error) {
	var created T
	if err := e.c.do(ctx, http.MethodPost, e.res, "", body, &created); err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

// Update puts body to the item id and returns the item as stored by the server
func (e *Endpoint[T]) Update(ctx context.Context, id string, body T) (T, error) {
	var updated T
	if err := e.c.do(ctx, http.MethodPut, e.res, id, body, &updated); err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

// Delete removes the item id
func (e *Endpoint[T]) Delete(ctx context.Context, id string) error {
	return e.c.Delete(ctx, e.res, id)
}
