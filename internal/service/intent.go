package service

// Intent is what a submitted dialog asks for, either CreateIntent or UpdateIntent
type Intent[T any] interface {
	intent()
}

// CreateIntent carries the fields of a new entity. Any id in Fields is dropped.
type CreateIntent[T any] struct {
	Fields T
}

// UpdateIntent carries the full entity to store under ID
type UpdateIntent[T any] struct {
	ID     string
	Fields T
}

func (CreateIntent[T]) intent() {}
func (UpdateIntent[T]) intent() {}

// Policy names the reconciliation rule applied to a store after a remote call
type Policy string

const (
	// PolicyConfirmedCreate prepends the server returned entity once the backend confirms it
	PolicyConfirmedCreate Policy = "confirmed-create"
	// PolicyConfirmedUpdate replaces the entity by id once the backend confirms it
	PolicyConfirmedUpdate Policy = "confirmed-update"
	// PolicyOptimisticDelete removes the entity at once and never rolls back
	PolicyOptimisticDelete Policy = "optimistic-delete"
)
