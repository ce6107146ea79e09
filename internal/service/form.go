package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rookgm/salesadmin/internal/logger"
	"github.com/rookgm/salesadmin/internal/models"
	"github.com/rookgm/salesadmin/internal/store"
	"go.uber.org/zap"
)

// Remote is the backend collection a form writes to
type Remote[T any] interface {
	List(ctx context.Context) []T
	Create(ctx context.Context, body T) (T, error)
	Update(ctx context.Context, id string, body T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Alerter shows an error to the user
type Alerter interface {
	Error(title, message string) models.Alert
}

// FailureText is the alert shown for one kind of failure
type FailureText struct {
	Title    string
	Fallback string
}

// Messages are the alert texts of a form. Rejected is used when the backend answered
// with an error (its body replaces Fallback when present), Unreachable for every other failure.
type Messages struct {
	CreateRejected    FailureText
	CreateUnreachable FailureText
	UpdateRejected    FailureText
	UpdateUnreachable FailureText
}

// FormConfig customizes a Form for one entity type
type FormConfig[T any] struct {
	Name     string
	Close    ClosePolicy
	Messages Messages
	// Blank returns the fields of an empty dialog
	Blank func() T
	// OnOpen adjusts a freshly opened dialog, called with the form locked
	OnOpen func(d *Dialog[T])
	// Prepare normalizes and checks the fields before they are sent
	Prepare func(fields T, creating bool) (T, error)
	// Confirm adjusts the entity returned by the backend before it enters the store
	Confirm func(entity T) T
}

// Form maps dialog intents to backend calls and folds confirmed results back into a collection
type Form[T models.Record[T]] struct {
	cfg    FormConfig[T]
	remote Remote[T]
	coll   *store.Collection[T]
	alerts Alerter

	mu       sync.Mutex
	dialog   Dialog[T]
	inflight bool
	// bumped whenever the dialog is opened or closed
	gen uint64

	pending sync.WaitGroup
}

// NewForm creates new Form instance
func NewForm[T models.Record[T]](cfg FormConfig[T], remote Remote[T], coll *store.Collection[T], alerts Alerter) *Form[T] {
	if cfg.Blank == nil {
		cfg.Blank = func() T {
			var zero T
			return zero
		}
	}
	if cfg.Prepare == nil {
		cfg.Prepare = func(fields T, _ bool) (T, error) {
			return fields, models.Validate(fields)
		}
	}
	if cfg.Confirm == nil {
		cfg.Confirm = func(entity T) T { return entity }
	}

	return &Form[T]{
		cfg:    cfg,
		remote: remote,
		coll:   coll,
		alerts: alerts,
		dialog: Dialog[T]{Fields: cfg.Blank()},
	}
}

// Collection returns the collection the form reconciles into
func (f *Form[T]) Collection() *store.Collection[T] {
	return f.coll
}

// Entities returns the stored entities, newest first
func (f *Form[T]) Entities() []T {
	return f.coll.Snapshot()
}

// Load replaces the collection with the backend list
func (f *Form[T]) Load(ctx context.Context) {
	f.coll.ReplaceAll(f.remote.List(ctx))
}

// Dialog returns the dialog state
func (f *Form[T]) Dialog() Dialog[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dialog
}

// OpenCreate opens the dialog with default fields
func (f *Form[T]) OpenCreate() Dialog[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gen++
	f.dialog = Dialog[T]{Open: true, Fields: f.cfg.Blank()}
	if f.cfg.OnOpen != nil {
		f.cfg.OnOpen(&f.dialog)
	}
	return f.dialog
}

// OpenEdit opens the dialog pre-populated from the stored entity id
func (f *Form[T]) OpenEdit(id string) (Dialog[T], error) {
	entity, ok := f.coll.Get(id)
	if !ok {
		return Dialog[T]{}, models.ErrDataNotFound
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.gen++
	f.dialog = Dialog[T]{Open: true, Editing: &entity, Fields: entity}
	if f.cfg.OnOpen != nil {
		f.cfg.OnOpen(&f.dialog)
	}
	return f.dialog, nil
}

// Close closes the dialog and resets it to defaults
func (f *Form[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.close()
}

// closeIfCurrent closes the dialog unless it was closed or reopened since generation gen
func (f *Form[T]) closeIfCurrent(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen == gen {
		f.close()
	}
}

func (f *Form[T]) close() {
	f.gen++
	f.dialog = Dialog[T]{Fields: f.cfg.Blank()}
}

// Mutate runs fn on the dialog state with the form locked
func (f *Form[T]) Mutate(fn func(d *Dialog[T])) Dialog[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.dialog)
	return f.dialog
}

// Submit sends the dialog. An open edit dialog produces an UpdateIntent, otherwise a CreateIntent.
// Invalid fields keep the dialog open. A second submit while the first is in flight is refused.
func (f *Form[T]) Submit(ctx context.Context, fields T) (T, error) {
	var zero T

	f.mu.Lock()
	if !f.dialog.Open {
		f.mu.Unlock()
		return zero, models.ErrDialogClosed
	}
	if f.inflight {
		f.mu.Unlock()
		return zero, models.ErrSubmitInFlight
	}
	var intent Intent[T] = CreateIntent[T]{Fields: fields}
	if f.dialog.Editing != nil {
		intent = UpdateIntent[T]{ID: (*f.dialog.Editing).Key(), Fields: fields}
	}
	f.inflight = true
	f.dialog.Fields = fields
	gen := f.gen
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inflight = false
		f.mu.Unlock()
	}()

	intent, err := f.prepare(intent)
	if err != nil {
		return zero, err
	}

	if f.cfg.Close == CloseOnSubmit {
		f.closeIfCurrent(gen)
	}
	result, err := f.dispatch(ctx, intent)
	if f.cfg.Close == CloseOnConfirm {
		f.closeIfCurrent(gen)
	}

	return result, err
}

// Apply runs intent without going through the dialog
func (f *Form[T]) Apply(ctx context.Context, intent Intent[T]) (T, error) {
	intent, err := f.prepare(intent)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.dispatch(ctx, intent)
}

// Delete removes id from the collection at once and deletes it remotely in the background.
// A remote failure is only logged, the local removal stays.
func (f *Form[T]) Delete(ctx context.Context, id string) {
	f.coll.RemoveByID(id)

	f.pending.Add(1)
	go func() {
		defer f.pending.Done()
		if err := f.remote.Delete(context.WithoutCancel(ctx), id); err != nil {
			logger.Log.Error("remote delete failed",
				zap.String("entity", f.cfg.Name),
				zap.String("id", id),
				zap.String("policy", string(PolicyOptimisticDelete)),
				zap.Error(err))
		}
	}()
}

// Wait blocks until background deletes have completed
func (f *Form[T]) Wait() {
	f.pending.Wait()
}

func (f *Form[T]) prepare(intent Intent[T]) (Intent[T], error) {
	switch in := intent.(type) {
	case CreateIntent[T]:
		fields, err := f.cfg.Prepare(in.Fields.WithKey(""), true)
		if err != nil {
			return nil, err
		}
		return CreateIntent[T]{Fields: fields}, nil
	case UpdateIntent[T]:
		fields, err := f.cfg.Prepare(in.Fields.WithKey(in.ID), false)
		if err != nil {
			return nil, err
		}
		return UpdateIntent[T]{ID: in.ID, Fields: fields}, nil
	default:
		return nil, fmt.Errorf("unknown intent %T", intent)
	}
}

func (f *Form[T]) dispatch(ctx context.Context, intent Intent[T]) (T, error) {
	switch in := intent.(type) {
	case CreateIntent[T]:
		return f.confirmedCreate(ctx, in)
	case UpdateIntent[T]:
		return f.confirmedUpdate(ctx, in)
	default:
		var zero T
		return zero, fmt.Errorf("unknown intent %T", intent)
	}
}

func (f *Form[T]) confirmedCreate(ctx context.Context, in CreateIntent[T]) (T, error) {
	created, err := f.remote.Create(ctx, in.Fields)
	if err != nil {
		f.fail(PolicyConfirmedCreate, err, f.cfg.Messages.CreateRejected, f.cfg.Messages.CreateUnreachable)
		var zero T
		return zero, err
	}

	created = f.cfg.Confirm(created)
	f.coll.Upsert(created)
	return created, nil
}

func (f *Form[T]) confirmedUpdate(ctx context.Context, in UpdateIntent[T]) (T, error) {
	updated, err := f.remote.Update(ctx, in.ID, in.Fields)
	if err != nil {
		f.fail(PolicyConfirmedUpdate, err, f.cfg.Messages.UpdateRejected, f.cfg.Messages.UpdateUnreachable)
		var zero T
		return zero, err
	}

	updated = f.cfg.Confirm(updated)
	f.coll.Upsert(updated)
	return updated, nil
}

// fail raises exactly one alert for err
func (f *Form[T]) fail(policy Policy, err error, rejected, unreachable FailureText) {
	logger.Log.Error("remote write failed",
		zap.String("entity", f.cfg.Name),
		zap.String("policy", string(policy)),
		zap.Error(err))

	var remoteErr *models.RemoteError
	if errors.As(err, &remoteErr) {
		f.alerts.Error(rejected.Title, remoteErr.Message(rejected.Fallback))
		return
	}
	f.alerts.Error(unreachable.Title, unreachable.Fallback)
}
