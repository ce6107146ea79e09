package service

import (
	"context"
	"time"

	"github.com/rookgm/salesadmin/internal/models"
	"github.com/rookgm/salesadmin/internal/query"
	"github.com/rookgm/salesadmin/internal/store"
)

// OrderService serves the order table, the summary cards and the order dialog
type OrderService struct {
	*Form[models.Order]

	store *store.Store

	// guarded by the form lock
	platform Selection
	status   Selection
}

// NewOrderService creates new OrderService instance. The order dialog closes once the backend has answered.
func NewOrderService(st *store.Store, remote Remote[models.Order], alerts Alerter) *OrderService {
	s := &OrderService{store: st}

	s.Form = NewForm(FormConfig[models.Order]{
		Name:  "order",
		Close: CloseOnConfirm,
		Messages: Messages{
			CreateRejected:    FailureText{Title: "Pedido no creado", Fallback: "Error al crear el pedido"},
			CreateUnreachable: FailureText{Fallback: "Error al crear el pedido"},
			UpdateRejected:    FailureText{Title: "Pedido no actualizado", Fallback: "Error al actualizar el pedido"},
			UpdateUnreachable: FailureText{Title: "Error al actualizar el pedido", Fallback: "El pedido no pudo ser actualizado"},
		},
		Blank:   func() models.Order { return models.Order{} },
		OnOpen:  s.onOpen,
		Prepare: s.prepare,
		Confirm: s.denormalize,
	}, remote, st.Orders, alerts)

	// option lists may arrive after the dialog has been opened
	st.Platforms.Subscribe(func(string) { s.backfill() })
	st.Statuses.Subscribe(func(string) { s.backfill() })

	return s
}

// View returns the filtered table rows and the summary over all orders
func (s *OrderService) View(c query.Criteria) ([]models.Order, query.Stats) {
	orders := s.store.Orders.Snapshot()
	return query.Filter(orders, c), query.Aggregate(orders)
}

// Stats returns the summary over all orders
func (s *OrderService) Stats() query.Stats {
	return query.Aggregate(s.store.Orders.Snapshot())
}

// StatusOptions returns the statuses offered to the order dialog, unique by name
func (s *OrderService) StatusOptions() []models.Status {
	seen := make(map[string]struct{})
	var out []models.Status
	for _, st := range s.store.Statuses.Snapshot() {
		if _, ok := seen[st.Name]; ok {
			continue
		}
		seen[st.Name] = struct{}{}
		out = append(out, st)
	}
	return out
}

// PlatformOptions returns the platforms offered to the order dialog
func (s *OrderService) PlatformOptions() []models.Platform {
	return s.store.Platforms.Snapshot()
}

// ChoosePlatform records the user's platform choice in the open dialog
func (s *OrderService) ChoosePlatform(id string) (Dialog[models.Order], error) {
	p, ok := s.store.Platforms.Get(id)
	if !ok {
		return Dialog[models.Order]{}, models.ErrUnknownPlatform
	}
	return s.choose(func(d *Dialog[models.Order]) {
		s.platform.Choose(id)
		d.Fields.PlatformID = p.ID
		d.Fields.PlatformName = p.Name
	})
}

// ChooseStatus records the user's status choice in the open dialog
func (s *OrderService) ChooseStatus(id string) (Dialog[models.Order], error) {
	st, ok := s.store.Statuses.Get(id)
	if !ok {
		return Dialog[models.Order]{}, models.ErrUnknownStatus
	}
	return s.choose(func(d *Dialog[models.Order]) {
		s.status.Choose(id)
		d.Fields.StatusID = st.ID
		d.Fields.StatusName = st.Name
	})
}

func (s *OrderService) choose(fn func(d *Dialog[models.Order])) (Dialog[models.Order], error) {
	var closed bool
	d := s.Mutate(func(d *Dialog[models.Order]) {
		if !d.Open {
			closed = true
			return
		}
		fn(d)
	})
	if closed {
		return d, models.ErrDialogClosed
	}
	return d, nil
}

// Submit sends the order dialog. Fields left empty take the values shown by the dialog.
func (s *OrderService) Submit(ctx context.Context, fields models.Order) (models.Order, error) {
	d := s.Dialog()
	if fields.PlatformID == "" {
		fields.PlatformID = d.Fields.PlatformID
	}
	if fields.StatusID == "" {
		fields.StatusID = d.Fields.StatusID
	}
	if fields.DateTime.IsZero() {
		fields.DateTime = d.Fields.DateTime
	}
	return s.Form.Submit(ctx, fields)
}

func (s *OrderService) onOpen(d *Dialog[models.Order]) {
	if d.Editing != nil {
		s.platform.Choose(string(d.Editing.PlatformID))
		s.status.Choose(string(d.Editing.StatusID))
		return
	}

	s.platform.Reset()
	s.status.Reset()
	d.Fields.DateTime = models.NewTimestamp(time.Now().UTC().Truncate(time.Second))
	s.syncDefaults(d)
}

// backfill re-derives the selects of an open create dialog after the options changed
func (s *OrderService) backfill() {
	s.Mutate(func(d *Dialog[models.Order]) {
		if d.Creating() {
			s.syncDefaults(d)
		}
	})
}

func (s *OrderService) syncDefaults(d *Dialog[models.Order]) {
	platforms := s.PlatformOptions()
	platformIDs := make([]string, 0, len(platforms))
	for _, p := range platforms {
		platformIDs = append(platformIDs, p.Key())
	}

	statuses := s.StatusOptions()
	statusIDs := make([]string, 0, len(statuses))
	for _, st := range statuses {
		statusIDs = append(statusIDs, st.Key())
	}

	d.Fields.PlatformID = models.FlexID(s.platform.Sync(platformIDs))
	d.Fields.StatusID = models.FlexID(s.status.Sync(statusIDs))
	d.Fields = s.denormalize(d.Fields)
}

func (s *OrderService) prepare(o models.Order, creating bool) (models.Order, error) {
	if err := models.Validate(o); err != nil {
		return o, err
	}
	if creating {
		if _, ok := s.store.Platforms.Get(string(o.PlatformID)); !ok {
			return o, models.ErrUnknownPlatform
		}
	}
	if _, ok := s.store.Statuses.Get(string(o.StatusID)); !ok {
		return o, models.ErrUnknownStatus
	}
	return s.denormalize(o), nil
}

// denormalize sets the platform and status names from the referenced ids.
// A name whose id is not in the store is kept as sent, a missing id clears its name.
func (s *OrderService) denormalize(o models.Order) models.Order {
	if o.PlatformID == "" {
		o.PlatformName = ""
	}
	if o.StatusID == "" {
		o.StatusName = ""
	}
	if p, ok := s.store.Platforms.Get(string(o.PlatformID)); ok {
		o.PlatformName = p.Name
	}
	if st, ok := s.store.Statuses.Get(string(o.StatusID)); ok {
		o.StatusName = st.Name
	}
	return o
}
