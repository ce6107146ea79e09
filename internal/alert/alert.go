// Package alert holds the single alert shown to the user and dismisses it after a delay.
package alert

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rookgm/salesadmin/internal/models"
)

// DefaultTTL is the auto-dismiss delay
const DefaultTTL = 5 * time.Second

// Notifier keeps the current alert. Raising a new alert supersedes the current one
// and cancels its pending dismissal.
type Notifier struct {
	mu        sync.Mutex
	ttl       time.Duration
	current   *models.Alert
	timer     *time.Timer
	listeners []func(a models.Alert, active bool)
}

// NewNotifier creates new Notifier, a non positive ttl means DefaultTTL
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{ttl: ttl}
}

// Subscribe registers fn, called with active=true on raise and active=false on dismissal
func (n *Notifier) Subscribe(fn func(a models.Alert, active bool)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// Raise shows a new alert
func (n *Notifier) Raise(typ models.AlertType, title, message string) models.Alert {
	a := models.Alert{
		ID:       uuid.New(),
		Type:     typ,
		Title:    title,
		Message:  message,
		RaisedAt: time.Now(),
	}

	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = &a
	id := a.ID
	n.timer = time.AfterFunc(n.ttl, func() {
		n.expire(id)
	})
	n.mu.Unlock()

	n.notify(a, true)
	return a
}

// Error raises an error alert
func (n *Notifier) Error(title, message string) models.Alert {
	return n.Raise(models.AlertError, title, message)
}

// Success raises a success alert
func (n *Notifier) Success(title, message string) models.Alert {
	return n.Raise(models.AlertSuccess, title, message)
}

// Current returns the alert on screen
func (n *Notifier) Current() (models.Alert, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return models.Alert{}, false
	}
	return *n.current, true
}

// Dismiss removes the current alert before it expires
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	if n.current == nil {
		n.mu.Unlock()
		return
	}
	a := *n.current
	n.current = nil
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.mu.Unlock()

	n.notify(a, false)
}

// expire dismisses the alert id unless it was superseded meanwhile
func (n *Notifier) expire(id uuid.UUID) {
	n.mu.Lock()
	if n.current == nil || n.current.ID != id {
		n.mu.Unlock()
		return
	}
	a := *n.current
	n.current = nil
	n.timer = nil
	n.mu.Unlock()

	n.notify(a, false)
}

func (n *Notifier) notify(a models.Alert, active bool) {
	n.mu.Lock()
	listeners := make([]func(models.Alert, bool), len(n.listeners))
	copy(listeners, n.listeners)
	n.mu.Unlock()

	for _, fn := range listeners {
		fn(a, active)
	}
}
