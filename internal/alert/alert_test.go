package alert

import (
	"sync"
	"testing"
	"time"

	"github.com/rookgm/salesadmin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_RaiseAndExpire(t *testing.T) {
	n := NewNotifier(30 * time.Millisecond)

	raised := n.Error("Cliente no creado", "phone already used")

	got, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, raised.ID, got.ID)
	assert.Equal(t, models.AlertError, got.Type)
	assert.Equal(t, "phone already used", got.Message)

	assert.Eventually(t, func() bool {
		_, ok := n.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestNotifier_SupersedeCancelsPendingDismissal(t *testing.T) {
	n := NewNotifier(200 * time.Millisecond)

	n.Error("first", "first")
	time.Sleep(120 * time.Millisecond)
	second := n.Success("second", "second")

	// the first alert's timer would have fired by now
	time.Sleep(120 * time.Millisecond)
	got, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, second.ID, got.ID)

	assert.Eventually(t, func() bool {
		_, ok := n.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestNotifier_Dismiss(t *testing.T) {
	n := NewNotifier(time.Hour)

	var mu sync.Mutex
	var events []bool
	n.Subscribe(func(a models.Alert, active bool) {
		mu.Lock()
		events = append(events, active)
		mu.Unlock()
	})

	n.Error("", "boom")
	n.Dismiss()
	n.Dismiss()

	_, ok := n.Current()
	assert.False(t, ok)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []bool{true, false}, events)
}

func TestNewNotifier_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewNotifier(0).ttl)
	assert.Equal(t, 5*time.Second, DefaultTTL)
}
