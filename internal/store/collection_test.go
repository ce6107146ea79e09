package store

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rookgm/salesadmin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys[T models.Entity](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Key())
	}
	return out
}

func TestCollection_ReplaceAll(t *testing.T) {
	c := NewCollection[models.Order](Orders)
	c.Upsert(models.Order{ID: "old"})

	c.ReplaceAll([]models.Order{{ID: "a"}, {ID: "b"}, {ID: "a", StatusName: "dup"}})

	if diff := cmp.Diff([]string{"a", "b"}, keys(c.Snapshot())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Empty(t, got.StatusName)
}

func TestCollection_Upsert(t *testing.T) {
	tests := []struct {
		name    string
		initial []models.Order
		upserts []models.Order
		want    []string
	}{
		{
			name:    "new entity is prepended",
			initial: []models.Order{{ID: "a"}, {ID: "b"}},
			upserts: []models.Order{{ID: "c"}},
			want:    []string{"c", "a", "b"},
		},
		{
			name:    "existing entity keeps its position",
			initial: []models.Order{{ID: "a"}, {ID: "b"}, {ID: "c"}},
			upserts: []models.Order{{ID: "b", StatusName: "completed"}},
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "upsert twice leaves one occurrence",
			initial: []models.Order{{ID: "a"}},
			upserts: []models.Order{{ID: "ORD-9"}, {ID: "ORD-9"}},
			want:    []string{"ORD-9", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollection[models.Order](Orders)
			c.ReplaceAll(tt.initial)
			for _, o := range tt.upserts {
				c.Upsert(o)
			}

			if diff := cmp.Diff(tt.want, keys(c.Snapshot())); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollection_UpsertReplacesContent(t *testing.T) {
	c := NewCollection[models.Customer](Customers)
	c.ReplaceAll([]models.Customer{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Luis"}})

	c.Upsert(models.Customer{ID: 2, Name: "Luisa"})

	got, ok := c.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Luisa", got.Name)
	assert.Equal(t, 2, c.Len())
}

func TestCollection_RemoveByID(t *testing.T) {
	c := NewCollection[models.Order](Orders)
	c.ReplaceAll([]models.Order{{ID: "a"}, {ID: "X"}, {ID: "b"}})

	assert.True(t, c.RemoveByID("X"))
	assert.False(t, c.RemoveByID("X"))
	assert.False(t, c.RemoveByID("missing"))

	if diff := cmp.Diff([]string{"a", "b"}, keys(c.Snapshot())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_SnapshotIsCopy(t *testing.T) {
	c := NewCollection[models.Order](Orders)
	c.ReplaceAll([]models.Order{{ID: "a"}})

	snap := c.Snapshot()
	snap[0].ID = "mutated"

	_, ok := c.Get("a")
	assert.True(t, ok)
}

func TestCollection_Subscribe(t *testing.T) {
	c := NewCollection[models.Status](Statuses)

	var got []string
	c.Subscribe(func(name string) { got = append(got, name) })

	c.ReplaceAll([]models.Status{{ID: "1", Name: "processing"}})
	c.Upsert(models.Status{ID: "2", Name: "completed"})
	c.RemoveByID("1")
	c.RemoveByID("1")

	assert.Equal(t, []string{Statuses, Statuses, Statuses}, got)
}

func TestCollection_ConcurrentUpsert(t *testing.T) {
	c := NewCollection[models.Order](Orders)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Upsert(models.Order{ID: "same"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, c.Len())
}

func TestStore_Subscribe(t *testing.T) {
	s := New()

	var mu sync.Mutex
	seen := map[string]int{}
	s.Subscribe(func(name string) {
		mu.Lock()
		seen[name]++
		mu.Unlock()
	})

	s.Customers.Upsert(models.Customer{ID: 1})
	s.Orders.Upsert(models.Order{ID: "a"})

	assert.Equal(t, map[string]int{Customers: 1, Orders: 1}, seen)
}
