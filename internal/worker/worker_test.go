package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingLoader struct {
	n atomic.Int32
}

func (l *countingLoader) Load(ctx context.Context) error {
	l.n.Add(1)
	return ctx.Err()
}

func TestRefresher_InitialLoadOnly(t *testing.T) {
	l := &countingLoader{}
	NewRefresher(l, 0).Run(context.Background())
	assert.Equal(t, int32(1), l.n.Load())
}

func TestRefresher_Periodic(t *testing.T) {
	l := &countingLoader{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		NewRefresher(l, 10*time.Millisecond).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return l.n.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop")
	}
}
