package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tenx-mn/catering-service/internal/events"
)

func TestNotificationWorker_HandlesInOrderAndDrains(t *testing.T) {
	var mu sync.Mutex
	var got []events.EventType
	handle := func(_ context.Context, e events.Event) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.Type)
		return nil
	}

	w := NewNotificationWorker(handle, 8, zap.NewNop())
	d := events.NewInMemoryDispatcher()
	w.Subscribe(d)

	require.NoError(t, d.Publish(context.Background(), events.NewEvent(events.EventAccountRegistered, "u1", "", nil)))
	require.NoError(t, d.Publish(context.Background(), events.NewEvent(events.EventLoginSucceeded, "u1", "", nil)))

	ctx, cancel := context.WithCancel(context.Background())
	go w.Run(ctx)
	cancel()
	w.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []events.EventType{events.EventAccountRegistered, events.EventLoginSucceeded}, got)
}

func TestNotificationWorker_DropsWhenFull(t *testing.T) {
	w := NewNotificationWorker(func(context.Context, events.Event) error { return nil }, 1, zap.NewNop())

	assert.NoError(t, w.Enqueue(context.Background(), events.Event{Type: events.EventLoginFailed}))
	assert.ErrorIs(t, w.Enqueue(context.Background(), events.Event{Type: events.EventLoginFailed}), ErrQueueFull)
}

func TestNotificationWorker_ProcessesWhileRunning(t *testing.T) {
	handled := make(chan struct{}, 1)
	w := NewNotificationWorker(func(context.Context, events.Event) error {
		handled <- struct{}{}
		return nil
	}, 4, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, w.Enqueue(ctx, events.Event{Type: events.EventAccountDeleted}))
	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("event not handled")
	}
}
