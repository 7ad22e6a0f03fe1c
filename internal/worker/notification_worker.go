package worker

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/tenx-mn/catering-service/internal/events"
)

// ErrQueueFull is returned by Enqueue when the buffer is exhausted.
var ErrQueueFull = errors.New("notification queue full")

// NotificationWorker moves event handling off the request path. Events are
// buffered and handled by one goroutine in publication order.
type NotificationWorker struct {
	queue  chan events.Event
	handle events.EventHandler
	logger *zap.Logger

	once sync.Once
	done chan struct{}
}

// NewNotificationWorker creates a worker with the given buffer size.
func NewNotificationWorker(handle events.EventHandler, buffer int, logger *zap.Logger) *NotificationWorker {
	if buffer <= 0 {
		buffer = 1
	}
	return &NotificationWorker{
		queue:  make(chan events.Event, buffer),
		handle: handle,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Subscribe routes every account event type to the worker.
func (w *NotificationWorker) Subscribe(d events.Dispatcher) {
	events.SubscribeAll(d, w.Enqueue)
}

// Enqueue buffers event without blocking. It drops the event when the
// buffer is full.
func (w *NotificationWorker) Enqueue(_ context.Context, event events.Event) error {
	select {
	case w.queue <- event:
		return nil
	default:
		w.logger.Warn("dropping account event", zap.String("type", string(event.Type)), zap.String("event_id", event.ID))
		return ErrQueueFull
	}
}

// Run handles events until ctx is cancelled, then drains what is buffered.
func (w *NotificationWorker) Run(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case event := <-w.queue:
			w.process(ctx, event)
		case <-ctx.Done():
			w.drain()
			return
		}
	}
}

// Wait blocks until Run has returned.
func (w *NotificationWorker) Wait() {
	<-w.done
}

func (w *NotificationWorker) drain() {
	w.once.Do(func() {
		for {
			select {
			case event := <-w.queue:
				w.process(context.Background(), event)
			default:
				return
			}
		}
	})
}

func (w *NotificationWorker) process(ctx context.Context, event events.Event) {
	if err := w.handle(ctx, event); err != nil {
		w.logger.Error("account event handler failed",
			zap.String("type", string(event.Type)),
			zap.String("event_id", event.ID),
			zap.Error(err))
	}
}
