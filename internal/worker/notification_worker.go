package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/staffhq/staff-bot/internal/events"
	"github.com/staffhq/staff-bot/internal/service"
)

const defaultQueueSize = 64

// NotificationWorker moves audit delivery off the command path: published
// events are queued and handed to the notification service on one goroutine.
// Events arriving while the queue is full are dropped with a warning.
type NotificationWorker struct {
	svc    *service.NotificationService
	logger *zap.Logger
	queue  chan events.Event
	wg     sync.WaitGroup
}

// NewNotificationWorker builds a worker with the given queue size.
func NewNotificationWorker(svc *service.NotificationService, logger *zap.Logger, size int) *NotificationWorker {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &NotificationWorker{svc: svc, logger: logger, queue: make(chan events.Event, size)}
}

// StartNotificationWorker subscribes a worker to dispatcher and runs it until
// ctx is cancelled. Callers wait on the returned worker before exiting.
func StartNotificationWorker(ctx context.Context, dispatcher events.Dispatcher, svc *service.NotificationService, logger *zap.Logger) *NotificationWorker {
	if svc == nil || dispatcher == nil {
		return nil
	}
	w := NewNotificationWorker(svc, logger, defaultQueueSize)
	for _, t := range svc.EventTypes() {
		dispatcher.Subscribe(t, w.Enqueue)
	}
	w.wg.Add(1)
	go w.run(ctx)
	return w
}

// Enqueue queues event for delivery. It never blocks.
func (w *NotificationWorker) Enqueue(_ context.Context, event events.Event) error {
	select {
	case w.queue <- event:
	default:
		w.logger.Warn("notification queue full; dropping event",
			zap.String("event_id", event.ID), zap.String("type", string(event.Type)))
	}
	return nil
}

func (w *NotificationWorker) run(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case event := <-w.queue:
			w.deliver(context.WithoutCancel(ctx), event)
		}
	}
}

func (w *NotificationWorker) drain() {
	for {
		select {
		case event := <-w.queue:
			w.deliver(context.Background(), event)
		default:
			return
		}
	}
}

func (w *NotificationWorker) deliver(ctx context.Context, event events.Event) {
	if err := w.svc.Handle(ctx, event); err != nil {
		w.logger.Warn("notification delivery failed", zap.String("event_id", event.ID), zap.Error(err))
	}
}

// Wait blocks until the worker has stopped and flushed its queue.
func (w *NotificationWorker) Wait() {
	if w == nil {
		return
	}
	w.wg.Wait()
}
