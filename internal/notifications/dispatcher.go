// Package notifications fans order status-change events out to interested
// subscribers. Delivery is fire-and-forget: a failing subscriber is logged
// and never affects the business operation that produced the event.
package notifications

import (
	"context"
	"log/slog"
	"sync"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// Dispatcher forwards every status-change event to all registered
// subscribers, each on its own goroutine. Implements
// ports.StatusChangedPublisher so handlers stay unaware of the fan-out.
type Dispatcher struct {
	subscribers []ports.StatusChangedPublisher
	logger      *slog.Logger
	wg          sync.WaitGroup
}

// NewDispatcher creates a dispatcher over the given subscribers.
func NewDispatcher(logger *slog.Logger, subscribers ...ports.StatusChangedPublisher) *Dispatcher {
	return &Dispatcher{
		subscribers: subscribers,
		logger:      logger,
	}
}

// PublishStatusChanged delivers the event to every subscriber asynchronously.
// Always returns nil; subscriber failures are logged only.
func (d *Dispatcher) PublishStatusChanged(ctx context.Context, event order.StatusChangedEvent) error {
	for _, subscriber := range d.subscribers {
		d.wg.Add(1)
		go func(s ports.StatusChangedPublisher) {
			defer d.wg.Done()
			if err := s.PublishStatusChanged(ctx, event); err != nil {
				d.logger.Error("failed to deliver status change notification",
					"orderId", event.OrderID().String(),
					"error", err,
				)
			}
		}(subscriber)
	}

	return nil
}

// Wait blocks until all in-flight deliveries finish. Used during shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// LogSubscriber records status transitions in the application log.
type LogSubscriber struct {
	logger *slog.Logger
}

// NewLogSubscriber creates a subscriber writing to the given logger.
func NewLogSubscriber(logger *slog.Logger) *LogSubscriber {
	return &LogSubscriber{logger: logger}
}

// PublishStatusChanged logs one status transition.
func (s *LogSubscriber) PublishStatusChanged(_ context.Context, event order.StatusChangedEvent) error {
	s.logger.Info("order status changed",
		"orderId", event.OrderID().String(),
		"from", event.OldStatus().String(),
		"to", event.NewStatus().String(),
	)
	return nil
}
