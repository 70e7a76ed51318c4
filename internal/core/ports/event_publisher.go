package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// StatusChangedPublisher receives order status transitions after they have
// been persisted. Implementations fan the event out to whatever sink they
// represent, such as a log or a message broker. Publishing is best effort:
// a failed publish never rolls back the transition that produced it.
type StatusChangedPublisher interface {
	// PublishStatusChanged delivers a single status transition.
	PublishStatusChanged(ctx context.Context, event order.StatusChangedEvent) error
}
