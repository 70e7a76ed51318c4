// Package ports defines the contracts between the application core and
// infrastructure. These interfaces establish dependency inversion for
// persistence, messaging, and token handling, keeping the core testable.
package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Deleted orders are ordinary rows with a deleted status: Get returns them
// like any other order, only listings filter them out.
type OrderRepository interface {
	// Add persists a new order aggregate with its product lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// soft-deleted ones. Returns an ObjectNotFoundError when no row exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
