// Package queries contains read operations for the CQRS architecture.
// Query handlers go straight to the database with raw SQL, bypassing the
// aggregate repositories, and return flat response models.
package queries

import (
	"orders/internal/core/domain/model/kernel"
)

// OrderResponse is the read model of a single order.
type OrderResponse struct {
	ID           kernel.UUID
	CustomerName string
	Status       string
	TotalPrice   float64
	Products     []ProductResponse
}

// ProductResponse is the read model of an order line item.
type ProductResponse struct {
	ID       kernel.UUID
	Name     string
	Price    float64
	Quantity int
}
