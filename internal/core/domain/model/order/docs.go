// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and soft deletion.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, product lines, and lifecycle
//   - Product: A line item owned by an order, with price and quantity
//   - Status: A value object covering the pending/confirmed/cancelled/deleted lifecycle
//   - StatusChangedEvent: A record of a single status transition
//
// Key business rules:
//   - Orders must have a valid unique identifier and a non-empty customer name
//   - The order total is the sum of product subtotals, fixed at creation
//   - Deletion is soft: a deleted order keeps its data and stays addressable by ID
//   - Status changes emit an event carrying both sides of the transition
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
