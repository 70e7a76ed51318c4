package queries

import (
	"errors"

	"orders/internal/core/domain/model/auth"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders matching a set of optional filters.
// Filters combine conjunctively; price bounds are inclusive. Soft-deleted
// orders are never returned, and "deleted" is not accepted as a filter in
// the API layer (a status filter of Deleted simply matches nothing here).
//
// Example:
//
//	status := order.Confirmed
//	minPrice := 10.0
//	query, _ := NewGetOrdersQuery(actor, &status, &minPrice, nil)
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	actor    auth.Actor
	status   *order.Status
	minPrice *float64
	maxPrice *float64

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders.
// Each filter is optional; nil means the filter is not applied.
// A supplied status filter must be a valid status value.
func NewGetOrdersQuery(
	actor auth.Actor, status *order.Status, minPrice *float64, maxPrice *float64,
) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		guard:    guard.NewConstructorGuard(),
		minPrice: minPrice,
		maxPrice: maxPrice,
	}

	if err := errors.Join(
		query.setActor(actor),
		query.setStatus(status),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the caller requesting the listing.
func (q GetOrdersQuery) Actor() auth.Actor {
	return q.actor
}

// Status returns the status filter, nil when not applied.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// MinPrice returns the inclusive lower total-price bound, nil when not applied.
func (q GetOrdersQuery) MinPrice() *float64 {
	return q.minPrice
}

// MaxPrice returns the inclusive upper total-price bound, nil when not applied.
func (q GetOrdersQuery) MaxPrice() *float64 {
	return q.maxPrice
}

func (q *GetOrdersQuery) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

func (q *GetOrdersQuery) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}
