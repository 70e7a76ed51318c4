package order

import (
	"orders/internal/core/domain/model/kernel"
)

// StatusChangedEvent records a single status transition of an order.
// It is produced by Order.ChangeStatus and handed to subscribers after the
// transition has been persisted. The event is a plain value: it carries the
// order identity and both sides of the transition, nothing else.
type StatusChangedEvent struct {
	orderID   kernel.UUID
	oldStatus Status
	newStatus Status
}

// NewStatusChangedEvent creates an event for the given transition.
func NewStatusChangedEvent(orderID kernel.UUID, oldStatus Status, newStatus Status) StatusChangedEvent {
	return StatusChangedEvent{
		orderID:   orderID,
		oldStatus: oldStatus,
		newStatus: newStatus,
	}
}

// OrderID returns the identifier of the order that changed.
func (e StatusChangedEvent) OrderID() kernel.UUID {
	return e.orderID
}

// OldStatus returns the status before the transition.
func (e StatusChangedEvent) OldStatus() Status {
	return e.oldStatus
}

// NewStatus returns the status after the transition.
func (e StatusChangedEvent) NewStatus() Status {
	return e.newStatus
}
