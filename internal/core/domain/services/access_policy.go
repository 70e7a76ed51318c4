package services

import (
	"orders/internal/core/domain/model/auth"
	"orders/internal/pkg/errs"
)

// Action enumerates the order operations the access policy rules on.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionCreate places a new order.
	ActionCreate

	// ActionView reads a single order by its identifier.
	ActionView

	// ActionUpdateStatus changes the status of an order.
	ActionUpdateStatus

	// ActionList queries orders with filters.
	ActionList

	// ActionDelete soft-deletes an order.
	ActionDelete
)

// getActionStrings returns a map of Action values to their names, used in
// forbidden-error messages.
func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown:      "unknown",
		ActionCreate:       "create order",
		ActionView:         "view order",
		ActionUpdateStatus: "update order status",
		ActionList:         "list orders",
		ActionDelete:       "delete order",
	}
}

// String returns the human-readable name of the action.
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// OrderAccessPolicy is a domain service deciding whether an actor may perform
// an action on an order. It is a pure function of its inputs and holds no
// state, which keeps the authorization rules independently testable.
//
// Rules:
//   - Creating an order is open to every authenticated actor.
//   - Viewing and status updates are open to admins; users may only touch
//     orders they own (the order's customer name equals the actor name).
//   - Listing and deletion are admin-only regardless of ownership.
//
// Ownership checks require the order to be loaded first, so for view and
// update a missing order surfaces as not-found before any forbidden
// decision. Deletion and listing are pure role rules and are checked before
// touching the store.
//
// Example usage:
//
//	policy := services.NewOrderAccessPolicy()
//	if err := policy.Authorize(actor, services.ActionView, o.CustomerName()); err != nil {
//	    // errs.ErrAccessForbidden
//	    return err
//	}
type OrderAccessPolicy struct{}

// NewOrderAccessPolicy creates a new OrderAccessPolicy instance.
func NewOrderAccessPolicy() OrderAccessPolicy {
	return OrderAccessPolicy{}
}

// Authorize decides whether the actor may perform the action on the order
// owned by ownerName. For actions that are not tied to a specific order
// (create, list) ownerName is ignored and may be empty.
//
// Returns nil when the action is allowed and an AccessForbiddenError
// otherwise. Invalid actors and unknown actions are rejected.
func (p OrderAccessPolicy) Authorize(actor auth.Actor, action Action, ownerName string) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	switch action {
	case ActionCreate:
		return nil
	case ActionView, ActionUpdateStatus:
		if actor.IsAdmin() || actor.Name() == ownerName {
			return nil
		}
		return errs.NewAccessForbiddenError(actor.Name(), action.String())
	case ActionList, ActionDelete:
		if actor.IsAdmin() {
			return nil
		}
		return errs.NewAccessForbiddenError(actor.Name(), action.String())
	default:
		return errs.NewAccessForbiddenError(actor.Name(), action.String())
	}
}
