package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
// Loads the order, checks ownership, applies the new status, and publishes
// the resulting status-changed event once the transaction has committed.
//
// The order is loaded before authorization so a missing order surfaces as
// not-found even when the caller would not have been allowed to touch it.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
	publisher  ports.StatusChangedPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// Requires an OrderUoWFactory for transactional persistence and a publisher
// for the status-changed events.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.OrderAccessPolicy,
	publisher ports.StatusChangedPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the status update command and returns the updated order.
// Publishing the event is best effort and happens after the commit; a
// failed publish does not fail the update.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		h.logger.Warn("order not found for status update", "orderId", cmd.OrderID().String())
		return nil, err
	}

	if err = h.policy.Authorize(cmd.Actor(), services.ActionUpdateStatus, existing.CustomerName()); err != nil {
		return nil, err
	}

	event, err := existing.ChangeStatus(cmd.Status())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.publisher.PublishStatusChanged(ctx, event); err != nil {
		h.logger.Error("failed to publish status change", "orderId", cmd.OrderID().String(), "error", err)
	}

	h.logger.Info("order status updated",
		"orderId", existing.ID().String(),
		"from", event.OldStatus().String(),
		"to", event.NewStatus().String())

	return existing, nil
}
