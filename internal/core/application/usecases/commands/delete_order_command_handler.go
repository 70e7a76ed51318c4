package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
)

// DeleteOrderCommandHandler handles soft deletion of orders.
// Deletion is an admin-only role rule with no ownership component, so the
// authorization check runs before the order is loaded: a non-admin caller
// is rejected even for identifiers that do not exist.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
	publisher  ports.StatusChangedPublisher
	logger     *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler for order soft deletion.
// Requires an OrderUoWFactory for transactional persistence and a publisher
// for the status-changed events.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.OrderAccessPolicy,
	publisher ports.StatusChangedPublisher,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the soft-delete command.
// The deletion is a status transition to "deleted" and publishes the same
// status-changed event as a regular update, after the commit.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionDelete, ""); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		h.logger.Warn("order not found for deletion", "orderId", cmd.OrderID().String())
		return err
	}

	event, err := existing.MarkDeleted()
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishStatusChanged(ctx, event); err != nil {
		h.logger.Error("failed to publish status change", "orderId", cmd.OrderID().String(), "error", err)
	}

	h.logger.Info("order soft-deleted", "orderId", existing.ID().String())

	return nil
}
