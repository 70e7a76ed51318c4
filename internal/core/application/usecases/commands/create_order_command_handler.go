package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Builds the order aggregate from the requested lines, computes the total,
// and persists it in "pending" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, policy, logger)
//	cmd, _ := NewCreateOrderCommand(actor, "alice", lines)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory, policy services.OrderAccessPolicy, logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		logger:     logger,
	}
}

// Handle processes the order creation command and returns the created order.
// Every authenticated actor may create orders. Uses a transaction to ensure
// the order and its product lines are persisted atomically.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionCreate, ""); err != nil {
		return nil, err
	}

	products := make([]*order.Product, 0, len(cmd.Products()))
	for _, line := range cmd.Products() {
		product, err := order.NewProduct(line.Name, line.Price, line.Quantity)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	newOrder, err := order.NewOrder(cmd.CustomerName(), products)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("order created",
		"orderId", newOrder.ID().String(),
		"customer", newOrder.CustomerName(),
		"total", newOrder.TotalPrice())

	return newOrder, nil
}
