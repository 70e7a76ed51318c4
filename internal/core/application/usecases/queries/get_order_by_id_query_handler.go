package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single order from the database.
//
// The row is loaded before the ownership check, so a missing order surfaces
// as not-found even for callers who would not have been allowed to see it.
type GetOrderByIDQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
	logger *slog.Logger
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(
	db *gorm.DB, policy services.OrderAccessPolicy, logger *slog.Logger,
) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db, policy: policy, logger: logger}
}

// Handle executes the lookup. Soft-deleted orders are returned like any
// other; their status field reads "deleted".
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			status,
			total_price
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id           uuid.UUID
		customerName string
		status       string
		totalPrice   float64
	)
	if err := row.Scan(&id, &customerName, &status, &totalPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.logger.Warn("order not found", "orderId", query.OrderID().String())
			return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	if err := h.policy.Authorize(query.Actor(), services.ActionView, customerName); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	products, err := loadProducts(ctx, h.db, orderID)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:           orderID,
		CustomerName: customerName,
		Status:       status,
		TotalPrice:   totalPrice,
		Products:     products,
	}, nil
}

// loadProducts fetches the line items of one order, sorted by product ID.
func loadProducts(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]ProductResponse, error) {
	products := make([]ProductResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			quantity
		FROM order_products
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       uuid.UUID
			name     string
			price    float64
			quantity int
		)
		if err = rows.Scan(&id, &name, &price, &quantity); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		products = append(products, ProductResponse{
			ID:       productID,
			Name:     name,
			Price:    price,
			Quantity: quantity,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
