package queries

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves filtered order listings from the database.
// Listing is admin-only, so the authorization check runs before any query.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db, policy, logger)
//	query, _ := NewGetOrdersQuery(actor, nil, nil, nil)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("found %d orders\n", len(orders))
type GetOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
	logger *slog.Logger
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(
	db *gorm.DB, policy services.OrderAccessPolicy, logger *slog.Logger,
) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db, policy: policy, logger: logger}
}

// Handle executes the listing query.
// Filters combine conjunctively, price bounds are inclusive, soft-deleted
// orders are always excluded. Results are sorted by order ID for consistent
// output.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(query.Actor(), services.ActionList, ""); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			customer_name,
			status,
			total_price
		FROM orders
		WHERE status != ?
	`
	args := []any{order.Deleted.String()}

	if query.Status() != nil {
		sqlQuery += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.MinPrice() != nil {
		sqlQuery += " AND total_price >= ?"
		args = append(args, *query.MinPrice())
	}
	if query.MaxPrice() != nil {
		sqlQuery += " AND total_price <= ?"
		args = append(args, *query.MaxPrice())
	}
	sqlQuery += " ORDER BY id"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			customerName string
			status       string
			totalPrice   float64
		)
		if err = rows.Scan(&id, &customerName, &status, &totalPrice); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, OrderResponse{
			ID:           orderID,
			CustomerName: customerName,
			Status:       status,
			TotalPrice:   totalPrice,
			Products:     []ProductResponse{},
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		products, prodErr := loadProducts(ctx, h.db, orders[i].ID)
		if prodErr != nil {
			return nil, prodErr
		}
		orders[i].Products = products
	}

	return orders, nil
}
