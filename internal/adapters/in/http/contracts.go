// Package http exposes the order management API over Echo.
// Handlers translate between the wire contracts and application use cases;
// all business decisions stay in the command and query handlers.
package http

import (
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
)

// LoginRequest carries the credentials for token issuance.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse returns the signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ProductRequest is one order line in a creation request.
type ProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CreateOrderRequest carries the payload for order creation.
type CreateOrderRequest struct {
	CustomerName string           `json:"customerName"`
	Products     []ProductRequest `json:"products"`
}

// UpdateOrderStatusRequest carries the target status for an update.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// ProductResponse is one order line in API responses.
type ProductResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderResponse is the API representation of an order.
type OrderResponse struct {
	ID           string            `json:"id"`
	CustomerName string            `json:"customerName"`
	Status       string            `json:"status"`
	TotalPrice   float64           `json:"totalPrice"`
	Products     []ProductResponse `json:"products"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// orderResponseFromDomain maps an order aggregate to the wire contract.
func orderResponseFromDomain(aggregate *order.Order) OrderResponse {
	products := make([]ProductResponse, 0, len(aggregate.Products()))
	for _, p := range aggregate.Products() {
		products = append(products, ProductResponse{
			ID:       p.ID().String(),
			Name:     p.Name(),
			Price:    p.Price(),
			Quantity: p.Quantity(),
		})
	}

	return OrderResponse{
		ID:           aggregate.ID().String(),
		CustomerName: aggregate.CustomerName(),
		Status:       aggregate.Status().String(),
		TotalPrice:   aggregate.TotalPrice(),
		Products:     products,
	}
}

// orderResponseFromQuery maps a read-side row to the wire contract.
func orderResponseFromQuery(resp queries.OrderResponse) OrderResponse {
	products := make([]ProductResponse, 0, len(resp.Products))
	for _, p := range resp.Products {
		products = append(products, ProductResponse{
			ID:       p.ID.String(),
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}

	return OrderResponse{
		ID:           resp.ID.String(),
		CustomerName: resp.CustomerName,
		Status:       resp.Status,
		TotalPrice:   resp.TotalPrice,
		Products:     products,
	}
}
