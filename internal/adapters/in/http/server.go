package http

import (
	"net/http"
	"strconv"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server wires HTTP routes to application use cases.
// It coordinates between HTTP handlers and command/query handlers.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderByIDHandler queries.GetOrderByIDQueryHandler
	getOrdersHandler    queries.GetOrdersQueryHandler

	// Auth
	tokenIssuer   ports.TokenIssuer
	tokenVerifier ports.TokenVerifier
}

// NewServer creates a new HTTP server with the required handlers and token services.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	tokenIssuer ports.TokenIssuer,
	tokenVerifier ports.TokenVerifier,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getOrdersHandler:         getOrdersHandler,
		tokenIssuer:              tokenIssuer,
		tokenVerifier:            tokenVerifier,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
// Order routes sit behind bearer authentication; login, health, and the
// Swagger UI stay open.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	api.POST("/auth/login", s.Login)

	orders := api.Group("/orders", BearerAuth(s.tokenVerifier))
	orders.POST("", s.CreateOrder)
	orders.GET("", s.GetOrders)
	orders.GET("/:orderId", s.GetOrderByID)
	orders.PUT("/:orderId", s.UpdateOrderStatus)
	orders.DELETE("/:orderId", s.DeleteOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Login handles POST /api/v1/auth/login - exchanges credentials for a token.
//
//	@Summary	Issue a bearer token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		LoginRequest	true	"Username and password"
//	@Success	200			{object}	TokenResponse
//	@Failure	401			{object}	ErrorResponse
//	@Router		/auth/login [post]
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	token, err := s.tokenIssuer.IssueToken(req.Username, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
//
//	@Summary	Create an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateOrderRequest	true	"Order payload"
//	@Success	201		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeError(ctx, errs.NewAuthenticationFailedError("actor is missing"))
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	lines := make([]commands.ProductLine, 0, len(req.Products))
	for _, p := range req.Products {
		lines = append(lines, commands.ProductLine{
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(actor, req.CustomerName, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromDomain(created))
}

// GetOrderByID handles GET /api/v1/orders/:orderId - retrieves one order.
//
//	@Summary	Get an order by ID
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"Order ID"
//	@Success	200		{object}	OrderResponse
//	@Failure	403		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/orders/{orderId} [get]
func (s *Server) GetOrderByID(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeError(ctx, errs.NewAuthenticationFailedError("actor is missing"))
	}

	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(resp))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:orderId - updates the status.
//
//	@Summary	Update the status of an order
//	@Tags		orders
//	@Accept		json
//	@Param		orderId	path	string						true	"Order ID"
//	@Param		status	body	UpdateOrderStatusRequest	true	"Target status"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/orders/{orderId} [put]
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeError(ctx, errs.NewAuthenticationFailedError("actor is missing"))
	}

	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - lists orders with optional filters.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Param		status		query		string	false	"Status filter"
//	@Param		minPrice	query		number	false	"Inclusive lower total price bound"
//	@Param		maxPrice	query		number	false	"Inclusive upper total price bound"
//	@Success	200			{array}		OrderResponse
//	@Failure	403			{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeError(ctx, errs.NewAuthenticationFailedError("actor is missing"))
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		statusFilter = &status
	}

	minPrice, err := parsePriceParam(ctx, "minPrice")
	if err != nil {
		return writeError(ctx, err)
	}
	maxPrice, err := parsePriceParam(ctx, "maxPrice")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(actor, statusFilter, minPrice, maxPrice)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, orderResponseFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - soft-deletes an order.
//
//	@Summary	Soft-delete an order
//	@Tags		orders
//	@Param		orderId	path	string	true	"Order ID"
//	@Success	204
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/orders/{orderId} [delete]
func (s *Server) DeleteOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return writeError(ctx, errs.NewAuthenticationFailedError("actor is missing"))
	}

	orderID, err := parseOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// parseOrderID reads the orderId path parameter as a UUID.
func parseOrderID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return id, nil
}

// parsePriceParam reads an optional float query parameter.
func parsePriceParam(ctx echo.Context, name string) (*float64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return &value, nil
}
