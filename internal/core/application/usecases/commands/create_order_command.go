package commands

import (
	"errors"

	"orders/internal/core/domain/model/auth"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ProductLine is a single requested line item of a new order.
// It is plain input data; validation happens when the domain Product is
// built from it.
type ProductLine struct {
	Name     string
	Price    float64
	Quantity int
}

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the customer name, the requested product lines, and the
// actor placing the order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, "alice", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor        auth.Actor
	customerName string
	products     []ProductLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the actor is constructed and the customer name is not
// empty. The product list may be empty; line contents are validated by the
// domain when the order is built.
func NewCreateOrderCommand(actor auth.Actor, customerName string, products []ProductLine) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard:    guard.NewConstructorGuard(),
		products: products,
	}

	if err := errors.Join(
		orderCommand.setActor(actor),
		orderCommand.setCustomerName(customerName),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the caller placing the order.
func (c CreateOrderCommand) Actor() auth.Actor {
	return c.actor
}

// CustomerName returns the customer the order is placed for.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Products returns the requested product lines.
func (c CreateOrderCommand) Products() []ProductLine {
	return c.products
}

func (c *CreateOrderCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}
