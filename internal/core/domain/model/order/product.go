package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory methods.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a line item owned by an order. It has no lifecycle of its own:
// products are created together with their order and persisted alongside it.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty
//   - Price must not be negative
//   - Quantity must not be negative
type Product struct {
	id       kernel.UUID
	name     string
	price    float64
	quantity int

	isConstructed bool
}

// NewProduct creates a new Product with a freshly generated identifier.
// Price and quantity may be zero but never negative; a zero-quantity line
// simply contributes nothing to the order total.
func NewProduct(name string, price float64, quantity int) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(kernel.NewUUID()),
		product.setName(name),
		product.setPrice(price),
		product.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persisted state.
// The same invariants as NewProduct apply; rows that fail validation
// indicate corrupted storage.
func RestoreProduct(id kernel.UUID, name string, price float64, quantity int) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed through
// one of the factory methods.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() float64 {
	return p.price
}

// Quantity returns the ordered quantity.
func (p *Product) Quantity() int {
	return p.quantity
}

// Subtotal returns the line total (price multiplied by quantity).
func (p *Product) Subtotal() float64 {
	return p.price * float64(p.quantity)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%v is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is negative", quantity))
	}
	p.quantity = quantity
	return nil
}
