package order

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering domain. It owns its product
// lines and manages the order lifecycle from creation through status updates
// to soft deletion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty customer name
//   - Total price is derived from the product lines at creation and never
//     recalculated afterwards
//   - Status is always one of the valid lifecycle values
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName identifies the customer who placed the order and is
	// also the ownership key for access decisions
	customerName string

	// status represents the current state in the order lifecycle
	status Status

	// totalPrice is the sum of product subtotals, fixed at creation
	totalPrice float64

	// products are the line items owned by this order (may be empty)
	products []*Product

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with a freshly generated identifier.
// The order starts in Pending status and its total price is computed as the
// sum of the product subtotals (zero for an empty product list).
//
// Example:
//
//	products := []*order.Product{p1, p2}
//	o, err := order.NewOrder("alice", products)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(customerName string, products []*Product) (*Order, error) {
	newOrder := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		newOrder.setID(kernel.NewUUID()),
		newOrder.setCustomerName(customerName),
		newOrder.setProducts(products),
	); err != nil {
		return nil, err
	}

	newOrder.totalPrice = calculateTotal(newOrder.products)

	return newOrder, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it takes the stored status and total price as-is, so the
// aggregate round-trips through the database without recomputing anything.
// Rows that fail validation indicate corrupted storage.
func RestoreOrder(
	id kernel.UUID, customerName string, status Status, totalPrice float64, products []*Product,
) (*Order, error) {
	restored := &Order{
		totalPrice:    totalPrice,
		isConstructed: true,
	}

	if err := errors.Join(
		restored.setID(id),
		restored.setCustomerName(customerName),
		restored.setStatus(status),
		restored.setProducts(products),
	); err != nil {
		return nil, err
	}

	return restored, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the name of the customer who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the order total computed at creation time.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Products returns the order's line items.
func (o *Order) Products() []*Product {
	return o.products
}

// IsOwnedBy reports whether the order belongs to the named customer.
func (o *Order) IsOwnedBy(customerName string) bool {
	return o.customerName == customerName
}

// ChangeStatus moves the order to the given status and reports the
// transition as a StatusChangedEvent.
//
// Any valid status may be set, including re-setting the current one; only
// invalid status values are rejected. The returned event carries both the
// previous and the new status so subscribers can react to the transition.
//
// Example:
//
//	event, err := o.ChangeStatus(order.Confirmed)
//	if err != nil {
//	    // status value was invalid
//	}
func (o *Order) ChangeStatus(newStatus Status) (StatusChangedEvent, error) {
	if err := newStatus.Validate(); err != nil {
		return StatusChangedEvent{}, err
	}

	oldStatus := o.status
	o.status = newStatus

	return NewStatusChangedEvent(o.id, oldStatus, newStatus), nil
}

// MarkDeleted soft-deletes the order by moving it to the Deleted status.
// The order keeps its data and stays addressable by ID, but is excluded
// from listings. The transition is reported the same way as any other
// status change.
func (o *Order) MarkDeleted() (StatusChangedEvent, error) {
	return o.ChangeStatus(Deleted)
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerName validates and sets the order's customer name.
// This is a private method used only during construction.
func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

// setStatus validates and sets the order's status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setProducts validates and sets the order's line items.
// A nil list is normalized to an empty one so the aggregate never carries
// a nil slice. This is a private method used only during construction.
func (o *Order) setProducts(products []*Product) error {
	for _, product := range products {
		if err := product.Validate(); err != nil {
			return err
		}
	}

	if products == nil {
		products = []*Product{}
	}
	o.products = products
	return nil
}

// calculateTotal sums the subtotals of the given product lines.
func calculateTotal(products []*Product) float64 {
	var total float64
	for _, product := range products {
		total += product.Subtotal()
	}
	return total
}
