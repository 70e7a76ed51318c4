// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and total price.
type OrderDTO struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	CustomerName string       `gorm:"type:varchar(255);not null"`
	Status       string       `gorm:"type:varchar(32);not null;index"`
	TotalPrice   float64      `gorm:"type:numeric;not null"`
	Products     []ProductDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ProductDTO represents the database structure for persisting order line items.
// Links to its order via foreign key; lines never change after the order is created.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Price    float64   `gorm:"type:numeric;not null"`
	Quantity int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line items.
// Overrides GORM's default naming convention to use "order_products".
func (ProductDTO) TableName() string {
	return "order_products"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all aggregate entities including product lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	products := make([]ProductDTO, 0, len(aggregate.Products()))

	for _, p := range aggregate.Products() {
		products = append(products, ProductDTO{
			ID:       p.ID().Bytes(),
			OrderID:  orderID,
			Name:     p.Name(),
			Price:    p.Price(),
			Quantity: p.Quantity(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		CustomerName: aggregate.CustomerName(),
		Status:       aggregate.Status().String(),
		TotalPrice:   aggregate.TotalPrice(),
		Products:     products,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all product lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	products := make([]*order.Product, 0, len(dto.Products))
	for _, pDto := range dto.Products {
		p, pErr := productToDomain(pDto)
		if pErr != nil {
			return nil, pErr
		}
		products = append(products, p)
	}

	return order.RestoreOrder(id, dto.CustomerName, status, dto.TotalPrice, products)
}

// productToDomain converts a product DTO to its domain entity.
// Uses RestoreProduct to reconstruct the entity with its persisted state.
func productToDomain(dto ProductDTO) (*order.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreProduct(id, dto.Name, dto.Price, dto.Quantity)
}
