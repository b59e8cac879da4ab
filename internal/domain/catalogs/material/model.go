// Package material provides the Material catalog: wood, hardware and
// consumables the shop buys and keeps in stock.
package material

import (
	"woodshop/internal/core/entity"
	"woodshop/internal/core/types"
)

// Material represents a stocked raw material.
type Material struct {
	entity.BaseEntity

	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
	Category    string  `db:"category" json:"category"`

	// UnitPrice is the purchase price per UnitOfMeasure
	UnitPrice types.Money `db:"unit_price" json:"unitPrice"`

	// UnitOfMeasure is an upper-case code such as M2, UN or KG
	UnitOfMeasure string `db:"unit_of_measure" json:"unitOfMeasure"`

	StockQuantity types.Quantity  `db:"stock_quantity" json:"stockQuantity"`
	MinimumStock  *types.Quantity `db:"minimum_stock" json:"minimumStock,omitempty"`
	MaximumStock  *types.Quantity `db:"maximum_stock" json:"maximumStock,omitempty"`

	// Location is where the material is kept in the workshop
	Location *string `db:"location" json:"location,omitempty"`
}

// BelowMinimum reports whether stock has dropped under the configured minimum.
func (m *Material) BelowMinimum() bool {
	return m.MinimumStock != nil && m.StockQuantity.LessThan(*m.MinimumStock)
}
