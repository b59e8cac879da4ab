package dto

import (
	"github.com/shopspring/decimal"

	"woodshop/internal/domain/catalogs/material"
)

// MaterialRequest is the request body for creating or updating a material.
// Decimals accept both JSON numbers and quoted strings.
type MaterialRequest struct {
	Name          string           `json:"name"`
	Description   *string          `json:"description"`
	Category      string           `json:"category"`
	UnitPrice     decimal.Decimal  `json:"unitPrice"`
	UnitOfMeasure string           `json:"unitOfMeasure"`
	StockQuantity decimal.Decimal  `json:"stockQuantity"`
	MinimumStock  *decimal.Decimal `json:"minimumStock"`
	MaximumStock  *decimal.Decimal `json:"maximumStock"`
	Location      *string          `json:"location"`
}

// ToEntity converts DTO to domain entity. id is zero for creation.
func (r MaterialRequest) ToEntity(id int) *material.Material {
	m := &material.Material{
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		UnitPrice:     r.UnitPrice,
		UnitOfMeasure: r.UnitOfMeasure,
		StockQuantity: r.StockQuantity,
		MinimumStock:  r.MinimumStock,
		MaximumStock:  r.MaximumStock,
		Location:      r.Location,
	}
	m.ID = id
	return m
}
