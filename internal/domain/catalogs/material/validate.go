package material

import (
	"woodshop/internal/core/apperror"
)

// Validate checks a normalized material. It returns the first violation found.
func Validate(m Material) error {
	if m.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if m.Category == "" {
		return apperror.NewValidation("category is required").WithDetail("field", "category")
	}
	if m.UnitOfMeasure == "" {
		return apperror.NewValidation("unit of measure is required").WithDetail("field", "unitOfMeasure")
	}
	if m.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price must not be negative").WithDetail("field", "unitPrice")
	}
	if m.StockQuantity.IsNegative() {
		return apperror.NewValidation("stock quantity must not be negative").WithDetail("field", "stockQuantity")
	}
	if m.MinimumStock != nil && m.MinimumStock.IsNegative() {
		return apperror.NewValidation("minimum stock must not be negative").WithDetail("field", "minimumStock")
	}
	if m.MaximumStock != nil && m.MaximumStock.IsNegative() {
		return apperror.NewValidation("maximum stock must not be negative").WithDetail("field", "maximumStock")
	}
	if m.MinimumStock != nil && m.MaximumStock != nil && m.MinimumStock.GreaterThan(*m.MaximumStock) {
		return apperror.NewValidation("minimum stock must not exceed maximum stock").
			WithDetail("field", "minimumStock").
			WithDetail("minimumStock", m.MinimumStock.String()).
			WithDetail("maximumStock", m.MaximumStock.String())
	}
	return nil
}

var errNilMaterial = apperror.NewValidation("material is required")
