package material

import (
	"strings"

	"woodshop/internal/core/types"
)

// Normalize returns a cleaned copy of m. Amounts are rounded to the
// scale the store keeps, so a saved material reads back unchanged.
func Normalize(m Material) Material {
	out := m
	out.Name = strings.TrimSpace(m.Name)
	out.Description = trimmed(m.Description)
	out.Category = strings.TrimSpace(m.Category)
	out.UnitOfMeasure = strings.ToUpper(strings.TrimSpace(m.UnitOfMeasure))
	out.Location = trimmed(m.Location)
	out.UnitPrice = types.RoundMoney(m.UnitPrice)
	out.StockQuantity = types.RoundQuantity(m.StockQuantity)
	out.MinimumStock = types.RoundQuantityPtr(m.MinimumStock)
	out.MaximumStock = types.RoundQuantityPtr(m.MaximumStock)
	return out
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
