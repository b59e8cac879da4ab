package material

import (
	"woodshop/internal/domain"
)

// Service provides business logic for the Material catalog.
type Service struct {
	*domain.CatalogService[*Material]
}

// NewService creates a new Material service.
func NewService(repo Repository) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Material]{
			Repo:       repo,
			Prepare:    Prepare,
			EntityName: "material",
		}),
	}
}

// Prepare normalizes m and validates the result.
func Prepare(m *Material) (*Material, error) {
	if m == nil {
		return nil, errNilMaterial
	}
	n := Normalize(*m)
	if err := Validate(n); err != nil {
		return nil, err
	}
	return &n, nil
}
