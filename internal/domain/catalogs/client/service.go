package client

import (
	"woodshop/internal/domain"
)

// Service provides business logic for the Client catalog.
// Uses composition with domain.CatalogService for the common operations.
type Service struct {
	*domain.CatalogService[*Client]
}

// NewService creates a new Client service.
func NewService(repo Repository) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Client]{
			Repo:       repo,
			Prepare:    Prepare,
			EntityName: "client",
		}),
	}
}

// Prepare normalizes c and validates the result. Create and Update both use it.
func Prepare(c *Client) (*Client, error) {
	if c == nil {
		return nil, errNilClient
	}
	n := Normalize(*c)
	if err := Validate(n); err != nil {
		return nil, err
	}
	return &n, nil
}
