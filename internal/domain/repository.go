// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"woodshop/internal/core/entity"
)

// CatalogRepository defines the data-access contract shared by catalog entities.
type CatalogRepository[T entity.Identifiable] interface {
	// List returns one page of active rows matching the request.
	List(ctx context.Context, req PageRequest) (PageResult[T], error)

	// GetByID returns the active row with the given id.
	// A missing or inactive row is reported as found=false, not as an error.
	GetByID(ctx context.Context, id int) (T, bool, error)

	// Create, Update and Delete report store outcomes as results, never as errors.
	Create(ctx context.Context, entity T) CreateResult
	Update(ctx context.Context, entity T) OperationResult

	// Delete marks the row inactive.
	Delete(ctx context.Context, id int) OperationResult
}
