package domain

import (
	"context"
	"fmt"
	"reflect"

	"woodshop/internal/core/entity"
	"woodshop/pkg/logger"
)

// PrepareFunc normalizes an entity and validates the normalized copy.
// It must not mutate its argument.
type PrepareFunc[T any] func(entity T) (T, error)

// CatalogService runs input preparation in front of a CatalogRepository.
// Create and Update share the same PrepareFunc.
type CatalogService[T entity.Identifiable] struct {
	repo       CatalogRepository[T]
	prepare    PrepareFunc[T]
	entityName string
}

// CatalogServiceConfig configures the catalog service.
type CatalogServiceConfig[T entity.Identifiable] struct {
	Repo       CatalogRepository[T]
	Prepare    PrepareFunc[T]
	EntityName string
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T entity.Identifiable](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	prepare := cfg.Prepare
	if prepare == nil {
		prepare = func(e T) (T, error) { return e, nil }
	}
	return &CatalogService[T]{
		repo:       cfg.Repo,
		prepare:    prepare,
		entityName: cfg.EntityName,
	}
}

// List returns one page; the request is clamped before the repository sees it.
func (s *CatalogService[T]) List(ctx context.Context, req PageRequest) (PageResult[T], error) {
	return s.repo.List(ctx, req.Normalized())
}

// GetByID retrieves an active entity.
func (s *CatalogService[T]) GetByID(ctx context.Context, id int) (T, bool, error) {
	if id <= 0 {
		var zero T
		return zero, false, nil
	}
	return s.repo.GetByID(ctx, id)
}

// Create prepares the entity and forwards it to the repository.
func (s *CatalogService[T]) Create(ctx context.Context, e T) CreateResult {
	logger.Info(ctx, "create requested", "entity", s.entityName)

	if isNil(e) {
		return CreateFailed(s.missing())
	}

	prepared, err := s.prepare(e)
	if err != nil {
		logger.Warn(ctx, "create rejected", "entity", s.entityName, "reason", err.Error())
		return CreateFailed(Rejected(err))
	}

	res := s.repo.Create(ctx, prepared)
	s.logOutcome(ctx, ActionCreate, res.OperationResult, "id", res.GeneratedID)
	return res
}

// Update prepares the entity and forwards it to the repository.
func (s *CatalogService[T]) Update(ctx context.Context, e T) OperationResult {
	if isNil(e) {
		return s.missing()
	}

	id := e.GetID()
	logger.Info(ctx, "update requested", "entity", s.entityName, "id", id)

	if id <= 0 {
		return ValidationFailure(fmt.Sprintf("invalid %s id", s.entityName))
	}

	prepared, err := s.prepare(e)
	if err != nil {
		logger.Warn(ctx, "update rejected", "entity", s.entityName, "id", id, "reason", err.Error())
		return Rejected(err)
	}

	res := s.repo.Update(ctx, prepared)
	s.logOutcome(ctx, ActionUpdate, res, "id", id)
	return res
}

// Delete marks the entity inactive.
func (s *CatalogService[T]) Delete(ctx context.Context, id int) OperationResult {
	logger.Info(ctx, "delete requested", "entity", s.entityName, "id", id)

	if id <= 0 {
		return ValidationFailure(fmt.Sprintf("invalid %s id", s.entityName))
	}

	res := s.repo.Delete(ctx, id)
	s.logOutcome(ctx, ActionDelete, res, "id", id)
	return res
}

func (s *CatalogService[T]) missing() OperationResult {
	return ValidationFailure(fmt.Sprintf("%s is required", s.entityName))
}

// isNil reports a nil interface or a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (s *CatalogService[T]) logOutcome(ctx context.Context, action Action, res OperationResult, kv ...any) {
	fields := append([]any{"entity", s.entityName, "action", action.String(), "code", res.ErrorCode.String()}, kv...)
	switch res.ErrorCode {
	case CodeOK:
		logger.Info(ctx, "command succeeded", fields...)
	case CodeStoreError:
		logger.Error(ctx, "command failed", append(fields, "message", res.Message)...)
	default:
		logger.Warn(ctx, "command refused", append(fields, "message", res.Message)...)
	}
}
