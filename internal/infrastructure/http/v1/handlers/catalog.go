// Package handlers provides HTTP request handlers.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"woodshop/internal/core/apperror"
	"woodshop/internal/core/entity"
	"woodshop/internal/domain"
)

// CatalogService is the service contract the catalog handler drives.
// *domain.CatalogService and the per-entity services satisfy it.
type CatalogService[T entity.Identifiable] interface {
	List(ctx context.Context, req domain.PageRequest) (domain.PageResult[T], error)
	GetByID(ctx context.Context, id int) (T, bool, error)
	Create(ctx context.Context, e T) domain.CreateResult
	Update(ctx context.Context, e T) domain.OperationResult
	Delete(ctx context.Context, id int) domain.OperationResult
}

// CatalogHandler provides generic HTTP handlers for catalog entities.
type CatalogHandler[T entity.Identifiable, Req any] struct {
	*BaseHandler
	service    CatalogService[T]
	entityName string

	// mapRequest builds the entity from a request body; id is zero on create
	mapRequest func(req Req, id int) T
}

// CatalogHandlerConfig configures the catalog handler.
type CatalogHandlerConfig[T entity.Identifiable, Req any] struct {
	Service    CatalogService[T]
	EntityName string
	MapRequest func(req Req, id int) T
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[T entity.Identifiable, Req any](
	base *BaseHandler,
	cfg CatalogHandlerConfig[T, Req],
) *CatalogHandler[T, Req] {
	return &CatalogHandler[T, Req]{
		BaseHandler: base,
		service:     cfg.Service,
		entityName:  cfg.EntityName,
		mapRequest:  cfg.MapRequest,
	}
}

// List handles GET /{entity}?page=&pageSize=&search=.
// Out-of-range or malformed paging values fall back to defaults, never 400.
func (h *CatalogHandler[T, Req]) List(c *gin.Context) {
	req := domain.PageRequest{
		Page:       h.ParseIntQuery(c, "page", domain.DefaultPage),
		PageSize:   h.ParseIntQuery(c, "pageSize", domain.DefaultPageSize),
		SearchTerm: c.Query("search"),
	}

	result, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, result)
}

// Get handles GET /{entity}/:id.
func (h *CatalogHandler[T, Req]) Get(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	e, found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !found {
		h.Error(c, apperror.NewNotFound(h.entityName, id))
		return
	}

	h.OK(c, e)
}

// Create handles POST /{entity}.
func (h *CatalogHandler[T, Req]) Create(c *gin.Context) {
	var req Req
	if !h.BindJSON(c, &req) {
		return
	}

	res := h.service.Create(c.Request.Context(), h.mapRequest(req, 0))
	if err := res.Err(); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, res.GeneratedID, res.Message)
}

// Update handles PUT /{entity}/:id. All mutable fields are replaced.
func (h *CatalogHandler[T, Req]) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req Req
	if !h.BindJSON(c, &req) {
		return
	}

	res := h.service.Update(c.Request.Context(), h.mapRequest(req, id))
	if err := res.Err(); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, res.Message)
}

// Delete handles DELETE /{entity}/:id (soft delete).
func (h *CatalogHandler[T, Req]) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	res := h.service.Delete(c.Request.Context(), id)
	if err := res.Err(); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, res.Message)
}
