// Package catalog_repo provides PostgreSQL implementations for catalog repositories.
// Reads are plain SELECTs; writes go through one st_manage_* procedure per table.
package catalog_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"woodshop/internal/core/apperror"
	"woodshop/internal/core/entity"
	"woodshop/internal/domain"
	"woodshop/internal/infrastructure/storage/postgres"
)

var tracer = otel.Tracer("woodshop/catalog_repo")

// likeEscaper makes a search term match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BaseCatalogRepo provides the listing, lookup and command plumbing shared
// by catalog repositories. Embed it in specific catalog repositories.
type BaseCatalogRepo[T entity.Identifiable] struct {
	conns      postgres.ConnProvider
	entityName string
	tableName  string
	selectCols []string
	searchCols []string
	procedure  string
	newFn      func() T
	bind       func(params *postgres.ProcParams, e T)
}

// BaseCatalogRepoConfig describes one catalog table and its write procedure.
type BaseCatalogRepoConfig[T entity.Identifiable] struct {
	Conns      postgres.ConnProvider
	EntityName string
	TableName  string
	SelectCols []string
	SearchCols []string
	Procedure  string
	NewFn      func() T

	// Bind adds the entity's mutable fields to a Create or Update call.
	Bind func(params *postgres.ProcParams, e T)
}

// NewBaseCatalogRepo creates a new base catalog repository.
func NewBaseCatalogRepo[T entity.Identifiable](cfg BaseCatalogRepoConfig[T]) *BaseCatalogRepo[T] {
	return &BaseCatalogRepo[T]{
		conns:      cfg.Conns,
		entityName: cfg.EntityName,
		tableName:  cfg.TableName,
		selectCols: cfg.SelectCols,
		searchCols: cfg.SearchCols,
		procedure:  cfg.Procedure,
		newFn:      cfg.NewFn,
		bind:       cfg.Bind,
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *BaseCatalogRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *BaseCatalogRepo[T]) acquire(ctx context.Context) (postgres.Conn, error) {
	conn, err := r.conns.Acquire(ctx)
	if err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return conn, nil
}

// listPredicate is shared by the count and page queries so both see the same rows.
func (r *BaseCatalogRepo[T]) listPredicate(search string) squirrel.Sqlizer {
	pred := squirrel.And{squirrel.Eq{"active": true}}
	if search == "" || len(r.searchCols) == 0 {
		return pred
	}

	pattern := "%" + likeEscaper.Replace(search) + "%"
	anyCol := make(squirrel.Or, 0, len(r.searchCols))
	for _, col := range r.searchCols {
		anyCol = append(anyCol, squirrel.ILike{col: pattern})
	}
	return append(pred, anyCol)
}

func (r *BaseCatalogRepo[T]) countQuery(req domain.PageRequest) squirrel.SelectBuilder {
	return r.Builder().
		Select("COUNT(*)").
		From(r.tableName).
		Where(r.listPredicate(req.Search()))
}

func (r *BaseCatalogRepo[T]) pageQuery(req domain.PageRequest) squirrel.SelectBuilder {
	req.Validate()
	return r.Builder().
		Select(r.selectCols...).
		From(r.tableName).
		Where(r.listPredicate(req.Search())).
		OrderBy("name ASC", "id ASC").
		Limit(uint64(req.PageSize)).
		Offset(uint64(req.Offset()))
}

func (r *BaseCatalogRepo[T]) byIDQuery(id int) squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(r.tableName).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"active": true})
}

// List retrieves one page of active entities matching the search term.
func (r *BaseCatalogRepo[T]) List(ctx context.Context, req domain.PageRequest) (domain.PageResult[T], error) {
	req.Validate()

	countSQL, countArgs, err := r.countQuery(req).ToSql()
	if err != nil {
		return domain.PageResult[T]{}, fmt.Errorf("build count query: %w", err)
	}
	pageSQL, pageArgs, err := r.pageQuery(req).ToSql()
	if err != nil {
		return domain.PageResult[T]{}, fmt.Errorf("build page query: %w", err)
	}

	conn, err := r.acquire(ctx)
	if err != nil {
		return domain.PageResult[T]{}, err
	}
	defer conn.Release()

	var total int
	if err := conn.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.PageResult[T]{}, apperror.NewDatabase(fmt.Errorf("count %s: %w", r.tableName, err))
	}

	items := make([]T, 0)
	if total > 0 {
		if err := pgxscan.Select(ctx, conn, &items, pageSQL, pageArgs...); err != nil {
			return domain.PageResult[T]{}, apperror.NewDatabase(fmt.Errorf("list %s: %w", r.tableName, err))
		}
	}

	return domain.NewPageResult(items, total, req), nil
}

// GetByID retrieves an active entity by id.
func (r *BaseCatalogRepo[T]) GetByID(ctx context.Context, id int) (T, bool, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	defer conn.Release()

	return r.getOne(ctx, conn, id)
}

// getOne loads a single active row on an already acquired connection.
func (r *BaseCatalogRepo[T]) getOne(ctx context.Context, q postgres.Querier, id int) (T, bool, error) {
	var zero T

	sql, args, err := r.byIDQuery(id).ToSql()
	if err != nil {
		return zero, false, fmt.Errorf("build query: %w", err)
	}

	e := r.newFn()
	if err := pgxscan.Get(ctx, q, e, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return zero, false, nil
		}
		return zero, false, apperror.NewDatabase(fmt.Errorf("get %s %d: %w", r.tableName, id, err))
	}
	return e, true, nil
}

// command is a write request in typed form. Its action becomes the
// procedure's discriminator only inside execute.
type command[T any] struct {
	action domain.Action
	id     int
	entity T
}

// Create inserts a new entity.
func (r *BaseCatalogRepo[T]) Create(ctx context.Context, e T) domain.CreateResult {
	return r.execute(ctx, command[T]{action: domain.ActionCreate, entity: e})
}

// Update replaces all mutable fields of an existing entity.
func (r *BaseCatalogRepo[T]) Update(ctx context.Context, e T) domain.OperationResult {
	return r.execute(ctx, command[T]{action: domain.ActionUpdate, id: e.GetID(), entity: e}).OperationResult
}

// Delete marks an entity inactive.
func (r *BaseCatalogRepo[T]) Delete(ctx context.Context, id int) domain.OperationResult {
	return r.execute(ctx, command[T]{action: domain.ActionDelete, id: id}).OperationResult
}

// execute calls the write procedure for cmd. Every failure, including
// connection errors, is reported through the result.
func (r *BaseCatalogRepo[T]) execute(ctx context.Context, cmd command[T]) (res domain.CreateResult) {
	ctx, span := tracer.Start(ctx, "CALL "+r.procedure,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation", "CALL"),
			attribute.String("woodshop.entity", r.entityName),
			attribute.String("woodshop.action", cmd.action.String()),
		),
	)
	defer func() {
		span.SetAttributes(attribute.String("woodshop.outcome", res.ErrorCode.String()))
		if res.ErrorCode == domain.CodeStoreError {
			span.SetStatus(codes.Error, res.Message)
		}
		span.End()
		observeOutcome(r.entityName, cmd.action, res.ErrorCode)
	}()

	params := postgres.NewProcParams().Add("p_action", cmd.action.String())
	if cmd.action != domain.ActionCreate {
		params.Add("p_id", cmd.id)
	}
	if cmd.action != domain.ActionDelete {
		r.bind(params, cmd.entity)
	}

	conn, err := r.conns.Acquire(ctx)
	if err != nil {
		return domain.StoreFailed(err)
	}
	defer conn.Release()

	raw, err := postgres.CallProcedure(ctx, conn, r.procedure, params)
	if err != nil {
		return domain.StoreFailed(err)
	}
	return domain.DecodeOutcome(r.entityName, cmd.action, raw)
}
