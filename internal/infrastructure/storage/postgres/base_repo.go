package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/entity"
	"patrimonio/internal/core/id"
	"patrimonio/internal/domain"
)

// BaseRepo provides common CRUD operations driven by the entity's "db"
// tags. Embed it in concrete repositories and add the queries the entity
// needs on top.
type BaseRepo[T any] struct {
	txManager    *TxManager
	tableName    string
	selectCols   []string
	searchCols   []string
	defaultOrder string
	newFn        func() T
}

// NewBaseRepo creates a base repository for one table. searchCols are the
// columns matched by the free-text search filter, defaultOrder is used
// when a listing does not ask for an explicit order.
func NewBaseRepo[T any](
	txManager *TxManager,
	tableName string,
	searchCols []string,
	defaultOrder string,
	newFn func() T,
) *BaseRepo[T] {
	return &BaseRepo[T]{
		txManager:    txManager,
		tableName:    tableName,
		selectCols:   ExtractDBColumns[T](),
		searchCols:   searchCols,
		defaultOrder: defaultOrder,
		newFn:        newFn,
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *BaseRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Querier returns the active transaction or the pool.
func (r *BaseRepo[T]) Querier(ctx context.Context) Querier {
	return r.txManager.GetQuerier(ctx)
}

// BaseSelect creates a SELECT over all tagged columns.
func (r *BaseRepo[T]) BaseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(r.tableName)
}

// Create inserts a new entity using its "db" tags. Entities implementing
// entity.Validatable are validated before the insert.
func (r *BaseRepo[T]) Create(ctx context.Context, ent T) error {
	if v, ok := any(ent).(entity.Validatable); ok {
		if err := v.Validate(ctx); err != nil {
			return err
		}
	}

	data := StructToMap(ent)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	sql, args, err := r.Builder().
		Insert(r.tableName).
		SetMap(filteredData).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("registro duplicado").
				WithDetail("entity", r.tableName).
				WithCause(err)
		}
		return fmt.Errorf("insert %s: %w", r.tableName, err)
	}

	return nil
}

// Update rewrites all tagged columns of an existing row, matched by id.
func (r *BaseRepo[T]) Update(ctx context.Context, ent T) error {
	data := StructToMap(ent)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	entityID, ok := data["id"]
	if !ok {
		return fmt.Errorf("entity has no 'id' field with db tag")
	}

	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if col == "id" || col == "created_at" {
			continue
		}
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	sql, args, err := r.Builder().
		Update(r.tableName).
		SetMap(filteredData).
		Where(squirrel.Eq{"id": entityID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.tableName, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, entityID)
	}

	return nil
}

// GetByID retrieves entity by ID.
func (r *BaseRepo[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"id": entityID}).
		Limit(1)
	return r.FindOne(ctx, q, entityID.String())
}

// GetByColumn retrieves the single entity matching column = value.
func (r *BaseRepo[T]) GetByColumn(ctx context.Context, column string, value any) (T, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{column: value}).
		Limit(1)
	return r.FindOne(ctx, q, fmt.Sprintf("%v", value))
}

// FindOne executes a SELECT query and returns a single entity.
func (r *BaseRepo[T]) FindOne(ctx context.Context, q squirrel.SelectBuilder, ref string) (T, error) {
	entity := r.newFn()

	sql, args, err := q.ToSql()
	if err != nil {
		return entity, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.tableName, ref)
		}
		return entity, fmt.Errorf("query %s: %w", r.tableName, err)
	}

	return entity, nil
}

// FindList counts the filtered set, then applies search, ordering and
// pagination on top of q and scans the page.
func (r *BaseRepo[T]) FindList(ctx context.Context, q squirrel.SelectBuilder, filter domain.ListFilter) (*domain.ListResult[T], error) {
	result := &domain.ListResult[T]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	if filter.Search != "" && len(r.searchCols) > 0 {
		pattern := "%" + filter.Search + "%"
		or := make(squirrel.Or, 0, len(r.searchCols))
		for _, col := range r.searchCols {
			or = append(or, squirrel.ILike{col: pattern})
		}
		q = q.Where(or)
	}

	countSQL, countArgs, err := r.Builder().
		Select("COUNT(*)").
		FromSelect(q, "sub").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count query: %w", err)
	}

	querier := r.Querier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return nil, fmt.Errorf("count %s: %w", r.tableName, err)
	}

	orderBy, err := r.parseOrderBy(filter.OrderBy)
	if err != nil {
		return nil, err
	}
	q = q.OrderBy(orderBy)

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.tableName, err)
	}

	return result, nil
}

// List retrieves entities with free-text search and pagination.
func (r *BaseRepo[T]) List(ctx context.Context, filter domain.ListFilter) (*domain.ListResult[T], error) {
	return r.FindList(ctx, r.BaseSelect(), filter)
}

// Count returns the number of rows matching q.
func (r *BaseRepo[T]) Count(ctx context.Context, q squirrel.SelectBuilder) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int64
	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.tableName, err)
	}
	return n, nil
}

// Exists checks if entity exists.
func (r *BaseRepo[T]) Exists(ctx context.Context, entityID id.ID) (bool, error) {
	sql, args, err := r.Builder().
		Select("1").
		From(r.tableName).
		Where(squirrel.Eq{"id": entityID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}

	return true, nil
}

// Delete performs physical removal from the database.
func (r *BaseRepo[T]) Delete(ctx context.Context, entityID id.ID) error {
	sql, args, err := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": entityID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		// Foreign key violation (23503)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperror.NewConflict("no se puede eliminar: el registro está referenciado por otros datos").
				WithDetail("entity", r.tableName).
				WithDetail("id", entityID.String()).
				WithCause(err)
		}
		return fmt.Errorf("execute delete %s: %w", r.tableName, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, entityID.String())
	}

	return nil
}

func (r *BaseRepo[T]) parseOrderBy(orderBy string) (string, error) {
	if orderBy == "" {
		return r.defaultOrder, nil
	}

	// "-field" orders descending
	direction := "ASC"
	field := strings.TrimSpace(orderBy)
	if strings.HasPrefix(field, "-") {
		direction = "DESC"
		field = strings.TrimPrefix(field, "-")
	} else if strings.HasPrefix(field, "+") {
		field = strings.TrimPrefix(field, "+")
	}

	for _, col := range r.selectCols {
		if col == field {
			return field + " " + direction, nil
		}
	}
	return "", apperror.NewValidation("invalid orderBy").WithDetail("orderBy", orderBy)
}
