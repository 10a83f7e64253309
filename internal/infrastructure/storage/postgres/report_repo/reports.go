// Package report_repo provides the PostgreSQL read-side for coverage
// statistics. Everything here is plain counting; no rows are ever written.
package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"patrimonio/internal/domain/reports"
	"patrimonio/internal/infrastructure/storage/postgres"
)

const (
	legacyTable = "inventario"
	assetTable  = "inventario_nuevo"
)

// ReportsRepo implements reports.Repository.
type ReportsRepo struct {
	txManager *postgres.TxManager
}

var _ reports.Repository = (*ReportsRepo)(nil)

// NewReportsRepo creates a new statistics repository.
func NewReportsRepo(txManager *postgres.TxManager) *ReportsRepo {
	return &ReportsRepo{txManager: txManager}
}

func (r *ReportsRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func scopeWhere(q squirrel.SelectBuilder, f reports.Filter) squirrel.SelectBuilder {
	if f.ProjectCode != nil {
		q = q.Where(squirrel.Eq{"cod_proyecto": *f.ProjectCode})
	}
	if f.BranchCode != nil {
		q = q.Where(squirrel.Eq{"cod_sucursal": *f.BranchCode})
	}
	if f.AreaCode != nil {
		q = q.Where(squirrel.Eq{"cod_area": *f.AreaCode})
	}
	return q
}

func (r *ReportsRepo) count(ctx context.Context, q squirrel.SelectBuilder) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int64
	if err := r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// CountLegacy counts historical rows in scope.
func (r *ReportsRepo) CountLegacy(ctx context.Context, f reports.Filter) (int64, error) {
	q := scopeWhere(r.builder().Select("COUNT(*)").From(legacyTable), f)
	return r.count(ctx, q)
}

// CountReconciled counts historical rows in scope already found and stamped
// with a generated asset-file code.
func (r *ReportsRepo) CountReconciled(ctx context.Context, f reports.Filter) (int64, error) {
	q := scopeWhere(r.builder().Select("COUNT(*)").From(legacyTable), f).
		Where(squirrel.Eq{"encontrado": true}).
		Where("cod_af_inventario IS NOT NULL")
	return r.count(ctx, q)
}

// CountSurplus counts confirmed registrations in scope without a historical
// origin.
func (r *ReportsRepo) CountSurplus(ctx context.Context, f reports.Filter) (int64, error) {
	q := scopeWhere(r.builder().Select("COUNT(*)").From(assetTable), f).
		Where("inventario_origen_id IS NULL")
	return r.count(ctx, q)
}

// DistinctProjects returns project codes present in the historical inventory,
// optionally narrowed to a single project.
func (r *ReportsRepo) DistinctProjects(ctx context.Context, projectCode *string) ([]string, error) {
	q := r.builder().
		Select("DISTINCT cod_proyecto").
		From(legacyTable).
		Where("cod_proyecto IS NOT NULL").
		OrderBy("cod_proyecto ASC")
	if projectCode != nil {
		q = q.Where(squirrel.Eq{"cod_proyecto": *projectCode})
	}
	return r.distinct(ctx, q)
}

// DistinctBranches returns branch codes present in the historical inventory,
// optionally within one project.
func (r *ReportsRepo) DistinctBranches(ctx context.Context, projectCode *string) ([]string, error) {
	q := r.builder().
		Select("DISTINCT cod_sucursal").
		From(legacyTable).
		Where("cod_sucursal IS NOT NULL").
		OrderBy("cod_sucursal ASC")
	if projectCode != nil {
		q = q.Where(squirrel.Eq{"cod_proyecto": *projectCode})
	}
	return r.distinct(ctx, q)
}

// DistinctAreas returns area codes present in the historical inventory,
// optionally within one project and branch.
func (r *ReportsRepo) DistinctAreas(ctx context.Context, projectCode, branchCode *string) ([]string, error) {
	q := r.builder().
		Select("DISTINCT cod_area").
		From(legacyTable).
		Where("cod_area IS NOT NULL").
		OrderBy("cod_area ASC")
	if projectCode != nil {
		q = q.Where(squirrel.Eq{"cod_proyecto": *projectCode})
	}
	if branchCode != nil {
		q = q.Where(squirrel.Eq{"cod_sucursal": *branchCode})
	}
	return r.distinct(ctx, q)
}

func (r *ReportsRepo) distinct(ctx context.Context, q squirrel.SelectBuilder) ([]string, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build distinct query: %w", err)
	}

	rows, err := r.txManager.GetQuerier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("distinct: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan distinct value: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
