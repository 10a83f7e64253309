package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"patrimonio/internal/core/id"
	"patrimonio/internal/domain"
	"patrimonio/internal/domain/orgunit"
	"patrimonio/internal/infrastructure/storage/postgres"
)

const areaTable = "areas"

// AreaRepo implements orgunit.AreaRepository.
type AreaRepo struct {
	*postgres.BaseRepo[*orgunit.Area]
}

var _ orgunit.AreaRepository = (*AreaRepo)(nil)

// NewAreaRepo creates a new area repository.
func NewAreaRepo(txManager *postgres.TxManager) *AreaRepo {
	return &AreaRepo{
		BaseRepo: postgres.NewBaseRepo(
			txManager,
			areaTable,
			[]string{"cod_area", "area", "cod_responsable"},
			"cod_area ASC",
			func() *orgunit.Area { return &orgunit.Area{} },
		),
	}
}

// GetByCode retrieves an area by its generated code.
func (r *AreaRepo) GetByCode(ctx context.Context, code string) (*orgunit.Area, error) {
	return r.GetByColumn(ctx, "cod_area", code)
}

// CountByBranch counts areas under one branch.
func (r *AreaRepo) CountByBranch(ctx context.Context, branchID id.ID) (int64, error) {
	return r.Count(ctx, r.Builder().
		Select("COUNT(*)").
		From(areaTable).
		Where(squirrel.Eq{"cod_sucursal": branchID}))
}

// CountAll counts every area.
func (r *AreaRepo) CountAll(ctx context.Context) (int64, error) {
	return r.Count(ctx, r.Builder().
		Select("COUNT(*)").
		From(areaTable))
}

// List retrieves areas, optionally scoped to a project or branch.
func (r *AreaRepo) List(ctx context.Context, filter orgunit.AreaFilter) (*domain.ListResult[*orgunit.Area], error) {
	q := r.BaseSelect()
	if filter.ProjectID != nil {
		q = q.Where(squirrel.Eq{"cod_proyecto": *filter.ProjectID})
	}
	if filter.BranchID != nil {
		q = q.Where(squirrel.Eq{"cod_sucursal": *filter.BranchID})
	}
	return r.FindList(ctx, q, filter.ListFilter)
}
