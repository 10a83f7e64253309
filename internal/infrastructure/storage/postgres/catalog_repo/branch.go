package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"patrimonio/internal/core/id"
	"patrimonio/internal/domain"
	"patrimonio/internal/domain/orgunit"
	"patrimonio/internal/infrastructure/storage/postgres"
)

const branchTable = "sucursales"

// BranchRepo implements orgunit.BranchRepository.
type BranchRepo struct {
	*postgres.BaseRepo[*orgunit.Branch]
}

var _ orgunit.BranchRepository = (*BranchRepo)(nil)

// NewBranchRepo creates a new branch repository.
func NewBranchRepo(txManager *postgres.TxManager) *BranchRepo {
	return &BranchRepo{
		BaseRepo: postgres.NewBaseRepo(
			txManager,
			branchTable,
			[]string{"cod_sucursal", "nombre_sucursal", "distrito", "cod_responsable"},
			"cod_sucursal ASC",
			func() *orgunit.Branch { return &orgunit.Branch{} },
		),
	}
}

// GetByCode retrieves a branch by its generated code.
func (r *BranchRepo) GetByCode(ctx context.Context, code string) (*orgunit.Branch, error) {
	return r.GetByColumn(ctx, "cod_sucursal", code)
}

// CountByProject counts branches under one project.
func (r *BranchRepo) CountByProject(ctx context.Context, projectID id.ID) (int64, error) {
	return r.Count(ctx, r.Builder().
		Select("COUNT(*)").
		From(branchTable).
		Where(squirrel.Eq{"cod_proyecto": projectID}))
}

// CountAll counts every branch.
func (r *BranchRepo) CountAll(ctx context.Context) (int64, error) {
	return r.Count(ctx, r.Builder().
		Select("COUNT(*)").
		From(branchTable))
}

// List retrieves branches, optionally scoped to a project.
func (r *BranchRepo) List(ctx context.Context, filter orgunit.BranchFilter) (*domain.ListResult[*orgunit.Branch], error) {
	q := r.BaseSelect()
	if filter.ProjectID != nil {
		q = q.Where(squirrel.Eq{"cod_proyecto": *filter.ProjectID})
	}
	return r.FindList(ctx, q, filter.ListFilter)
}
