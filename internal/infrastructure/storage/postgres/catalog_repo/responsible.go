package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"patrimonio/internal/core/id"
	"patrimonio/internal/domain"
	"patrimonio/internal/domain/orgunit"
	"patrimonio/internal/infrastructure/storage/postgres"
)

const responsibleTable = "responsables"

// ResponsibleRepo implements orgunit.ResponsibleRepository.
type ResponsibleRepo struct {
	*postgres.BaseRepo[*orgunit.Responsible]
}

var _ orgunit.ResponsibleRepository = (*ResponsibleRepo)(nil)

// NewResponsibleRepo creates a new responsible repository.
func NewResponsibleRepo(txManager *postgres.TxManager) *ResponsibleRepo {
	return &ResponsibleRepo{
		BaseRepo: postgres.NewBaseRepo(
			txManager,
			responsibleTable,
			[]string{"cod_responsable", "nombre", "cargo", "dni"},
			"cod_responsable ASC",
			func() *orgunit.Responsible { return &orgunit.Responsible{} },
		),
	}
}

// GetByCode retrieves a responsible by its generated code.
func (r *ResponsibleRepo) GetByCode(ctx context.Context, code string) (*orgunit.Responsible, error) {
	return r.GetByColumn(ctx, "cod_responsable", code)
}

// CountByArea counts responsibles assigned to one area.
func (r *ResponsibleRepo) CountByArea(ctx context.Context, areaID id.ID) (int64, error) {
	return r.Count(ctx, r.Builder().
		Select("COUNT(*)").
		From(responsibleTable).
		Where(squirrel.Eq{"area_uuid": areaID}))
}

// List retrieves responsibles, optionally scoped to an area.
func (r *ResponsibleRepo) List(ctx context.Context, filter orgunit.ResponsibleFilter) (*domain.ListResult[*orgunit.Responsible], error) {
	q := r.BaseSelect()
	if filter.AreaID != nil {
		q = q.Where(squirrel.Eq{"area_uuid": *filter.AreaID})
	}
	return r.FindList(ctx, q, filter.ListFilter)
}
