// Package catalog_repo provides PostgreSQL implementations for the
// organizational catalog: projects, branches, areas and responsibles.
package catalog_repo

import (
	"context"

	"patrimonio/internal/domain/orgunit"
	"patrimonio/internal/infrastructure/storage/postgres"
)

const projectTable = "proyectos"

// ProjectRepo implements orgunit.ProjectRepository.
type ProjectRepo struct {
	*postgres.BaseRepo[*orgunit.Project]
}

var _ orgunit.ProjectRepository = (*ProjectRepo)(nil)

// NewProjectRepo creates a new project repository.
func NewProjectRepo(txManager *postgres.TxManager) *ProjectRepo {
	return &ProjectRepo{
		BaseRepo: postgres.NewBaseRepo(
			txManager,
			projectTable,
			[]string{"cod_proyecto", "empresa", "razon_social", "rubro"},
			"empresa ASC",
			func() *orgunit.Project { return &orgunit.Project{} },
		),
	}
}

// GetByCode retrieves a project by its business code.
func (r *ProjectRepo) GetByCode(ctx context.Context, code string) (*orgunit.Project, error) {
	return r.GetByColumn(ctx, "cod_proyecto", code)
}
