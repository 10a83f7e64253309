package orgunit

import (
	"context"

	"patrimonio/internal/core/id"
	"patrimonio/internal/domain"
)

// ProjectRepository defines storage operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, projectID id.ID) (*Project, error)
	GetByCode(ctx context.Context, code string) (*Project, error)
	List(ctx context.Context, filter domain.ListFilter) (*domain.ListResult[*Project], error)
	Delete(ctx context.Context, projectID id.ID) error
}

// BranchRepository defines storage operations for branches.
type BranchRepository interface {
	Create(ctx context.Context, b *Branch) error
	Update(ctx context.Context, b *Branch) error
	GetByID(ctx context.Context, branchID id.ID) (*Branch, error)
	GetByCode(ctx context.Context, code string) (*Branch, error)
	// CountByProject counts branches under one project, CountAll counts
	// every branch. Both feed code generation and must run inside the
	// same transaction as the insert.
	CountByProject(ctx context.Context, projectID id.ID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	List(ctx context.Context, filter BranchFilter) (*domain.ListResult[*Branch], error)
	Delete(ctx context.Context, branchID id.ID) error
}

// AreaRepository defines storage operations for areas.
type AreaRepository interface {
	Create(ctx context.Context, a *Area) error
	Update(ctx context.Context, a *Area) error
	GetByID(ctx context.Context, areaID id.ID) (*Area, error)
	GetByCode(ctx context.Context, code string) (*Area, error)
	CountByBranch(ctx context.Context, branchID id.ID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	List(ctx context.Context, filter AreaFilter) (*domain.ListResult[*Area], error)
	Delete(ctx context.Context, areaID id.ID) error
}

// ResponsibleRepository defines storage operations for responsibles.
type ResponsibleRepository interface {
	Create(ctx context.Context, r *Responsible) error
	Update(ctx context.Context, r *Responsible) error
	GetByID(ctx context.Context, responsibleID id.ID) (*Responsible, error)
	GetByCode(ctx context.Context, code string) (*Responsible, error)
	CountByArea(ctx context.Context, areaID id.ID) (int64, error)
	List(ctx context.Context, filter ResponsibleFilter) (*domain.ListResult[*Responsible], error)
	Delete(ctx context.Context, responsibleID id.ID) error
}

// BranchFilter narrows branch listings.
type BranchFilter struct {
	domain.ListFilter
	ProjectID *id.ID
}

// AreaFilter narrows area listings.
type AreaFilter struct {
	domain.ListFilter
	ProjectID *id.ID
	BranchID  *id.ID
}

// ResponsibleFilter narrows responsible listings.
type ResponsibleFilter struct {
	domain.ListFilter
	AreaID *id.ID
}
