package orgunit

import (
	"context"
	"time"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/id"
	"patrimonio/internal/core/sequence"
	"patrimonio/internal/core/tx"
	"patrimonio/internal/domain"
	"patrimonio/pkg/logger"
)

// Service provides catalog management for projects, branches, areas and
// responsibles. Code generation counts siblings inside the creation
// transaction so two concurrent creates under the same parent cannot
// produce the same code.
type Service struct {
	projects     ProjectRepository
	branches     BranchRepository
	areas        AreaRepository
	responsibles ResponsibleRepository
	txManager    tx.Manager
}

// NewService creates a new orgunit service.
func NewService(
	projects ProjectRepository,
	branches BranchRepository,
	areas AreaRepository,
	responsibles ResponsibleRepository,
	txManager tx.Manager,
) *Service {
	return &Service{
		projects:     projects,
		branches:     branches,
		areas:        areas,
		responsibles: responsibles,
		txManager:    txManager,
	}
}

// CreateProject registers a project. The code comes from the business and
// must be unique.
func (s *Service) CreateProject(ctx context.Context, p *Project) error {
	if id.IsNil(p.ID) {
		p.ID = id.New()
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	if p.Status == "" {
		p.Status = ProjectRunning
	}
	if err := p.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.projects.GetByCode(ctx, p.Code)
		if err != nil && !apperror.IsNotFound(err) {
			return err
		}
		if existing != nil {
			return apperror.NewDuplicate("proyecto", "cod_proyecto", p.Code)
		}
		if err := s.projects.Create(ctx, p); err != nil {
			return err
		}
		logger.Info(ctx, "project created", "project_id", p.ID, "cod_proyecto", p.Code)
		return nil
	})
}

// UpdateProject updates an existing project. Changing the code re-checks
// uniqueness.
func (s *Service) UpdateProject(ctx context.Context, p *Project) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.projects.GetByID(ctx, p.ID)
		if err != nil {
			return err
		}
		if p.Code != current.Code {
			other, err := s.projects.GetByCode(ctx, p.Code)
			if err != nil && !apperror.IsNotFound(err) {
				return err
			}
			if other != nil {
				return apperror.NewDuplicate("proyecto", "cod_proyecto", p.Code)
			}
		}
		p.CreatedAt = current.CreatedAt
		p.UpdatedAt = time.Now().UTC()
		return s.projects.Update(ctx, p)
	})
}

// GetProject returns a project by id.
func (s *Service) GetProject(ctx context.Context, projectID id.ID) (*Project, error) {
	return s.projects.GetByID(ctx, projectID)
}

// ListProjects lists projects with search and paging.
func (s *Service) ListProjects(ctx context.Context, filter domain.ListFilter) (*domain.ListResult[*Project], error) {
	filter.Normalize()
	return s.projects.List(ctx, filter)
}

// DeleteProject removes a project.
func (s *Service) DeleteProject(ctx context.Context, projectID id.ID) error {
	return s.projects.Delete(ctx, projectID)
}

// CreateBranch registers a branch under a project. cod_sucursal is the
// project code plus the per-project ordinal, cod_responsable is R plus
// the global branch count.
func (s *Service) CreateBranch(ctx context.Context, b *Branch) error {
	if b.Name == "" {
		return apperror.NewValidation("nombre_sucursal es requerido")
	}
	if b.Department == "" || b.Province == "" || b.District == "" {
		return apperror.NewValidation("departamento, provincia y distrito son requeridos")
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		project, err := s.projects.GetByID(ctx, b.ProjectID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewInvalidReference("proyecto", b.ProjectID.String())
			}
			return err
		}

		inProject, err := s.branches.CountByProject(ctx, project.ID)
		if err != nil {
			return err
		}
		total, err := s.branches.CountAll(ctx)
		if err != nil {
			return err
		}

		if id.IsNil(b.ID) {
			b.ID = id.New()
		}
		b.Code = sequence.ChildCode(project.Code, int(inProject))
		b.ResponsibleCode = sequence.ResponsibleCode(int(total))
		now := time.Now().UTC()
		b.CreatedAt, b.UpdatedAt = now, now

		if err := s.branches.Create(ctx, b); err != nil {
			return err
		}
		logger.Info(ctx, "branch created",
			"branch_id", b.ID, "cod_sucursal", b.Code, "cod_responsable", b.ResponsibleCode)
		return nil
	})
}

// UpdateBranch updates branch contact data. Generated codes are immutable.
func (s *Service) UpdateBranch(ctx context.Context, b *Branch) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.branches.GetByID(ctx, b.ID)
		if err != nil {
			return err
		}
		b.ProjectID = current.ProjectID
		b.Code = current.Code
		b.ResponsibleCode = current.ResponsibleCode
		b.CreatedAt = current.CreatedAt
		b.UpdatedAt = time.Now().UTC()
		return s.branches.Update(ctx, b)
	})
}

// GetBranch returns a branch by id.
func (s *Service) GetBranch(ctx context.Context, branchID id.ID) (*Branch, error) {
	return s.branches.GetByID(ctx, branchID)
}

// ListBranches lists branches, optionally scoped to a project.
func (s *Service) ListBranches(ctx context.Context, filter BranchFilter) (*domain.ListResult[*Branch], error) {
	filter.Normalize()
	return s.branches.List(ctx, filter)
}

// DeleteBranch removes a branch.
func (s *Service) DeleteBranch(ctx context.Context, branchID id.ID) error {
	return s.branches.Delete(ctx, branchID)
}

// CreateArea registers an area under a branch. cod_area is the branch
// code plus the per-branch ordinal, cod_responsable is R plus the global
// area count.
func (s *Service) CreateArea(ctx context.Context, a *Area) error {
	if a.Name == "" {
		return apperror.NewValidation("area es requerida")
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		branch, err := s.branches.GetByID(ctx, a.BranchID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewInvalidReference("sucursal", a.BranchID.String())
			}
			return err
		}

		inBranch, err := s.areas.CountByBranch(ctx, branch.ID)
		if err != nil {
			return err
		}
		total, err := s.areas.CountAll(ctx)
		if err != nil {
			return err
		}

		if id.IsNil(a.ID) {
			a.ID = id.New()
		}
		a.ProjectID = branch.ProjectID
		a.Code = sequence.ChildCode(branch.Code, int(inBranch))
		a.ResponsibleCode = sequence.ResponsibleCode(int(total))
		now := time.Now().UTC()
		a.CreatedAt, a.UpdatedAt = now, now

		if err := s.areas.Create(ctx, a); err != nil {
			return err
		}
		logger.Info(ctx, "area created",
			"area_id", a.ID, "cod_area", a.Code, "cod_responsable", a.ResponsibleCode)
		return nil
	})
}

// UpdateArea updates area contact data. Generated codes are immutable.
func (s *Service) UpdateArea(ctx context.Context, a *Area) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.areas.GetByID(ctx, a.ID)
		if err != nil {
			return err
		}
		a.ProjectID = current.ProjectID
		a.BranchID = current.BranchID
		a.Code = current.Code
		a.ResponsibleCode = current.ResponsibleCode
		a.CreatedAt = current.CreatedAt
		a.UpdatedAt = time.Now().UTC()
		return s.areas.Update(ctx, a)
	})
}

// GetArea returns an area by id.
func (s *Service) GetArea(ctx context.Context, areaID id.ID) (*Area, error) {
	return s.areas.GetByID(ctx, areaID)
}

// ListAreas lists areas, optionally scoped to a project or branch.
func (s *Service) ListAreas(ctx context.Context, filter AreaFilter) (*domain.ListResult[*Area], error) {
	filter.Normalize()
	return s.areas.List(ctx, filter)
}

// DeleteArea removes an area.
func (s *Service) DeleteArea(ctx context.Context, areaID id.ID) error {
	return s.areas.Delete(ctx, areaID)
}

// CreateResponsible registers a responsible for an area. The code is the
// area code plus the per-area ordinal.
func (s *Service) CreateResponsible(ctx context.Context, r *Responsible) error {
	if err := r.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		area, err := s.areas.GetByID(ctx, r.AreaID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewInvalidReference("area", r.AreaID.String())
			}
			return err
		}

		inArea, err := s.responsibles.CountByArea(ctx, area.ID)
		if err != nil {
			return err
		}

		if id.IsNil(r.ID) {
			r.ID = id.New()
		}
		r.Code = sequence.ChildCode(area.Code, int(inArea))
		now := time.Now().UTC()
		r.CreatedAt, r.UpdatedAt = now, now

		if err := s.responsibles.Create(ctx, r); err != nil {
			return err
		}
		logger.Info(ctx, "responsible created", "responsible_id", r.ID, "cod_responsable", r.Code)
		return nil
	})
}

// UpdateResponsible updates editable responsible fields. Code, area and
// DNI are immutable.
func (s *Service) UpdateResponsible(ctx context.Context, r *Responsible) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		current, err := s.responsibles.GetByID(ctx, r.ID)
		if err != nil {
			return err
		}
		r.AreaID = current.AreaID
		r.Code = current.Code
		r.DNI = current.DNI
		r.CreatedAt = current.CreatedAt
		r.UpdatedAt = time.Now().UTC()
		if err := r.Validate(ctx); err != nil {
			return err
		}
		return s.responsibles.Update(ctx, r)
	})
}

// GetResponsible returns a responsible by id.
func (s *Service) GetResponsible(ctx context.Context, responsibleID id.ID) (*Responsible, error) {
	return s.responsibles.GetByID(ctx, responsibleID)
}

// ListResponsibles lists responsibles, optionally scoped to an area.
func (s *Service) ListResponsibles(ctx context.Context, filter ResponsibleFilter) (*domain.ListResult[*Responsible], error) {
	filter.Normalize()
	return s.responsibles.List(ctx, filter)
}

// DeleteResponsible removes a responsible.
func (s *Service) DeleteResponsible(ctx context.Context, responsibleID id.ID) error {
	return s.responsibles.Delete(ctx, responsibleID)
}
