package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"patrimonio/internal/core/id"
	"patrimonio/internal/domain/orgunit"
)

// CreateProjectRequest creates a project. The code is business-assigned.
type CreateProjectRequest struct {
	Code        string     `json:"cod_proyecto" binding:"required"`
	Company     string     `json:"empresa" binding:"required"`
	LegalName   string     `json:"razon_social" binding:"required"`
	Industry    string     `json:"rubro"`
	Logo        *string    `json:"logo"`
	StartedAt   time.Time  `json:"inicio_proyecto" binding:"required"`
	ContractAt  time.Time  `json:"firma_contrato" binding:"required"`
	ContractEnd time.Time  `json:"fecha_fin_contrato" binding:"required"`
	PlannedEnd  time.Time  `json:"fin_proyectado" binding:"required"`
	ActualEnd   *time.Time `json:"fin_real"`
	Status      *string    `json:"situacion"`
}

// ToProject converts the request into a domain project.
func (r *CreateProjectRequest) ToProject() *orgunit.Project {
	p := &orgunit.Project{
		Code:        r.Code,
		Company:     r.Company,
		LegalName:   r.LegalName,
		Industry:    r.Industry,
		Logo:        r.Logo,
		StartedAt:   r.StartedAt,
		ContractAt:  r.ContractAt,
		ContractEnd: r.ContractEnd,
		PlannedEnd:  r.PlannedEnd,
		ActualEnd:   r.ActualEnd,
	}
	if r.Status != nil {
		p.Status = orgunit.ProjectStatus(*r.Status)
	}
	return p
}

// CreateBranchRequest creates a branch under a project. Branch and
// responsible codes are generated server-side.
type CreateBranchRequest struct {
	ProjectID  string           `json:"cod_proyecto" binding:"required"`
	Name       string           `json:"nombre_sucursal" binding:"required"`
	Department string           `json:"departamento" binding:"required"`
	Province   string           `json:"provincia" binding:"required"`
	District   string           `json:"distrito" binding:"required"`
	Address    *string          `json:"direccion"`
	Phone      *string          `json:"telefono"`
	Lat        *decimal.Decimal `json:"latitud"`
	Lng        *decimal.Decimal `json:"longitud"`
}

// ToBranch converts the request into a domain branch.
func (r *CreateBranchRequest) ToBranch() (*orgunit.Branch, error) {
	projectID, err := id.Parse(r.ProjectID)
	if err != nil {
		return nil, err
	}
	return &orgunit.Branch{
		ProjectID:  projectID,
		Name:       r.Name,
		Department: r.Department,
		Province:   r.Province,
		District:   r.District,
		Address:    r.Address,
		Phone:      r.Phone,
		Lat:        r.Lat,
		Lng:        r.Lng,
	}, nil
}

// CreateAreaRequest creates an area under a branch. The project is
// inherited from the branch.
type CreateAreaRequest struct {
	BranchID  string  `json:"cod_sucursal" binding:"required"`
	Name      string  `json:"area" binding:"required"`
	Phone     *string `json:"telefono"`
	Extension *string `json:"anexo"`
}

// ToArea converts the request into a domain area.
func (r *CreateAreaRequest) ToArea() (*orgunit.Area, error) {
	branchID, err := id.Parse(r.BranchID)
	if err != nil {
		return nil, err
	}
	return &orgunit.Area{
		BranchID:  branchID,
		Name:      r.Name,
		Phone:     r.Phone,
		Extension: r.Extension,
	}, nil
}

// CreateResponsibleRequest assigns a responsible to an area.
type CreateResponsibleRequest struct {
	AreaID string  `json:"area_uuid" binding:"required"`
	DNI    string  `json:"dni" binding:"required"`
	Role   string  `json:"cargo" binding:"required"`
	Name   string  `json:"nombre" binding:"required"`
	Email  *string `json:"correo"`
	Phone  *string `json:"telefono"`
}

// ToResponsible converts the request into a domain responsible.
func (r *CreateResponsibleRequest) ToResponsible() (*orgunit.Responsible, error) {
	areaID, err := id.Parse(r.AreaID)
	if err != nil {
		return nil, err
	}
	return &orgunit.Responsible{
		AreaID: areaID,
		DNI:    r.DNI,
		Role:   orgunit.ResponsibleRole(r.Role),
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
	}, nil
}

// BranchListFilter narrows branch listings.
type BranchListFilter struct {
	PaginationRequest
	Search    string  `form:"search"`
	OrderBy   string  `form:"orderBy"`
	ProjectID *string `form:"proyecto_id"`
}

// ToFilter converts query parameters into the domain filter.
func (f *BranchListFilter) ToFilter() (orgunit.BranchFilter, error) {
	out := orgunit.BranchFilter{ListFilter: f.ListFilter(f.Search, f.OrderBy)}
	if f.ProjectID != nil && *f.ProjectID != "" {
		projectID, err := id.Parse(*f.ProjectID)
		if err != nil {
			return out, err
		}
		out.ProjectID = &projectID
	}
	return out, nil
}

// AreaListFilter narrows area listings.
type AreaListFilter struct {
	PaginationRequest
	Search    string  `form:"search"`
	OrderBy   string  `form:"orderBy"`
	ProjectID *string `form:"proyecto_id"`
	BranchID  *string `form:"sucursal_id"`
}

// ToFilter converts query parameters into the domain filter.
func (f *AreaListFilter) ToFilter() (orgunit.AreaFilter, error) {
	out := orgunit.AreaFilter{ListFilter: f.ListFilter(f.Search, f.OrderBy)}
	if f.ProjectID != nil && *f.ProjectID != "" {
		projectID, err := id.Parse(*f.ProjectID)
		if err != nil {
			return out, err
		}
		out.ProjectID = &projectID
	}
	if f.BranchID != nil && *f.BranchID != "" {
		branchID, err := id.Parse(*f.BranchID)
		if err != nil {
			return out, err
		}
		out.BranchID = &branchID
	}
	return out, nil
}

// ResponsibleListFilter narrows responsible listings.
type ResponsibleListFilter struct {
	PaginationRequest
	Search  string  `form:"search"`
	OrderBy string  `form:"orderBy"`
	AreaID  *string `form:"area_id"`
}

// ToFilter converts query parameters into the domain filter.
func (f *ResponsibleListFilter) ToFilter() (orgunit.ResponsibleFilter, error) {
	out := orgunit.ResponsibleFilter{ListFilter: f.ListFilter(f.Search, f.OrderBy)}
	if f.AreaID != nil && *f.AreaID != "" {
		areaID, err := id.Parse(*f.AreaID)
		if err != nil {
			return out, err
		}
		out.AreaID = &areaID
	}
	return out, nil
}
