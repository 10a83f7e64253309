// Package orgunit manages the organizational catalog: projects, their
// branches and areas, and the responsibles assigned to each area. Branch,
// area and responsible codes are derived from the parent's code plus a
// per-parent counter.
package orgunit

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/entity"
	"patrimonio/internal/core/id"
)

// ProjectStatus describes the contractual situation of a project.
type ProjectStatus string

const (
	ProjectRunning   ProjectStatus = "En ejecución"
	ProjectSuspended ProjectStatus = "Suspendido"
	ProjectFinished  ProjectStatus = "Terminado"
)

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectRunning, ProjectSuspended, ProjectFinished:
		return true
	}
	return false
}

// ResponsibleRole is the job title of an asset responsible.
type ResponsibleRole string

const (
	RoleLogisticsChief    ResponsibleRole = "Jefe Logistica"
	RoleAssetControlChief ResponsibleRole = "Jefe Control Patrimonial"
	RoleAccountingChief   ResponsibleRole = "Jefe Contabilidad"
	RoleBranchManager     ResponsibleRole = "Administrador de Agencia"
)

// Valid reports whether r is a known responsible role.
func (r ResponsibleRole) Valid() bool {
	switch r {
	case RoleLogisticsChief, RoleAssetControlChief, RoleAccountingChief, RoleBranchManager:
		return true
	}
	return false
}

// Project is a client engagement under which inventories are taken.
// The project code is assigned by the business, not generated.
type Project struct {
	entity.Base

	Code        string        `db:"cod_proyecto" json:"cod_proyecto"`
	Company     string        `db:"empresa" json:"empresa"`
	LegalName   string        `db:"razon_social" json:"razon_social"`
	Industry    string        `db:"rubro" json:"rubro"`
	Logo        *string       `db:"logo" json:"logo,omitempty"`
	StartedAt   time.Time     `db:"inicio_proyecto" json:"inicio_proyecto"`
	ContractAt  time.Time     `db:"firma_contrato" json:"firma_contrato"`
	ContractEnd time.Time     `db:"fecha_fin_contrato" json:"fecha_fin_contrato"`
	PlannedEnd  time.Time     `db:"fin_proyectado" json:"fin_proyectado"`
	ActualEnd   *time.Time    `db:"fin_real" json:"fin_real,omitempty"`
	Status      ProjectStatus `db:"situacion" json:"situacion"`
}

// Validate checks required project fields.
func (p *Project) Validate(ctx context.Context) error {
	if p.Code == "" {
		return apperror.NewValidation("cod_proyecto es requerido")
	}
	if p.Company == "" || p.LegalName == "" {
		return apperror.NewValidation("empresa y razon_social son requeridos")
	}
	if !p.Status.Valid() {
		return apperror.NewValidation("situación de proyecto desconocida").
			WithDetail("situacion", string(p.Status))
	}
	return nil
}

// Branch is a physical site of a project. Its code and its responsible
// code are generated at creation time.
type Branch struct {
	entity.Base

	ProjectID       id.ID            `db:"cod_proyecto" json:"cod_proyecto"`
	Code            string           `db:"cod_sucursal" json:"cod_sucursal"`
	Name            string           `db:"nombre_sucursal" json:"nombre_sucursal"`
	Department      string           `db:"departamento" json:"departamento"`
	Province        string           `db:"provincia" json:"provincia"`
	District        string           `db:"distrito" json:"distrito"`
	ResponsibleCode string           `db:"cod_responsable" json:"cod_responsable"`
	Address         *string          `db:"direccion" json:"direccion,omitempty"`
	Phone           *string          `db:"telefono" json:"telefono,omitempty"`
	Lat             *decimal.Decimal `db:"latitud" json:"latitud,omitempty"`
	Lng             *decimal.Decimal `db:"longitud" json:"longitud,omitempty"`
}

// Area is a functional unit inside a branch.
type Area struct {
	entity.Base

	ProjectID       id.ID   `db:"cod_proyecto" json:"cod_proyecto"`
	BranchID        id.ID   `db:"cod_sucursal" json:"cod_sucursal"`
	Code            string  `db:"cod_area" json:"cod_area"`
	Name            string  `db:"area" json:"area"`
	ResponsibleCode string  `db:"cod_responsable" json:"cod_responsable"`
	Phone           *string `db:"telefono" json:"telefono,omitempty"`
	Extension       *string `db:"anexo" json:"anexo,omitempty"`
}

// Responsible is the person accountable for the assets of an area.
type Responsible struct {
	entity.Base

	AreaID id.ID           `db:"area_uuid" json:"area_uuid"`
	Code   string          `db:"cod_responsable" json:"cod_responsable"`
	DNI    string          `db:"dni" json:"dni"`
	Role   ResponsibleRole `db:"cargo" json:"cargo"`
	Name   string          `db:"nombre" json:"nombre"`
	Email  *string         `db:"correo" json:"correo,omitempty"`
	Phone  *string         `db:"telefono" json:"telefono,omitempty"`
}

// Validate checks required responsible fields. DNI is the Peruvian
// national identifier, always 8 digits.
func (r *Responsible) Validate(ctx context.Context) error {
	if len(r.DNI) != 8 {
		return apperror.NewValidation("dni debe tener 8 dígitos").WithDetail("dni", r.DNI)
	}
	if r.Name == "" {
		return apperror.NewValidation("nombre es requerido")
	}
	if !r.Role.Valid() {
		return apperror.NewValidation("cargo desconocido").WithDetail("cargo", string(r.Role))
	}
	return nil
}
