// Package asset implements the reconciliation core: registering assets
// confirmed in the field, linking them to the historical inventory and
// keeping their type-specific attributes consistent.
package asset

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/id"
)

// Category identifies the fixed-asset kind. Values match the legacy dataset.
type Category string

const (
	CategoryFurniture Category = "Mobiliario"
	CategoryComputer  Category = "Equipos Informaticos"
	CategoryVehicle   Category = "Vehiculos"
)

// Valid reports whether the category is one of the known kinds.
func (c Category) Valid() bool {
	switch c {
	case CategoryFurniture, CategoryComputer, CategoryVehicle:
		return true
	}
	return false
}

// Condition is the physical state reported by field staff.
type Condition string

const (
	ConditionGood     Condition = "BUENO"
	ConditionFairGood Condition = "REGULAR_BUENO"
	ConditionFairBad  Condition = "REGULAR_MALO"
	ConditionBad      Condition = "MALO"
)

// Valid reports whether the condition is a known value.
func (c Condition) Valid() bool {
	switch c {
	case ConditionGood, ConditionFairGood, ConditionFairBad, ConditionBad:
		return true
	}
	return false
}

// RegistrationKind marks how a record entered the confirmed inventory.
type RegistrationKind string

const (
	RegistrationReconciled RegistrationKind = "AF Conciliado"
	RegistrationNew        RegistrationKind = "Nuevo AF"
)

// Asset is a confirmed registration created from the field, either linked to a
// historical inventory row (reconciliation) or standalone (surplus).
// Tag code and asset-file code are generated once at creation and never change.
type Asset struct {
	ID              id.ID             `db:"id" json:"id"`
	ProjectCode     string            `db:"cod_proyecto" json:"cod_proyecto"`
	BranchCode      string            `db:"cod_sucursal" json:"cod_sucursal"`
	AreaCode        string            `db:"cod_area" json:"cod_area"`
	AssetFileCode   *string           `db:"cod_af_inventario" json:"cod_af_inventario"`
	PatrimonialCode *string           `db:"cod_patrimonial" json:"cod_patrimonial"`
	TagCode         *string           `db:"cod_etiqueta" json:"cod_etiqueta"`
	Description     string            `db:"descripcion" json:"descripcion"`
	Category        *Category         `db:"tipo_activo_fijo" json:"tipo_activo_fijo"`
	Condition       *Condition        `db:"estado" json:"estado"`
	ResponsibleCode string            `db:"cod_responsable" json:"cod_responsable"`
	Composite       *bool             `db:"compuesto" json:"compuesto"`
	CompositeDetail *string           `db:"detalle_compuesto" json:"detalle_compuesto"`
	Notes           *string           `db:"observaciones" json:"observaciones"`
	CreatedBy       id.ID             `db:"created_by" json:"created_by"`
	OriginID        *id.ID            `db:"inventario_origen_id" json:"inventario_origen_id"`
	Registration    *RegistrationKind `db:"registro_inventario" json:"registro_inventario"`
	CreatedAt       time.Time         `db:"created_at" json:"created_at"`

	// Details holds the type-specific attribute row, loaded separately.
	Details *Details `db:"-" json:"detalles,omitempty"`
}

// FurnitureFields are the attributes specific to furniture assets.
type FurnitureFields struct {
	Brand    *string          `db:"marca" json:"marca"`
	Model    *string          `db:"modelo" json:"modelo"`
	Kind     *string          `db:"tipo" json:"tipo"`
	Material *string          `db:"material" json:"material"`
	Color    *string          `db:"color" json:"color"`
	Length   *decimal.Decimal `db:"largo" json:"largo"`
	Width    *decimal.Decimal `db:"ancho" json:"ancho"`
	Height   *decimal.Decimal `db:"alto" json:"alto"`
}

// ComputerFields are the attributes specific to computer equipment.
type ComputerFields struct {
	Brand  *string `db:"marca" json:"marca"`
	Model  *string `db:"modelo" json:"modelo"`
	Kind   *string `db:"tipo" json:"tipo"`
	Serial *string `db:"serie" json:"serie"`
}

// VehicleFields are the attributes specific to vehicles.
type VehicleFields struct {
	Brand         *string `db:"marca" json:"marca"`
	Model         *string `db:"modelo" json:"modelo"`
	Kind          *string `db:"tipo" json:"tipo"`
	EngineNumber  *string `db:"numero_motor" json:"numero_motor"`
	ChassisNumber *string `db:"numero_chasis" json:"numero_chasis"`
	Plate         *string `db:"placa" json:"placa"`
	Year          *int    `db:"anio" json:"anio"`
}

// Details is a tagged union of the three type-specific attribute shapes.
// At most one member is non-nil, selected by the asset category.
type Details struct {
	Furniture *FurnitureFields `json:"mobiliario,omitempty"`
	Computer  *ComputerFields  `json:"equipos_informaticos,omitempty"`
	Vehicle   *VehicleFields   `json:"vehiculo,omitempty"`
}

// For returns the bundle matching the category, or nil when none was supplied.
func (d *Details) For(c Category) any {
	if d == nil {
		return nil
	}
	switch c {
	case CategoryFurniture:
		if d.Furniture != nil {
			return d.Furniture
		}
	case CategoryComputer:
		if d.Computer != nil {
			return d.Computer
		}
	case CategoryVehicle:
		if d.Vehicle != nil {
			return d.Vehicle
		}
	}
	return nil
}

// Location carries the GPS fix captured at registration time.
type Location struct {
	Lat        decimal.Decimal `json:"lat"`
	Lng        decimal.Decimal `json:"lng"`
	DeviceInfo *string         `json:"deviceInfo,omitempty"`
}

// RegisterInput is the validated payload for both registration and correction.
type RegisterInput struct {
	ProjectCode     string
	BranchCode      string
	AreaCode        string
	PatrimonialCode *string
	Description     string
	Category        *Category
	Condition       *Condition
	ResponsibleCode string
	Composite       *bool
	CompositeDetail *string
	Notes           *string
	OriginID        *id.ID
	Location        Location
	Details         Details
}

// Validate checks input invariants that do not require database access.
func (in *RegisterInput) Validate(ctx context.Context) error {
	if in.ProjectCode == "" {
		return apperror.NewValidation("cod_proyecto es requerido")
	}
	if in.BranchCode == "" {
		return apperror.NewValidation("cod_sucursal es requerido")
	}
	if in.AreaCode == "" {
		return apperror.NewValidation("cod_area es requerido")
	}
	if in.Description == "" {
		return apperror.NewValidation("descripcion es requerida")
	}
	if in.ResponsibleCode == "" {
		return apperror.NewValidation("cod_responsable es requerido")
	}
	if in.Category != nil && !in.Category.Valid() {
		return apperror.NewValidation("tipo_activo_fijo debe ser Mobiliario, Equipos Informaticos o Vehiculos").
			WithDetail("tipo_activo_fijo", string(*in.Category))
	}
	if in.Condition != nil && !in.Condition.Valid() {
		return apperror.NewValidation("estado debe ser BUENO, REGULAR_BUENO, REGULAR_MALO o MALO").
			WithDetail("estado", string(*in.Condition))
	}
	return nil
}

// ApplyTo copies the mutable fields onto an existing asset. Optional fields
// left empty in the input keep their stored value. The generated codes and the
// origin link are never touched.
func (in *RegisterInput) ApplyTo(a *Asset) {
	a.ProjectCode = in.ProjectCode
	a.BranchCode = in.BranchCode
	a.AreaCode = in.AreaCode
	a.Description = in.Description
	a.ResponsibleCode = in.ResponsibleCode
	if in.PatrimonialCode != nil {
		a.PatrimonialCode = in.PatrimonialCode
	}
	if in.Category != nil {
		a.Category = in.Category
	}
	if in.Condition != nil {
		a.Condition = in.Condition
	}
	if in.Composite != nil {
		a.Composite = in.Composite
	}
	if in.CompositeDetail != nil {
		a.CompositeDetail = in.CompositeDetail
	}
	if in.Notes != nil {
		a.Notes = in.Notes
	}
}
