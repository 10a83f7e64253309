package dto

import (
	"github.com/shopspring/decimal"

	"patrimonio/internal/core/id"
	"patrimonio/internal/domain/asset"
)

// LocationData carries the GPS fix captured by the mobile client.
type LocationData struct {
	Lat        decimal.Decimal `json:"lat" binding:"required"`
	Lng        decimal.Decimal `json:"lng" binding:"required"`
	DeviceInfo *string         `json:"deviceInfo"`
}

// FurnitureFields mirrors the mobiliario attribute bundle.
type FurnitureFields struct {
	Brand    *string          `json:"marca"`
	Model    *string          `json:"modelo"`
	Kind     *string          `json:"tipo"`
	Material *string          `json:"material"`
	Color    *string          `json:"color"`
	Length   *decimal.Decimal `json:"largo"`
	Width    *decimal.Decimal `json:"ancho"`
	Height   *decimal.Decimal `json:"alto"`
}

// ComputerFields mirrors the equipos informaticos attribute bundle.
type ComputerFields struct {
	Brand  *string `json:"marca"`
	Model  *string `json:"modelo"`
	Kind   *string `json:"tipo"`
	Serial *string `json:"serie"`
}

// VehicleFields mirrors the vehiculos attribute bundle.
type VehicleFields struct {
	Brand         *string `json:"marca"`
	Model         *string `json:"modelo"`
	Kind          *string `json:"tipo"`
	EngineNumber  *string `json:"numero_motor"`
	ChassisNumber *string `json:"numero_chasis"`
	Plate         *string `json:"placa"`
	Year          *int    `json:"anio"`
}

// RegisterFromExistingRequest is the payload for registering an asset found
// in the field, optionally linked to a historical inventory row. The same
// shape serves the correction endpoint.
type RegisterFromExistingRequest struct {
	ProjectCode     string  `json:"cod_proyecto" binding:"required"`
	BranchCode      string  `json:"cod_sucursal" binding:"required"`
	AreaCode        string  `json:"cod_area" binding:"required"`
	PatrimonialCode *string `json:"cod_patrimonial"`
	Description     string  `json:"descripcion" binding:"required"`
	Category        *string `json:"tipo_activo_fijo"`
	Condition       *string `json:"estado"`
	ResponsibleCode string  `json:"cod_responsable" binding:"required"`
	Composite       *bool   `json:"compuesto"`
	CompositeDetail *string `json:"detalle_compuesto"`
	Notes           *string `json:"observaciones"`
	OriginID        *string `json:"inventario_origen_id"`

	Location LocationData `json:"location" binding:"required"`

	Furniture *FurnitureFields `json:"mobiliario_fields"`
	Computer  *ComputerFields  `json:"equipos_informaticos_fields"`
	Vehicle   *VehicleFields   `json:"vehiculos_fields"`
}

// ToInput converts the request into the domain input.
func (r *RegisterFromExistingRequest) ToInput() (*asset.RegisterInput, error) {
	in := &asset.RegisterInput{
		ProjectCode:     r.ProjectCode,
		BranchCode:      r.BranchCode,
		AreaCode:        r.AreaCode,
		PatrimonialCode: r.PatrimonialCode,
		Description:     r.Description,
		ResponsibleCode: r.ResponsibleCode,
		Composite:       r.Composite,
		CompositeDetail: r.CompositeDetail,
		Notes:           r.Notes,
		Location: asset.Location{
			Lat:        r.Location.Lat,
			Lng:        r.Location.Lng,
			DeviceInfo: r.Location.DeviceInfo,
		},
	}

	if r.Category != nil {
		c := asset.Category(*r.Category)
		in.Category = &c
	}
	if r.Condition != nil {
		c := asset.Condition(*r.Condition)
		in.Condition = &c
	}
	if r.OriginID != nil && *r.OriginID != "" {
		originID, err := id.Parse(*r.OriginID)
		if err != nil {
			return nil, err
		}
		in.OriginID = &originID
	}

	if r.Furniture != nil {
		in.Details.Furniture = &asset.FurnitureFields{
			Brand:    r.Furniture.Brand,
			Model:    r.Furniture.Model,
			Kind:     r.Furniture.Kind,
			Material: r.Furniture.Material,
			Color:    r.Furniture.Color,
			Length:   r.Furniture.Length,
			Width:    r.Furniture.Width,
			Height:   r.Furniture.Height,
		}
	}
	if r.Computer != nil {
		in.Details.Computer = &asset.ComputerFields{
			Brand:  r.Computer.Brand,
			Model:  r.Computer.Model,
			Kind:   r.Computer.Kind,
			Serial: r.Computer.Serial,
		}
	}
	if r.Vehicle != nil {
		in.Details.Vehicle = &asset.VehicleFields{
			Brand:         r.Vehicle.Brand,
			Model:         r.Vehicle.Model,
			Kind:          r.Vehicle.Kind,
			EngineNumber:  r.Vehicle.EngineNumber,
			ChassisNumber: r.Vehicle.ChassisNumber,
			Plate:         r.Vehicle.Plate,
			Year:          r.Vehicle.Year,
		}
	}

	return in, nil
}

// AssetResponse wraps one confirmed registration.
type AssetResponse struct {
	Message    string       `json:"message"`
	Inventario *asset.Asset `json:"inventario"`
}

// AssetListFilter narrows registration listings.
type AssetListFilter struct {
	PaginationRequest
	Search      string  `form:"search"`
	OrderBy     string  `form:"orderBy"`
	ProjectCode *string `form:"proyecto"`
	BranchCode  *string `form:"sucursal"`
	AreaCode    *string `form:"area"`
	Category    *string `form:"tipo_activo_fijo"`
	SurplusOnly bool    `form:"sobrantes"`
}

// ToFilter converts query parameters into the domain filter.
func (f *AssetListFilter) ToFilter() asset.ListFilter {
	out := asset.ListFilter{
		ListFilter:  f.ListFilter(f.Search, f.OrderBy),
		ProjectCode: f.ProjectCode,
		BranchCode:  f.BranchCode,
		AreaCode:    f.AreaCode,
		SurplusOnly: f.SurplusOnly,
	}
	if f.Category != nil {
		c := asset.Category(*f.Category)
		out.Category = &c
	}
	return out
}
