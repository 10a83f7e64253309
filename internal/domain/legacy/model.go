// Package legacy holds the historical inventory imported from the old asset
// dataset. Rows are bulk-loaded once and read-mostly afterwards: the only
// mutation the application ever performs is flagging a row as found during
// reconciliation.
package legacy

import (
	"time"

	"github.com/shopspring/decimal"

	"patrimonio/internal/core/id"
	"patrimonio/internal/domain/asset"
)

// Asset is one historical inventory row.
type Asset struct {
	ID              id.ID            `db:"id" json:"id"`
	ProjectCode     *string          `db:"cod_proyecto" json:"cod_proyecto"`
	BranchCode      *string          `db:"cod_sucursal" json:"cod_sucursal"`
	AreaCode        *string          `db:"cod_area" json:"cod_area"`
	AFCode          *string          `db:"cod_af" json:"cod_af"`
	PatrimonialCode *string          `db:"cod_patrimonial" json:"cod_patrimonial"`
	TagCode         *string          `db:"cod_etiqueta" json:"cod_etiqueta"`
	Description     *string          `db:"descripcion" json:"descripcion"`
	Category        *asset.Category  `db:"tipo_activo_fijo" json:"tipo_activo_fijo"`
	Material        *string          `db:"material" json:"material"`
	Brand           *string          `db:"marca" json:"marca"`
	Model           *string          `db:"modelo" json:"modelo"`
	Serial          *string          `db:"serie" json:"serie"`
	Color           *string          `db:"color" json:"color"`
	Length          *decimal.Decimal `db:"largo" json:"largo"`
	Width           *decimal.Decimal `db:"ancho" json:"ancho"`
	Depth           *decimal.Decimal `db:"profundo" json:"profundo"`
	Inches          *decimal.Decimal `db:"pulgadas" json:"pulgadas"`
	Condition       *asset.Condition `db:"estado" json:"estado"`
	ResponsibleCode *string          `db:"cod_responsable" json:"cod_responsable"`
	Ubication       *string          `db:"ubicacion" json:"ubicacion"`
	Composite       *bool            `db:"compuesto" json:"compuesto"`
	CompositeDetail *string          `db:"detalle_compuesto" json:"detalle_compuesto"`

	// Found is set once reconciliation links this row to a field registration.
	Found bool `db:"encontrado" json:"encontrado"`

	// AssetFileCode is stamped with the generated code of the linked
	// registration. Display-only; the authoritative link is the FK on the
	// registration side.
	AssetFileCode *string `db:"cod_af_inventario" json:"cod_af_inventario"`

	AccountingAccount *string          `db:"cta_contable" json:"cta_contable"`
	DeliveryNote      *string          `db:"guia_remision" json:"guia_remision"`
	InvoiceCode       *string          `db:"cod_factura" json:"cod_factura"`
	PurchaseDate      *time.Time       `db:"fecha_compra" json:"fecha_compra"`
	Value             *decimal.Decimal `db:"valor_activo" json:"valor_activo"`
	Notes1            *string          `db:"observaciones1" json:"observaciones1"`
	Notes2            *string          `db:"observaciones2" json:"observaciones2"`
	Notes3            *string          `db:"observaciones3" json:"observaciones3"`
	CreatedAt         time.Time        `db:"created_at" json:"created_at"`
}
