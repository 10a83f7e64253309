// Package audit implements the append-only GPS trail written on every field
// registration and correction. Entries are never updated or deleted.
package audit

import (
	"time"

	"github.com/shopspring/decimal"

	"patrimonio/internal/core/id"
)

// DeviceInfo is the free-form device metadata captured by the mobile client,
// stored as jsonb.
type DeviceInfo map[string]any

// Entry is one immutable GPS audit record.
type Entry struct {
	ID         id.ID           `db:"id" json:"id"`
	AssetID    id.ID           `db:"inventario_nuevo_id" json:"inventario_nuevo_id"`
	UserID     id.ID           `db:"user_id" json:"user_id"`
	Lat        decimal.Decimal `db:"lat" json:"lat"`
	Lng        decimal.Decimal `db:"lng" json:"lng"`
	Timestamp  time.Time       `db:"timestamp" json:"timestamp"`
	DeviceInfo DeviceInfo      `db:"device_info" json:"device_info,omitempty"`
}
