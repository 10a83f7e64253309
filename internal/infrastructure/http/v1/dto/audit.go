package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"patrimonio/internal/core/id"
	"patrimonio/internal/domain/audit"
)

// CreateAuditEntryRequest records one standalone GPS capture.
type CreateAuditEntryRequest struct {
	AssetID    string          `json:"inventario_nuevo_id" binding:"required"`
	Lat        decimal.Decimal `json:"lat" binding:"required"`
	Lng        decimal.Decimal `json:"lng" binding:"required"`
	DeviceInfo *string         `json:"deviceInfo"`
}

// ToEntry converts the request into a domain entry for the given user.
func (r *CreateAuditEntryRequest) ToEntry(userID id.ID) (*audit.Entry, error) {
	assetID, err := id.Parse(r.AssetID)
	if err != nil {
		return nil, err
	}

	entry := &audit.Entry{
		AssetID: assetID,
		UserID:  userID,
		Lat:     r.Lat,
		Lng:     r.Lng,
	}
	if r.DeviceInfo != nil {
		entry.DeviceInfo = audit.DeviceInfo{"info": *r.DeviceInfo}
	}
	return entry, nil
}

// AuditRangeFilter bounds a per-user audit listing. Dates are inclusive.
type AuditRangeFilter struct {
	From *time.Time `form:"fechaDesde" time_format:"2006-01-02"`
	To   *time.Time `form:"fechaHasta" time_format:"2006-01-02"`
}

// AuditListResponse wraps an audit listing.
type AuditListResponse struct {
	Total     int            `json:"total"`
	Registros []*audit.Entry `json:"registros"`
}

// NewAuditListResponse builds the listing envelope. Registros is never null.
func NewAuditListResponse(entries []*audit.Entry) AuditListResponse {
	if entries == nil {
		entries = []*audit.Entry{}
	}
	return AuditListResponse{Total: len(entries), Registros: entries}
}

// Bounds returns the range with fechaHasta pushed to the end of its day, so
// a date-only upper bound covers the whole day.
func (f *AuditRangeFilter) Bounds() (*time.Time, *time.Time) {
	to := f.To
	if to != nil {
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		to = &endOfDay
	}
	return f.From, to
}
