package audit

import (
	"context"
	"time"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/id"
)

// Service exposes the audit trail. Most writes happen inside the
// reconciliation engine; Record covers the standalone capture endpoint.
type Service struct {
	repo Repository
}

// NewService creates a new audit service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends one GPS entry outside the registration flow.
func (s *Service) Record(ctx context.Context, entry *Entry) error {
	if id.IsNil(entry.AssetID) {
		return apperror.NewValidation("inventario_nuevo_id es requerido")
	}
	if id.IsNil(entry.UserID) {
		return apperror.NewValidation("user_id es requerido")
	}
	if id.IsNil(entry.ID) {
		entry.ID = id.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	return s.repo.Append(ctx, entry)
}

// GetByAsset returns the location history of an asset, newest first.
func (s *Service) GetByAsset(ctx context.Context, assetID id.ID) ([]*Entry, error) {
	return s.repo.ListByAsset(ctx, assetID)
}

// GetByUser returns entries recorded by a user within an optional inclusive
// date range.
func (s *Service) GetByUser(ctx context.Context, userID id.ID, from, to *time.Time) ([]*Entry, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, apperror.NewValidation("fechaHasta debe ser posterior a fechaDesde")
	}
	return s.repo.ListByUser(ctx, userID, from, to)
}
