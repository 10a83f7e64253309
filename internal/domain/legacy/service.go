package legacy

import (
	"context"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/id"
	"patrimonio/internal/domain"
)

// Service exposes read access to the historical inventory. Field clients use
// it to look up the row behind a scanned patrimonial code before registering.
type Service struct {
	repo Repository
}

// NewService creates a new legacy inventory service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByID retrieves a historical row by id.
func (s *Service) GetByID(ctx context.Context, assetID id.ID) (*Asset, error) {
	return s.repo.GetByID(ctx, assetID)
}

// GetByPatrimonialCode retrieves a historical row by its scanned code.
func (s *Service) GetByPatrimonialCode(ctx context.Context, code string) (*Asset, error) {
	if code == "" {
		return nil, apperror.NewValidation("cod_patrimonial es requerido")
	}
	return s.repo.GetByPatrimonialCode(ctx, code)
}

// List retrieves historical rows with filtering and pagination.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Asset], error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}
