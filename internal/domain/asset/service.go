package asset

import (
	"context"
	"fmt"
	"time"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/id"
	"patrimonio/internal/core/sequence"
	"patrimonio/internal/core/tx"
	"patrimonio/internal/domain"
	"patrimonio/internal/domain/audit"
	"patrimonio/pkg/logger"
)

// Service is the reconciliation engine: the single write path for confirmed
// registrations, their attribute rows, the origin flag on historical rows and
// the GPS audit trail. Every multi-table operation runs in one transaction.
type Service struct {
	repo      Repository
	origins   OriginStore
	auditRepo audit.Repository
	seq       sequence.Generator
	txManager tx.Manager

	now func() time.Time
}

// NewService creates a new reconciliation service.
func NewService(
	repo Repository,
	origins OriginStore,
	auditRepo audit.Repository,
	seq sequence.Generator,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		origins:   origins,
		auditRepo: auditRepo,
		seq:       seq,
		txManager: txManager,
		now:       time.Now,
	}
}

// RegisterFromExisting registers an asset confirmed in the field. When the
// input references a historical inventory row, the row is marked as found and
// stamped with the generated asset-file code; without a reference the asset is
// recorded as surplus. Codes, attribute row, origin flag and audit entry are
// written atomically.
func (s *Service) RegisterFromExisting(ctx context.Context, in RegisterInput, actingUserID id.ID) (*Asset, error) {
	if err := in.Validate(ctx); err != nil {
		return nil, err
	}

	var created *Asset
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var origin *Origin
		if in.OriginID != nil {
			o, err := s.origins.GetOrigin(ctx, *in.OriginID)
			if err != nil {
				if apperror.IsNotFound(err) {
					return apperror.NewInvalidReference("inventario origen", in.OriginID.String())
				}
				return fmt.Errorf("get origin: %w", err)
			}
			origin = o
		}

		category := in.Category
		if category == nil && origin != nil {
			category = origin.Category
		}
		if category == nil {
			return apperror.NewValidation("tipo_activo_fijo es requerido cuando no se especifica inventario de origen")
		}

		day := s.now()
		assetFileCode, err := s.seq.NextAssetFileCode(ctx, day)
		if err != nil {
			return fmt.Errorf("generate asset-file code: %w", err)
		}
		tagCode, err := s.seq.NextTagCode(ctx, day)
		if err != nil {
			return fmt.Errorf("generate tag code: %w", err)
		}

		registration := RegistrationReconciled
		a := &Asset{
			ID:              id.New(),
			ProjectCode:     in.ProjectCode,
			BranchCode:      in.BranchCode,
			AreaCode:        in.AreaCode,
			AssetFileCode:   &assetFileCode,
			PatrimonialCode: in.PatrimonialCode,
			TagCode:         &tagCode,
			Description:     in.Description,
			Category:        category,
			Condition:       in.Condition,
			ResponsibleCode: in.ResponsibleCode,
			Composite:       in.Composite,
			CompositeDetail: in.CompositeDetail,
			Notes:           in.Notes,
			CreatedBy:       actingUserID,
			OriginID:        in.OriginID,
			Registration:    &registration,
			CreatedAt:       day.UTC(),
		}

		if err := s.repo.Create(ctx, a); err != nil {
			return fmt.Errorf("create asset: %w", err)
		}

		if in.Details.For(*category) != nil {
			if err := s.repo.SaveDetails(ctx, a.ID, *category, &in.Details); err != nil {
				return fmt.Errorf("save details: %w", err)
			}
			a.Details = detailsFor(*category, in.Details)
		}

		if origin != nil {
			if err := s.origins.MarkReconciled(ctx, origin.ID, assetFileCode); err != nil {
				return fmt.Errorf("mark origin reconciled: %w", err)
			}
		}

		if err := s.auditRepo.Append(ctx, s.auditEntry(a.ID, actingUserID, in.Location)); err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}

		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "asset registered",
		"id", created.ID,
		"cod_etiqueta", *created.TagCode,
		"cod_af_inventario", *created.AssetFileCode,
		"origen", in.OriginID,
	)
	return created, nil
}

// UpdateFromExisting corrects a previously submitted registration. Mutable
// fields are overwritten, the attribute row is upserted, and a new audit entry
// is appended. The generated codes are never altered.
func (s *Service) UpdateFromExisting(ctx context.Context, assetID id.ID, in RegisterInput, actingUserID id.ID) (*Asset, error) {
	if err := in.Validate(ctx); err != nil {
		return nil, err
	}

	var updated *Asset
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		a, err := s.repo.GetByID(ctx, assetID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewInvalidReference("inventario nuevo", assetID.String())
			}
			return fmt.Errorf("get asset: %w", err)
		}

		if in.OriginID != nil {
			if _, err := s.origins.GetOrigin(ctx, *in.OriginID); err != nil {
				if apperror.IsNotFound(err) {
					return apperror.NewInvalidReference("inventario origen", in.OriginID.String())
				}
				return fmt.Errorf("get origin: %w", err)
			}
		}

		in.ApplyTo(a)
		if err := s.repo.Update(ctx, a); err != nil {
			return fmt.Errorf("update asset: %w", err)
		}

		category := in.Category
		if category == nil {
			category = a.Category
		}
		if category != nil && in.Details.For(*category) != nil {
			if err := s.repo.SaveDetails(ctx, a.ID, *category, &in.Details); err != nil {
				return fmt.Errorf("save details: %w", err)
			}
			a.Details = detailsFor(*category, in.Details)
		}

		if err := s.auditRepo.Append(ctx, s.auditEntry(a.ID, actingUserID, in.Location)); err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}

		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "asset updated", "id", updated.ID, "cod_etiqueta", updated.TagCode)
	return updated, nil
}

// GetByID retrieves a registration with its attribute row.
func (s *Service) GetByID(ctx context.Context, assetID id.ID) (*Asset, error) {
	a, err := s.repo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if a.Category != nil {
		details, err := s.repo.GetDetails(ctx, assetID, *a.Category)
		if err != nil {
			return nil, fmt.Errorf("get details: %w", err)
		}
		a.Details = details
	}
	return a, nil
}

// List retrieves registrations with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Asset], error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

// Delete removes a registration. Attribute rows go with it via cascade.
func (s *Service) Delete(ctx context.Context, assetID id.ID) error {
	if _, err := s.repo.GetByID(ctx, assetID); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, assetID)
	})
}

func (s *Service) auditEntry(assetID, userID id.ID, loc Location) *audit.Entry {
	e := &audit.Entry{
		ID:        id.New(),
		AssetID:   assetID,
		UserID:    userID,
		Lat:       loc.Lat,
		Lng:       loc.Lng,
		Timestamp: s.now().UTC(),
	}
	if loc.DeviceInfo != nil {
		e.DeviceInfo = audit.DeviceInfo{"info": *loc.DeviceInfo}
	}
	return e
}

func detailsFor(c Category, d Details) *Details {
	out := &Details{}
	switch c {
	case CategoryFurniture:
		out.Furniture = d.Furniture
	case CategoryComputer:
		out.Computer = d.Computer
	case CategoryVehicle:
		out.Vehicle = d.Vehicle
	}
	return out
}
