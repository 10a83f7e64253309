package legacy

import (
	"context"

	"patrimonio/internal/core/id"
	"patrimonio/internal/domain"
)

// Repository defines storage operations for historical inventory rows.
type Repository interface {
	GetByID(ctx context.Context, assetID id.ID) (*Asset, error)
	GetByPatrimonialCode(ctx context.Context, code string) (*Asset, error)

	// MarkReconciled sets encontrado=true and stamps the generated
	// asset-file code on the row.
	MarkReconciled(ctx context.Context, assetID id.ID, assetFileCode string) error

	// BulkInsert loads imported rows. Used by the import tool only.
	BulkInsert(ctx context.Context, assets []*Asset) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Asset], error)
}

// ListFilter narrows historical inventory listings.
type ListFilter struct {
	domain.ListFilter

	ProjectCode *string
	BranchCode  *string
	AreaCode    *string
	Found       *bool
}
