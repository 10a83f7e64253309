package asset

import (
	"context"

	"patrimonio/internal/core/id"
	"patrimonio/internal/domain"
)

// Repository defines storage operations for confirmed asset registrations and
// their type-specific attribute rows.
type Repository interface {
	Create(ctx context.Context, a *Asset) error
	Update(ctx context.Context, a *Asset) error
	GetByID(ctx context.Context, assetID id.ID) (*Asset, error)
	Delete(ctx context.Context, assetID id.ID) error

	// SaveDetails upserts the attribute row of the given category for an
	// asset. The three physical tables are selected by the category tag.
	SaveDetails(ctx context.Context, assetID id.ID, category Category, details *Details) error

	// GetDetails loads the attribute row matching the category, or nil when
	// none exists.
	GetDetails(ctx context.Context, assetID id.ID, category Category) (*Details, error)

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Asset], error)
}

// Origin is the slice of a historical inventory row the engine needs for
// reconciliation: identity plus the category to inherit when the input leaves
// it unset.
type Origin struct {
	ID       id.ID
	Category *Category
}

// OriginStore is the engine's view of the historical inventory.
// The full model lives in the legacy package; its repository implements this.
type OriginStore interface {
	// GetOrigin returns the referenced historical row, or a not-found error.
	GetOrigin(ctx context.Context, originID id.ID) (*Origin, error)

	// MarkReconciled sets the found flag and stamps the generated
	// asset-file code on the historical row.
	MarkReconciled(ctx context.Context, originID id.ID, assetFileCode string) error
}

// ListFilter narrows confirmed registration listings.
type ListFilter struct {
	domain.ListFilter

	ProjectCode *string
	BranchCode  *string
	AreaCode    *string
	Category    *Category
	SurplusOnly bool
}
