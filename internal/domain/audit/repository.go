package audit

import (
	"context"
	"time"

	"patrimonio/internal/core/id"
)

// Repository defines storage operations for the audit trail.
// There is deliberately no update or delete.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error

	// ListByAsset returns the full trail of an asset, newest first.
	ListByAsset(ctx context.Context, assetID id.ID) ([]*Entry, error)

	// ListByUser returns entries recorded by a user, newest first.
	// Bounds are inclusive on both ends when supplied.
	ListByUser(ctx context.Context, userID id.ID, from, to *time.Time) ([]*Entry, error)
}
