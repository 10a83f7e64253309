// Package tx defines the transaction contract domain services depend on.
// The PostgreSQL implementation lives in infrastructure/storage/postgres.
package tx

import (
	"context"
)

// Manager runs a function inside a database transaction. The transaction is
// carried in the context, so repositories called from fn join it
// transparently. Nested calls reuse the transaction already in the context.
type Manager interface {
	// RunInTransaction commits when fn returns nil and rolls back otherwise.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnlyManager extends Manager for callers that only read, such as the
// statistics reports. Writes inside ReadOnly fail at the database.
type ReadOnlyManager interface {
	Manager

	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
