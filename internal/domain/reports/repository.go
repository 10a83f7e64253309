package reports

import "context"

// Repository defines the read-side counting queries behind the aggregator.
type Repository interface {
	// CountLegacy counts historical rows in scope.
	CountLegacy(ctx context.Context, f Filter) (int64, error)

	// CountReconciled counts historical rows in scope with encontrado=true
	// and a stamped asset-file code.
	CountReconciled(ctx context.Context, f Filter) (int64, error)

	// CountSurplus counts confirmed registrations in scope without a
	// historical origin.
	CountSurplus(ctx context.Context, f Filter) (int64, error)

	// Distinct values of the grouping dimensions over the historical
	// inventory, excluding NULLs. Non-nil codes narrow the scope.
	DistinctProjects(ctx context.Context, projectCode *string) ([]string, error)
	DistinctBranches(ctx context.Context, projectCode *string) ([]string, error)
	DistinctAreas(ctx context.Context, projectCode, branchCode *string) ([]string, error)
}
