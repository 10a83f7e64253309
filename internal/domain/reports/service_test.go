package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounts struct {
	legacy     int64
	reconciled int64
	surplus    int64
}

type fakeRepo struct {
	// counts per project code; empty key is the unfiltered scope
	byProject map[string]fakeCounts
	projects  []string
	branches  []string
	areas     []string
}

func (r *fakeRepo) scope(f Filter) string {
	if f.ProjectCode != nil {
		return *f.ProjectCode
	}
	return ""
}

func (r *fakeRepo) CountLegacy(ctx context.Context, f Filter) (int64, error) {
	return r.byProject[r.scope(f)].legacy, nil
}

func (r *fakeRepo) CountReconciled(ctx context.Context, f Filter) (int64, error) {
	return r.byProject[r.scope(f)].reconciled, nil
}

func (r *fakeRepo) CountSurplus(ctx context.Context, f Filter) (int64, error) {
	return r.byProject[r.scope(f)].surplus, nil
}

func (r *fakeRepo) DistinctProjects(ctx context.Context, projectCode *string) ([]string, error) {
	if projectCode == nil {
		return r.projects, nil
	}
	for _, p := range r.projects {
		if p == *projectCode {
			return []string{p}, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) DistinctBranches(ctx context.Context, projectCode *string) ([]string, error) {
	return r.branches, nil
}

func (r *fakeRepo) DistinctAreas(ctx context.Context, projectCode, branchCode *string) ([]string, error) {
	return r.areas, nil
}

func TestGetStatistics_CoverageMath(t *testing.T) {
	svc := NewService(&fakeRepo{
		byProject: map[string]fakeCounts{
			"": {legacy: 50, reconciled: 37, surplus: 5},
		},
	})

	stats, err := svc.GetStatistics(context.Background(), Filter{})
	require.NoError(t, err)

	assert.Equal(t, int64(50), stats.LegacyTotal)
	assert.Equal(t, int64(37), stats.ReconciledCount)
	assert.Equal(t, int64(13), stats.MissingCount)
	assert.Equal(t, 74, stats.CoveragePercent)
	assert.Equal(t, int64(5), stats.SurplusCount)
	assert.Equal(t, int64(42), stats.TotalCurrent)
}

func TestGetStatistics_EmptyScope(t *testing.T) {
	svc := NewService(&fakeRepo{byProject: map[string]fakeCounts{}})

	stats, err := svc.GetStatistics(context.Background(), Filter{})
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.LegacyTotal)
	assert.Equal(t, 0, stats.CoveragePercent)
	assert.Equal(t, int64(0), stats.MissingCount)
}

func TestGetStatistics_ClampsNegativeMissing(t *testing.T) {
	// a reconciled row whose filter columns changed after import can push
	// the reconciled count above the legacy total
	svc := NewService(&fakeRepo{
		byProject: map[string]fakeCounts{
			"": {legacy: 10, reconciled: 12, surplus: 0},
		},
	})

	stats, err := svc.GetStatistics(context.Background(), Filter{})
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.MissingCount)
	assert.Equal(t, 120, stats.CoveragePercent)
}

func TestGetStatistics_RoundsCoverage(t *testing.T) {
	svc := NewService(&fakeRepo{
		byProject: map[string]fakeCounts{
			"": {legacy: 3, reconciled: 1},
		},
	})

	stats, err := svc.GetStatistics(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Equal(t, 33, stats.CoveragePercent)
}

func TestGetStatisticsByProject(t *testing.T) {
	svc := NewService(&fakeRepo{
		byProject: map[string]fakeCounts{
			"PRY-001": {legacy: 20, reconciled: 10, surplus: 2},
			"PRY-002": {legacy: 8, reconciled: 8, surplus: 0},
		},
		projects: []string{"PRY-001", "PRY-002"},
	})

	grouped, err := svc.GetStatisticsByProject(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, grouped, 2)

	assert.Equal(t, "PRY-001", grouped[0].Project)
	assert.Equal(t, 50, grouped[0].CoveragePercent)
	assert.Equal(t, "PRY-002", grouped[1].Project)
	assert.Equal(t, 100, grouped[1].CoveragePercent)
	assert.Equal(t, int64(0), grouped[1].MissingCount)
}

func TestGetStatisticsByProject_ScopedToSingleProject(t *testing.T) {
	// a registrar pinned to a project must only ever see their own group
	svc := NewService(&fakeRepo{
		byProject: map[string]fakeCounts{
			"PRY-001": {legacy: 20, reconciled: 10, surplus: 2},
			"PRY-002": {legacy: 8, reconciled: 8, surplus: 0},
		},
		projects: []string{"PRY-001", "PRY-002"},
	})

	pinned := "PRY-001"
	grouped, err := svc.GetStatisticsByProject(context.Background(), &pinned)
	require.NoError(t, err)
	require.Len(t, grouped, 1)

	assert.Equal(t, "PRY-001", grouped[0].Project)
	assert.Equal(t, 50, grouped[0].CoveragePercent)
}
