package reports

import (
	"context"
	"fmt"
	"math"

	"patrimonio/pkg/logger"
)

// Service is the reporting aggregator.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetStatistics returns flat coverage totals for the filter scope.
func (s *Service) GetStatistics(ctx context.Context, f Filter) (*Stats, error) {
	legacyTotal, err := s.repo.CountLegacy(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count legacy: %w", err)
	}

	reconciled, err := s.repo.CountReconciled(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count reconciled: %w", err)
	}

	surplus, err := s.repo.CountSurplus(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count surplus: %w", err)
	}

	missing := legacyTotal - reconciled
	if missing < 0 {
		// More reconciled rows than historical rows in scope means the
		// filter columns of a reconciled row changed after import.
		logger.Warn(ctx, "reconciled count exceeds legacy total",
			"legacy_total", legacyTotal,
			"reconciled", reconciled,
			"proyecto", f.ProjectCode,
			"sucursal", f.BranchCode,
			"area", f.AreaCode,
		)
		missing = 0
	}

	coverage := 0
	if legacyTotal > 0 {
		coverage = int(math.Round(float64(reconciled) / float64(legacyTotal) * 100))
	}

	return &Stats{
		LegacyTotal:     legacyTotal,
		ReconciledCount: reconciled,
		MissingCount:    missing,
		CoveragePercent: coverage,
		SurplusCount:    surplus,
		TotalCurrent:    reconciled + surplus,
	}, nil
}

// GetStatisticsByProject returns one stats row per distinct project. A
// non-nil projectCode restricts the grouping to that single project, which is
// how a registrar pinned to a project sees only their own row.
func (s *Service) GetStatisticsByProject(ctx context.Context, projectCode *string) ([]GroupedStats, error) {
	projects, err := s.repo.DistinctProjects(ctx, projectCode)
	if err != nil {
		return nil, fmt.Errorf("distinct projects: %w", err)
	}

	out := make([]GroupedStats, 0, len(projects))
	for _, p := range projects {
		p := p
		stats, err := s.GetStatistics(ctx, Filter{ProjectCode: &p})
		if err != nil {
			return nil, err
		}
		out = append(out, GroupedStats{Project: p, Stats: *stats})
	}
	return out, nil
}

// GetStatisticsByBranch returns one stats row per distinct branch, optionally
// scoped to a project.
func (s *Service) GetStatisticsByBranch(ctx context.Context, projectCode *string) ([]GroupedStats, error) {
	branches, err := s.repo.DistinctBranches(ctx, projectCode)
	if err != nil {
		return nil, fmt.Errorf("distinct branches: %w", err)
	}

	out := make([]GroupedStats, 0, len(branches))
	for _, b := range branches {
		b := b
		stats, err := s.GetStatistics(ctx, Filter{ProjectCode: projectCode, BranchCode: &b})
		if err != nil {
			return nil, err
		}
		out = append(out, GroupedStats{Branch: b, Stats: *stats})
	}
	return out, nil
}

// GetStatisticsByArea returns one stats row per distinct area, optionally
// scoped to a project and branch.
func (s *Service) GetStatisticsByArea(ctx context.Context, projectCode, branchCode *string) ([]GroupedStats, error) {
	areas, err := s.repo.DistinctAreas(ctx, projectCode, branchCode)
	if err != nil {
		return nil, fmt.Errorf("distinct areas: %w", err)
	}

	out := make([]GroupedStats, 0, len(areas))
	for _, a := range areas {
		a := a
		stats, err := s.GetStatistics(ctx, Filter{ProjectCode: projectCode, BranchCode: branchCode, AreaCode: &a})
		if err != nil {
			return nil, err
		}
		out = append(out, GroupedStats{Area: a, Stats: *stats})
	}
	return out, nil
}
