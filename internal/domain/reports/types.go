// Package reports computes coverage statistics over the historical and
// confirmed inventories. Read-only; it never writes to the tables it reads.
package reports

// Filter narrows statistics to a project, branch and/or area. All fields are
// optional and combine with AND semantics.
type Filter struct {
	ProjectCode *string
	BranchCode  *string
	AreaCode    *string
}

// Stats is the coverage summary for one filter scope. JSON names match what
// the dashboard consumes.
type Stats struct {
	// LegacyTotal is the number of historical rows in scope.
	LegacyTotal int64 `json:"inventarioAnterior"`

	// ReconciledCount is the number of historical rows already found and
	// stamped with a generated asset-file code.
	ReconciledCount int64 `json:"inventarioActual"`

	// MissingCount = LegacyTotal - ReconciledCount, clamped at zero.
	MissingCount int64 `json:"faltantes"`

	// CoveragePercent = round(ReconciledCount / LegacyTotal * 100), 0 when
	// there are no historical rows in scope.
	CoveragePercent int `json:"avance"`

	// SurplusCount is the number of confirmed registrations without a
	// historical origin.
	SurplusCount int64 `json:"sobrantes"`

	// TotalCurrent = ReconciledCount + SurplusCount.
	TotalCurrent int64 `json:"total"`
}

// GroupedStats is one group row of a grouped statistics report. Exactly one
// of the key fields is set, matching the requested grouping.
type GroupedStats struct {
	Project string `json:"proyecto,omitempty"`
	Branch  string `json:"sucursal,omitempty"`
	Area    string `json:"area,omitempty"`
	Stats
}

// GroupBy selects the grouping dimension of a statistics report.
type GroupBy string

const (
	GroupByProject GroupBy = "proyecto"
	GroupByBranch  GroupBy = "sucursal"
	GroupByArea    GroupBy = "area"
)

// Valid reports whether the grouping is supported.
func (g GroupBy) Valid() bool {
	switch g {
	case GroupByProject, GroupByBranch, GroupByArea:
		return true
	}
	return false
}
