package dto

import "patrimonio/internal/domain/reports"

// StatsFilter narrows coverage statistics and optionally groups them.
type StatsFilter struct {
	ProjectCode *string `form:"proyectoId"`
	BranchCode  *string `form:"sucursalId"`
	AreaCode    *string `form:"areaId"`
	GroupBy     *string `form:"agruparPor"`
}

// ToFilter converts query parameters into the domain filter.
func (f *StatsFilter) ToFilter() reports.Filter {
	return reports.Filter{
		ProjectCode: f.ProjectCode,
		BranchCode:  f.BranchCode,
		AreaCode:    f.AreaCode,
	}
}

// StatsGroupedResponse wraps grouped statistics. Flat statistics are returned
// as a bare object; only the grouped form carries this envelope.
type StatsGroupedResponse struct {
	Estadisticas []reports.GroupedStats `json:"estadisticas"`
}

// NewStatsGroupedResponse builds the envelope. Estadisticas is never null.
func NewStatsGroupedResponse(grouped []reports.GroupedStats) StatsGroupedResponse {
	if grouped == nil {
		grouped = []reports.GroupedStats{}
	}
	return StatsGroupedResponse{Estadisticas: grouped}
}
