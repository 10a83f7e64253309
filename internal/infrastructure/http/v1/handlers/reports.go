package handlers

import (
	"github.com/gin-gonic/gin"

	"patrimonio/internal/core/apperror"
	appctx "patrimonio/internal/core/context"
	"patrimonio/internal/domain/reports"
	"patrimonio/internal/infrastructure/http/v1/dto"
)

// ReportsHandler serves coverage statistics.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// Statistics returns coverage totals, flat or grouped by agruparPor.
// Registrars only ever see the project they are pinned to.
// GET /api/reportes/estadisticas
func (h *ReportsHandler) Statistics(c *gin.Context) {
	var req dto.StatsFilter
	if !h.BindQuery(c, &req) {
		return
	}

	ctx := c.Request.Context()
	filter := req.ToFilter()
	if appctx.HasRole(ctx, appctx.RoleRegistrador) {
		if project := appctx.GetProjectID(ctx); project != "" {
			filter.ProjectCode = &project
		}
	}

	if req.GroupBy == nil {
		stats, err := h.service.GetStatistics(ctx, filter)
		if err != nil {
			h.Error(c, err)
			return
		}
		h.OK(c, stats)
		return
	}

	groupBy := reports.GroupBy(*req.GroupBy)
	if !groupBy.Valid() {
		h.Error(c, apperror.NewValidation("agruparPor inválido").WithDetail("agruparPor", *req.GroupBy))
		return
	}

	var (
		grouped []reports.GroupedStats
		err     error
	)
	switch groupBy {
	case reports.GroupByProject:
		grouped, err = h.service.GetStatisticsByProject(ctx, filter.ProjectCode)
	case reports.GroupByBranch:
		grouped, err = h.service.GetStatisticsByBranch(ctx, filter.ProjectCode)
	case reports.GroupByArea:
		grouped, err = h.service.GetStatisticsByArea(ctx, filter.ProjectCode, filter.BranchCode)
	}
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewStatsGroupedResponse(grouped))
}
