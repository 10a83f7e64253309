package handlers

import (
	"github.com/gin-gonic/gin"

	"patrimonio/internal/domain/legacy"
	"patrimonio/internal/infrastructure/http/v1/dto"
)

// LegacyHandler serves the historical inventory (read-only).
type LegacyHandler struct {
	*BaseHandler
	service *legacy.Service
}

// NewLegacyHandler creates a new legacy inventory handler.
func NewLegacyHandler(base *BaseHandler, service *legacy.Service) *LegacyHandler {
	return &LegacyHandler{BaseHandler: base, service: service}
}

// List returns historical rows with filtering and pagination.
// GET /api/inventario
func (h *LegacyHandler) List(c *gin.Context) {
	var filter dto.LegacyListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	result, err := h.service.List(c.Request.Context(), filter.ToFilter())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewListResponse(result))
}

// Get returns one historical row by id.
// GET /api/inventario/:id
func (h *LegacyHandler) Get(c *gin.Context) {
	assetID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), assetID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, a)
}

// GetByPatrimonialCode looks up the row behind a scanned code.
// GET /api/inventario/codigo/:codPatrimonial
func (h *LegacyHandler) GetByPatrimonialCode(c *gin.Context) {
	a, err := h.service.GetByPatrimonialCode(c.Request.Context(), c.Param("codPatrimonial"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, a)
}
