package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patrimonio/internal/domain/audit"
	"patrimonio/internal/infrastructure/http/v1/dto"
)

// AuditHandler serves the GPS audit trail.
type AuditHandler struct {
	*BaseHandler
	service *audit.Service
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(base *BaseHandler, service *audit.Service) *AuditHandler {
	return &AuditHandler{BaseHandler: base, service: service}
}

// Record captures one location entry outside the registration flow.
// POST /api/auditoria/ubicacion
func (h *AuditHandler) Record(c *gin.Context) {
	var req dto.CreateAuditEntryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	userID, ok := h.GetUserID(c)
	if !ok {
		return
	}

	entry, err := req.ToEntry(userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Record(c.Request.Context(), entry); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListByUser returns entries recorded by a user, optionally date-bounded.
// GET /api/auditoria/ubicacion/user/:userId?fechaDesde&fechaHasta
func (h *AuditHandler) ListByUser(c *gin.Context) {
	userID, ok := h.ParseID(c, "userId")
	if !ok {
		return
	}

	var filter dto.AuditRangeFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	from, to := filter.Bounds()
	entries, err := h.service.GetByUser(c.Request.Context(), userID, from, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewAuditListResponse(entries))
}

// ListByAsset returns the location history of a registration, newest first.
// GET /api/auditoria/ubicacion/:inventarioNuevoId
func (h *AuditHandler) ListByAsset(c *gin.Context) {
	assetID, ok := h.ParseID(c, "inventarioNuevoId")
	if !ok {
		return
	}

	entries, err := h.service.GetByAsset(c.Request.Context(), assetID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.NewAuditListResponse(entries))
}
