package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patrimonio/internal/domain/asset"
	"patrimonio/internal/infrastructure/http/v1/dto"
)

// AssetHandler serves confirmed registrations (inventario nuevo).
type AssetHandler struct {
	*BaseHandler
	service *asset.Service
}

// NewAssetHandler creates a new asset handler.
func NewAssetHandler(base *BaseHandler, service *asset.Service) *AssetHandler {
	return &AssetHandler{BaseHandler: base, service: service}
}

// RegisterFromExisting registers an asset confirmed in the field.
// POST /api/inventario-nuevo/register-from-existing
func (h *AssetHandler) RegisterFromExisting(c *gin.Context) {
	var req dto.RegisterFromExistingRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	userID, ok := h.GetUserID(c)
	if !ok {
		return
	}

	created, err := h.service.RegisterFromExisting(c.Request.Context(), *in, userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AssetResponse{
		Message:    "Inventario registrado exitosamente",
		Inventario: created,
	})
}

// UpdateFromExisting corrects a previously submitted registration.
// PUT /api/inventario-nuevo/:id/update-from-existing
func (h *AssetHandler) UpdateFromExisting(c *gin.Context) {
	assetID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.RegisterFromExistingRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	userID, ok := h.GetUserID(c)
	if !ok {
		return
	}

	updated, err := h.service.UpdateFromExisting(c.Request.Context(), assetID, *in, userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.AssetResponse{
		Message:    "Inventario actualizado exitosamente",
		Inventario: updated,
	})
}

// List returns registrations with filtering and pagination.
// GET /api/inventario-nuevo
func (h *AssetHandler) List(c *gin.Context) {
	var filter dto.AssetListFilter
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

// Get returns one registration with its attribute row.
// GET /api/inventario-nuevo/:id
func (h *AssetHandler) Get(c *gin.Context) {
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

// Delete removes a registration.
// DELETE /api/inventario-nuevo/:id
func (h *AssetHandler) Delete(c *gin.Context) {
	assetID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), assetID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
