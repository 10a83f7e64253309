package handlers

import (
	"github.com/gin-gonic/gin"

	"patrimonio/internal/domain/orgunit"
	"patrimonio/internal/infrastructure/http/v1/dto"
)

// OrgUnitHandler serves the organizational catalog: projects, branches,
// areas and responsibles.
type OrgUnitHandler struct {
	*BaseHandler
	service *orgunit.Service
}

// NewOrgUnitHandler creates a new catalog handler.
func NewOrgUnitHandler(base *BaseHandler, service *orgunit.Service) *OrgUnitHandler {
	return &OrgUnitHandler{BaseHandler: base, service: service}
}

// --- Projects ---

// CreateProject registers a project.
// POST /api/proyectos
func (h *OrgUnitHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p := req.ToProject()
	if err := h.service.CreateProject(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, p.ID.String())
}

// UpdateProject updates an existing project.
// PUT /api/proyectos/:id
func (h *OrgUnitHandler) UpdateProject(c *gin.Context) {
	projectID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p := req.ToProject()
	p.ID = projectID
	if err := h.service.UpdateProject(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, p)
}

// GetProject returns a project by id.
// GET /api/proyectos/:id
func (h *OrgUnitHandler) GetProject(c *gin.Context) {
	projectID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetProject(c.Request.Context(), projectID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, p)
}

// ListProjects lists projects with search and paging.
// GET /api/proyectos
func (h *OrgUnitHandler) ListProjects(c *gin.Context) {
	var req struct {
		dto.PaginationRequest
		Search  string `form:"search"`
		OrderBy string `form:"orderBy"`
	}
	if !h.BindQuery(c, &req) {
		return
	}

	result, err := h.service.ListProjects(c.Request.Context(), req.ListFilter(req.Search, req.OrderBy))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(*result))
}

// DeleteProject removes a project.
// DELETE /api/proyectos/:id
func (h *OrgUnitHandler) DeleteProject(c *gin.Context) {
	projectID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), projectID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// --- Branches ---

// CreateBranch registers a branch; its codes are generated.
// POST /api/sucursales
func (h *OrgUnitHandler) CreateBranch(c *gin.Context) {
	var req dto.CreateBranchRequest
	if !h.BindJSON(c, &req) {
		return
	}

	b, err := req.ToBranch()
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := h.service.CreateBranch(c.Request.Context(), b); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, b.ID.String())
}

// UpdateBranch updates branch contact data.
// PUT /api/sucursales/:id
func (h *OrgUnitHandler) UpdateBranch(c *gin.Context) {
	branchID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateBranchRequest
	if !h.BindJSON(c, &req) {
		return
	}

	b, err := req.ToBranch()
	if err != nil {
		h.Error(c, err)
		return
	}
	b.ID = branchID
	if err := h.service.UpdateBranch(c.Request.Context(), b); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, b)
}

// GetBranch returns a branch by id.
// GET /api/sucursales/:id
func (h *OrgUnitHandler) GetBranch(c *gin.Context) {
	branchID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.GetBranch(c.Request.Context(), branchID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, b)
}

// ListBranches lists branches, optionally scoped to a project.
// GET /api/sucursales
func (h *OrgUnitHandler) ListBranches(c *gin.Context) {
	var req dto.BranchListFilter
	if !h.BindQuery(c, &req) {
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}
	result, err := h.service.ListBranches(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(*result))
}

// DeleteBranch removes a branch.
// DELETE /api/sucursales/:id
func (h *OrgUnitHandler) DeleteBranch(c *gin.Context) {
	branchID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBranch(c.Request.Context(), branchID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// --- Areas ---

// CreateArea registers an area; its codes are generated.
// POST /api/areas
func (h *OrgUnitHandler) CreateArea(c *gin.Context) {
	var req dto.CreateAreaRequest
	if !h.BindJSON(c, &req) {
		return
	}

	a, err := req.ToArea()
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := h.service.CreateArea(c.Request.Context(), a); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, a.ID.String())
}

// UpdateArea updates area contact data.
// PUT /api/areas/:id
func (h *OrgUnitHandler) UpdateArea(c *gin.Context) {
	areaID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateAreaRequest
	if !h.BindJSON(c, &req) {
		return
	}

	a, err := req.ToArea()
	if err != nil {
		h.Error(c, err)
		return
	}
	a.ID = areaID
	if err := h.service.UpdateArea(c.Request.Context(), a); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, a)
}

// GetArea returns an area by id.
// GET /api/areas/:id
func (h *OrgUnitHandler) GetArea(c *gin.Context) {
	areaID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	a, err := h.service.GetArea(c.Request.Context(), areaID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, a)
}

// ListAreas lists areas, optionally scoped to a project or branch.
// GET /api/areas
func (h *OrgUnitHandler) ListAreas(c *gin.Context) {
	var req dto.AreaListFilter
	if !h.BindQuery(c, &req) {
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}
	result, err := h.service.ListAreas(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(*result))
}

// DeleteArea removes an area.
// DELETE /api/areas/:id
func (h *OrgUnitHandler) DeleteArea(c *gin.Context) {
	areaID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteArea(c.Request.Context(), areaID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// --- Responsibles ---

// CreateResponsible assigns a responsible to an area.
// POST /api/responsables
func (h *OrgUnitHandler) CreateResponsible(c *gin.Context) {
	var req dto.CreateResponsibleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	r, err := req.ToResponsible()
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := h.service.CreateResponsible(c.Request.Context(), r); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, r.ID.String())
}

// UpdateResponsible updates editable responsible fields.
// PUT /api/responsables/:id
func (h *OrgUnitHandler) UpdateResponsible(c *gin.Context) {
	responsibleID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateResponsibleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	r, err := req.ToResponsible()
	if err != nil {
		h.Error(c, err)
		return
	}
	r.ID = responsibleID
	if err := h.service.UpdateResponsible(c.Request.Context(), r); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, r)
}

// GetResponsible returns a responsible by id.
// GET /api/responsables/:id
func (h *OrgUnitHandler) GetResponsible(c *gin.Context) {
	responsibleID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	r, err := h.service.GetResponsible(c.Request.Context(), responsibleID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, r)
}

// ListResponsibles lists responsibles, optionally scoped to an area.
// GET /api/responsables
func (h *OrgUnitHandler) ListResponsibles(c *gin.Context) {
	var req dto.ResponsibleListFilter
	if !h.BindQuery(c, &req) {
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}
	result, err := h.service.ListResponsibles(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(*result))
}

// DeleteResponsible removes a responsible.
// DELETE /api/responsables/:id
func (h *OrgUnitHandler) DeleteResponsible(c *gin.Context) {
	responsibleID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteResponsible(c.Request.Context(), responsibleID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
