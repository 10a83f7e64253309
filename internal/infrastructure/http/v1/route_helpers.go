// Package v1 provides the HTTP API.
package v1

import (
	"github.com/gin-gonic/gin"

	"patrimonio/internal/infrastructure/http/v1/middleware"
)

// CrudRoutes bundles the standard handlers of one catalog entity.
type CrudRoutes struct {
	List   gin.HandlerFunc
	Create gin.HandlerFunc
	Get    gin.HandlerFunc
	Update gin.HandlerFunc
	Delete gin.HandlerFunc
}

// RegisterCrudRoutes wires standard CRUD routes with role guards. Reads are
// open to readRoles, mutations to writeRoles; administrators always pass.
//
// Usage:
//
//	RegisterCrudRoutes(api.Group("/proyectos"), CrudRoutes{
//		List:   h.ListProjects,
//		Create: h.CreateProject,
//		...
//	}, readRoles, writeRoles)
func RegisterCrudRoutes(group *gin.RouterGroup, routes CrudRoutes, readRoles, writeRoles []string) {
	group.GET("", middleware.RequireRole(readRoles...), routes.List)
	group.POST("", middleware.RequireRole(writeRoles...), routes.Create)
	group.GET("/:id", middleware.RequireRole(readRoles...), routes.Get)
	group.PUT("/:id", middleware.RequireRole(writeRoles...), routes.Update)
	group.DELETE("/:id", middleware.RequireRole(writeRoles...), routes.Delete)
}
