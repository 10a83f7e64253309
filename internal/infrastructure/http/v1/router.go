package v1

import (
	"github.com/gin-gonic/gin"

	appctx "patrimonio/internal/core/context"
	"patrimonio/internal/domain/asset"
	"patrimonio/internal/domain/audit"
	"patrimonio/internal/domain/auth"
	"patrimonio/internal/domain/legacy"
	"patrimonio/internal/domain/orgunit"
	"patrimonio/internal/domain/reports"
	"patrimonio/internal/infrastructure/http/v1/handlers"
	"patrimonio/internal/infrastructure/http/v1/middleware"
	"patrimonio/internal/infrastructure/storage/postgres"
	"patrimonio/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// Services
	AuthService    *auth.Service
	AssetService   *asset.Service
	LegacyService  *legacy.Service
	AuditService   *audit.Service
	ReportsService *reports.Service
	OrgUnitService *orgunit.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	baseHandler := handlers.NewBaseHandler()

	api := router.Group("/api")
	{
		registerAuthRoutes(api, baseHandler, cfg)

		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerInventoryRoutes(protected, baseHandler, cfg)
		registerAuditRoutes(protected, baseHandler, cfg)
		registerReportRoutes(protected, baseHandler, cfg)
		registerCatalogRoutes(protected, baseHandler, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	if cfg.AuthService == nil {
		return
	}

	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)

	authGroup := rg.Group("/auth")
	authGroup.POST("/login", authHandler.Login)

	// Account creation is reserved for administrators.
	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))
	protectedAuth.POST("/register",
		middleware.RequireRole(appctx.RoleAdministrador), authHandler.Register)
}

// registerInventoryRoutes registers the historical inventory and the
// confirmed registrations.
func registerInventoryRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	allRoles := []string{appctx.RoleAdministrador, appctx.RoleCoordinador, appctx.RoleRegistrador}
	fieldRoles := []string{appctx.RoleAdministrador, appctx.RoleRegistrador}

	// Historical inventory, read-only over HTTP.
	legacyHandler := handlers.NewLegacyHandler(base, cfg.LegacyService)
	legacyGroup := rg.Group("/inventario")
	{
		legacyGroup.GET("", middleware.RequireRole(allRoles...), legacyHandler.List)
		legacyGroup.GET("/:id", middleware.RequireRole(allRoles...), legacyHandler.Get)
		legacyGroup.GET("/codigo/:codPatrimonial",
			middleware.RequireRole(allRoles...), legacyHandler.GetByPatrimonialCode)
	}

	// Confirmed registrations. Mutations come from the field clients.
	assetHandler := handlers.NewAssetHandler(base, cfg.AssetService)
	assetGroup := rg.Group("/inventario-nuevo")
	{
		assetGroup.POST("/register-from-existing",
			middleware.RequireRole(fieldRoles...), assetHandler.RegisterFromExisting)
		assetGroup.PUT("/:id/update-from-existing",
			middleware.RequireRole(fieldRoles...), assetHandler.UpdateFromExisting)
		assetGroup.GET("", middleware.RequireRole(allRoles...), assetHandler.List)
		assetGroup.GET("/:id", middleware.RequireRole(allRoles...), assetHandler.Get)
		assetGroup.DELETE("/:id",
			middleware.RequireRole(appctx.RoleAdministrador), assetHandler.Delete)
	}
}

// registerAuditRoutes registers the GPS audit trail endpoints.
func registerAuditRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	auditHandler := handlers.NewAuditHandler(base, cfg.AuditService)

	auditGroup := rg.Group("/auditoria/ubicacion")
	{
		auditGroup.POST("",
			middleware.RequireRole(appctx.RoleAdministrador, appctx.RoleRegistrador),
			auditHandler.Record)
		auditGroup.GET("/user/:userId",
			middleware.RequireRole(appctx.RoleAdministrador, appctx.RoleCoordinador),
			auditHandler.ListByUser)
		auditGroup.GET("/:inventarioNuevoId",
			middleware.RequireRole(appctx.RoleAdministrador, appctx.RoleCoordinador),
			auditHandler.ListByAsset)
	}
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	reportsHandler := handlers.NewReportsHandler(base, cfg.ReportsService)

	rg.GET("/reportes/estadisticas",
		middleware.RequireRole(
			appctx.RoleAdministrador, appctx.RoleCoordinador, appctx.RoleRegistrador),
		reportsHandler.Statistics)
}

// registerCatalogRoutes registers the organizational catalog endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	h := handlers.NewOrgUnitHandler(base, cfg.OrgUnitService)

	readRoles := []string{appctx.RoleAdministrador, appctx.RoleCoordinador, appctx.RoleRegistrador}
	writeRoles := []string{appctx.RoleAdministrador, appctx.RoleCoordinador}

	RegisterCrudRoutes(rg.Group("/proyectos"), CrudRoutes{
		List:   h.ListProjects,
		Create: h.CreateProject,
		Get:    h.GetProject,
		Update: h.UpdateProject,
		Delete: h.DeleteProject,
	}, readRoles, writeRoles)

	RegisterCrudRoutes(rg.Group("/sucursales"), CrudRoutes{
		List:   h.ListBranches,
		Create: h.CreateBranch,
		Get:    h.GetBranch,
		Update: h.UpdateBranch,
		Delete: h.DeleteBranch,
	}, readRoles, writeRoles)

	RegisterCrudRoutes(rg.Group("/areas"), CrudRoutes{
		List:   h.ListAreas,
		Create: h.CreateArea,
		Get:    h.GetArea,
		Update: h.UpdateArea,
		Delete: h.DeleteArea,
	}, readRoles, writeRoles)

	RegisterCrudRoutes(rg.Group("/responsables"), CrudRoutes{
		List:   h.ListResponsibles,
		Create: h.CreateResponsible,
		Get:    h.GetResponsible,
		Update: h.UpdateResponsible,
		Delete: h.DeleteResponsible,
	}, readRoles, writeRoles)
}
