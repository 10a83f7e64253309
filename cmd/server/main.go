// Package main is the entry point for the patrimonio API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patrimonio/internal/domain/asset"
	"patrimonio/internal/domain/audit"
	"patrimonio/internal/domain/auth"
	"patrimonio/internal/domain/legacy"
	"patrimonio/internal/domain/orgunit"
	"patrimonio/internal/domain/reports"
	v1 "patrimonio/internal/infrastructure/http/v1"
	"patrimonio/internal/infrastructure/storage/postgres"
	"patrimonio/internal/infrastructure/storage/postgres/auth_repo"
	"patrimonio/internal/infrastructure/storage/postgres/catalog_repo"
	"patrimonio/internal/infrastructure/storage/postgres/inventory_repo"
	"patrimonio/internal/infrastructure/storage/postgres/report_repo"
	"patrimonio/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting patrimonio server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Repositories ---
	assetRepo := inventory_repo.NewAssetRepo(txManager)
	legacyRepo := inventory_repo.NewLegacyRepo(txManager)
	auditRepo := inventory_repo.NewAuditRepo(txManager)
	reportsRepo := report_repo.NewReportsRepo(txManager)
	userRepo := auth_repo.NewUserRepo(txManager)
	projectRepo := catalog_repo.NewProjectRepo(txManager)
	branchRepo := catalog_repo.NewBranchRepo(txManager)
	areaRepo := catalog_repo.NewAreaRepo(txManager)
	responsibleRepo := catalog_repo.NewResponsibleRepo(txManager)

	// --- Services ---
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(mustEnv("JWT_SECRET")))
	authService := auth.NewService(userRepo, txManager, jwtService, auth.DefaultServiceConfig())

	seq := postgres.NewSequenceGenerator(txManager)
	assetService := asset.NewService(assetRepo, legacyRepo, auditRepo, seq, txManager)
	legacyService := legacy.NewService(legacyRepo)
	auditService := audit.NewService(auditRepo)
	reportsService := reports.NewService(reportsRepo)
	orgunitService := orgunit.NewService(projectRepo, branchRepo, areaRepo, responsibleRepo, txManager)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:           pool,
		Logger:         log,
		JWTValidator:   jwtService,
		AuthService:    authService,
		AssetService:   assetService,
		LegacyService:  legacyService,
		AuditService:   auditService,
		ReportsService: reportsService,
		OrgUnitService: orgunitService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
