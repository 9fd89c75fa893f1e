package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/contributor-registry/internal/auth"
	"github.com/alimgiray/contributor-registry/internal/events"
	"github.com/alimgiray/contributor-registry/internal/handlers"
	"github.com/alimgiray/contributor-registry/internal/middleware"
	"github.com/alimgiray/contributor-registry/internal/repositories"
	"github.com/alimgiray/contributor-registry/internal/services"
	"github.com/alimgiray/contributor-registry/internal/workers"
	"github.com/alimgiray/contributor-registry/pkg/config"
	"github.com/alimgiray/contributor-registry/pkg/database"
	"github.com/alimgiray/contributor-registry/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(config.AppConfig.Server.Mode)
	logger.Init()

	// Initialize database
	if err := database.Init(config.AppConfig.Database.Path); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Storage and collaborators
	kvStore := repositories.NewKVRepository(database.DB)
	gate := services.NewGate()
	oracle := auth.NewContextOracle()
	sink := events.NewLogSink()

	// Repositories
	adminRepo := repositories.NewAdminRepository(kvStore)
	contributorRepo := repositories.NewContributorRepository(kvStore)
	indexRepo := repositories.NewGithubIndexRepository(kvStore)

	// Registry services
	adminService := services.NewAdminService(adminRepo, oracle, sink, gate)
	contributorService := services.NewContributorService(contributorRepo, indexRepo, adminRepo, oracle, services.SystemClock(), gate)
	reputationService := services.NewReputationService(contributorRepo, adminRepo, oracle, gate)
	upgradeService := services.NewUpgradeService(adminRepo, oracle, services.NewStoreUpgrader(kvStore), sink, gate)
	exportService := services.NewExportService(contributorService)

	profileService, err := services.NewGithubProfileService(config.AppConfig.GitHub.APIToken)
	if err != nil {
		log.Fatalf("Failed to initialize GitHub profile service: %v", err)
	}

	// Background enrichment
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()
	if interval := config.AppConfig.Worker.EnrichmentInterval; interval > 0 {
		worker := workers.NewEnrichmentWorker(contributorService, profileService, time.Duration(interval)*time.Minute)
		go func() {
			if err := worker.Start(workerCtx); err != nil && err != context.Canceled {
				logger.WithError(err).Errorf("enrichment worker exited")
			}
		}()
		defer worker.Stop()
	}

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CallerAuth(config.AppConfig.Auth.CallerTokens))

	setupRoutes(router, adminService, contributorService, reputationService, upgradeService, exportService, profileService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}

func setupRoutes(
	router *gin.Engine,
	adminService *services.AdminService,
	contributorService *services.ContributorService,
	reputationService *services.ReputationService,
	upgradeService *services.UpgradeService,
	exportService *services.ExportService,
	profileService *services.GithubProfileService,
) {
	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(adminService, upgradeService)
	contributorHandler := handlers.NewContributorHandler(contributorService, profileService)
	reputationHandler := handlers.NewReputationHandler(reputationService)
	exportHandler := handlers.NewExportHandler(exportService, contributorService)
	healthHandler := handlers.NewHealthHandler()

	router.GET("/health", healthHandler.Health)

	// Admin authority
	admin := router.Group("/admin")
	{
		admin.POST("/initialize", adminHandler.Initialize)
		admin.GET("", adminHandler.GetAdmin)
		admin.PUT("", adminHandler.SetAdmin)
		admin.POST("/upgrade", adminHandler.Upgrade)
		admin.GET("/export/contributors", exportHandler.Contributors)
	}

	// Contributor directory
	contributors := router.Group("/contributors")
	{
		contributors.POST("", contributorHandler.Register)
		contributors.GET("", contributorHandler.List)
		contributors.GET("/:address", contributorHandler.Get)
		contributors.PUT("/:address", contributorHandler.Update)
		contributors.GET("/:address/reputation", reputationHandler.Get)
		contributors.PUT("/:address/reputation", reputationHandler.Update)
		contributors.GET("/:address/github", contributorHandler.GithubProfile)
	}

	// Reverse lookup by handle
	router.GET("/github/:handle", contributorHandler.GetByGithub)
}
