package main

import (
	"fmt"
	"net/http"
	"os"

	"rentfolio/internal/config"
	"rentfolio/internal/database"
	"rentfolio/internal/handlers"
	"rentfolio/internal/logger"
	"rentfolio/internal/middleware"
	"rentfolio/internal/services"
	"rentfolio/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "rentfolio/internal/docs" // Import swagger docs
)

// @title           Rentfolio API
// @version         1.0
// @description     Rentfolio is the property back-office service that tracks rental obligations, materializes recurring series, and builds tax deduction reports.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	store := services.NewObligationStore(db)
	auditService := services.NewAuditService(db)
	obligationService := services.NewObligationService(db, store)
	seriesService := services.NewSeriesService(store)
	sweepService := services.NewSweepService(db, store)
	deductionService := services.NewDeductionService(db)

	// Initialize handlers
	obligationHandler := handlers.NewObligationHandler(obligationService, seriesService, auditService)
	reportHandler := handlers.NewReportHandler(deductionService)
	sweepHandler := handlers.NewSweepHandler(sweepService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Sweep trigger, authenticated with the host cron's API key
	v1.POST("/sweep", middleware.SweepAuthMiddleware(appConfig.SweepAPIKey), sweepHandler.TriggerSweep)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.ServiceAuth())

	// Obligation routes
	obligations := protected.Group("/obligations")
	obligations.POST("", obligationHandler.CreateObligation)
	obligations.GET("", obligationHandler.GetObligations)
	obligations.GET("/:id", obligationHandler.GetObligation)
	obligations.PUT("/:id", obligationHandler.UpdateObligation)
	obligations.DELETE("/:id", obligationHandler.DeleteObligation)
	obligations.GET("/:id/instances", obligationHandler.GetObligationInstances)
	obligations.GET("/:id/schedule", obligationHandler.GetObligationSchedule)
	obligations.GET("/:id/amortization", reportHandler.GetAmortizationStatus)

	// Report routes
	reports := protected.Group("/reports")
	reports.GET("/deductions", reportHandler.GetDeductionReport)

	// Sweep run history
	protected.GET("/sweep/runs", sweepHandler.GetSweepRuns)

	log.Infof("Starting Rentfolio backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
