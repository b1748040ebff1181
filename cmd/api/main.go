package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"plutus/internal/calc"
	"plutus/internal/config"
	"plutus/internal/database"
	"plutus/internal/handlers"
	"plutus/internal/logger"
	"plutus/internal/middleware"
	"plutus/internal/scheduler"
	"plutus/internal/services"
	"plutus/internal/validator"

	_ "plutus/internal/docs" // Import swagger docs
)

// @title           Plutus API
// @version         1.0
// @description     Plutus is a personal finance tracker focused on asset income: dividends, interest, rent, and the projections they feed.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
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

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	// Bring the schema up to date
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	calculator := calc.NewIncomeCalculator(logger.Named("calc"))
	assetService := services.NewAssetService(db, calculator)
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db)
	liabilityService := services.NewLiabilityService(db)
	projectionService := services.NewProjectionService(db, calculator)
	snapshotService := services.NewSnapshotService(db, calculator)

	// Initialize handlers
	assetHandler := handlers.NewAssetHandler(assetService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	liabilityHandler := handlers.NewLiabilityHandler(liabilityService)
	projectionHandler := handlers.NewProjectionHandler(projectionService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Background jobs: cache refresh first so the nightly snapshot reads warm caches
	if appConfig.SchedulerEnabled {
		sched := scheduler.New(log)
		if err := sched.AddJob(appConfig.SnapshotCron, scheduler.NewCacheRefreshJob(assetService, log)); err != nil {
			return fmt.Errorf("failed to register cache refresh job: %w", err)
		}
		if err := sched.AddJob(appConfig.SnapshotCron, scheduler.NewSnapshotJob(snapshotService, log)); err != nil {
			return fmt.Errorf("failed to register snapshot job: %w", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

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

	// Asset routes
	assets := v1.Group("/assets")
	assets.POST("", assetHandler.CreateAsset)
	assets.GET("", assetHandler.GetAssets)
	assets.POST("/income/refresh", assetHandler.RefreshIncomeCaches)
	assets.GET("/:id", assetHandler.GetAsset)
	assets.PUT("/:id", assetHandler.UpdateAsset)
	assets.DELETE("/:id", assetHandler.DeleteAsset)
	assets.POST("/:id/buy", assetHandler.RecordBuy)
	assets.POST("/:id/sell", assetHandler.RecordSell)
	assets.GET("/:id/transactions", assetHandler.GetAssetTransactions)
	assets.GET("/:id/income", assetHandler.GetAssetIncome)

	// Income source routes
	income := v1.Group("/income")
	income.POST("", incomeHandler.CreateIncomeSource)
	income.GET("", incomeHandler.GetIncomeSources)
	income.GET("/:id", incomeHandler.GetIncomeSource)
	income.PUT("/:id", incomeHandler.UpdateIncomeSource)
	income.DELETE("/:id", incomeHandler.DeleteIncomeSource)

	// Expense routes
	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Liability routes
	liabilities := v1.Group("/liabilities")
	liabilities.POST("", liabilityHandler.CreateLiability)
	liabilities.GET("", liabilityHandler.GetLiabilities)
	liabilities.GET("/:id", liabilityHandler.GetLiability)
	liabilities.PUT("/:id", liabilityHandler.UpdateLiability)
	liabilities.DELETE("/:id", liabilityHandler.DeleteLiability)

	// Projection and summary routes
	v1.GET("/projections", projectionHandler.GetProjections)
	v1.GET("/summary", projectionHandler.GetSummary)

	// Snapshot routes
	snapshots := v1.Group("/snapshots")
	snapshots.POST("", snapshotHandler.RecordSnapshot)
	snapshots.GET("", snapshotHandler.GetSnapshots)

	log.Infof("Starting Plutus server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
