package main

import (
	"fmt"
	"os"

	"github.com/displaytree/paybeanlink/internal/handler"
	"github.com/displaytree/paybeanlink/internal/middleware"
	"github.com/displaytree/paybeanlink/internal/model"
	"github.com/displaytree/paybeanlink/internal/sync"
	"github.com/displaytree/paybeanlink/pkg/config"
	"github.com/displaytree/paybeanlink/pkg/database"
	"github.com/displaytree/paybeanlink/pkg/logger"
	"github.com/displaytree/paybeanlink/prometheus"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found or error loading: %v\n", err)
	}

	// Load configuration
	conf, err := config.Load("paybeanlink")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.InitLogger(&logger.LogConfig{
		Level:       conf.Log.Level,
		Environment: conf.Server.Env,
		ServiceName: conf.ServiceName,
	})
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetLogger()

	// Initialize database connection
	db, err := database.InitDB(&conf.DB)
	if err != nil {
		log.Fatal("Failed to initialize database")
	}

	// Run migrations for every syncable collection
	if err := database.MigrateModels(
		&model.Merchant{},
		&model.Bill{},
		&model.Inventory{},
		&model.Supply{},
		&model.Production{},
		&model.Product{},
		&model.BillOfMaterial{},
		&model.Registration{},
	); err != nil {
		log.Fatal("Failed to migrate database models")
	}

	// Initialize Prometheus metrics
	prometheus.InitMetrics(conf)

	// Wire the sync engine and handlers
	engine := sync.NewEngine(db, log)
	syncHandler := handler.NewSyncHandler(engine)

	// Initialize Echo framework
	e := echo.New()

	// Apply middleware
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(middleware.MetricsMiddleware)

	// Metrics and health endpoints
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))
	e.GET("/health", handler.HealthCheck)

	// Sync routes: one list + syncOne + syncBatch surface per collection
	syncGroup := e.Group("/sync")
	syncGroup.GET("/registrations/host/:hostname", syncHandler.GetRegistrationByHost)
	syncGroup.GET("/:collection", syncHandler.List)
	syncGroup.POST("/:collection", syncHandler.SyncOne)
	syncGroup.POST("/:collection/batch", syncHandler.SyncBatch)

	// Start server
	log.Info("Starting paybeanlink sync service on port " + conf.Server.Port)
	e.Logger.Fatal(e.Start(":" + conf.Server.Port))
}
