package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webstore/app/echo-server/router"
	"webstore/business/reports"
	"webstore/internal/middleware"
	psqlRepo "webstore/internal/repository/postgres"
	"webstore/internal/rest"
	"webstore/pkg/config"
	"webstore/pkg/database"
	"webstore/pkg/logger"
	"webstore/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting WebStore reports", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init repo
	customerRepo := psqlRepo.NewCustomerRepository(db)
	orderRepo := psqlRepo.NewOrderRepository(db)
	orderItemRepo := psqlRepo.NewOrderItemRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	stockRepo := psqlRepo.NewStockRepository(db)
	storeRepo := psqlRepo.NewStoreRepository(db)
	carrierRepo := psqlRepo.NewCarrierRepository(db)

	// Init service
	reportsService := reports.NewReportsService(
		customerRepo,
		orderRepo,
		orderItemRepo,
		productRepo,
		stockRepo,
		storeRepo,
		carrierRepo,
	)

	// Init handler
	reportsHandler := rest.NewReportsHandler(reportsService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupReportRoutes(api, reportsHandler)
	router.SetupCarrierRoutes(api, reportsHandler)
	router.SetupMetricsRoute(e)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
