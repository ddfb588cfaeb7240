package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elpotrillo/pos/internal/adapters/config"
	"github.com/elpotrillo/pos/internal/adapters/http"
	"github.com/elpotrillo/pos/internal/adapters/http/controllers"
	"github.com/elpotrillo/pos/internal/adapters/sqlite"
	"github.com/elpotrillo/pos/internal/adapters/sqlite/repository"
	"github.com/elpotrillo/pos/internal/core/logger"
	"github.com/elpotrillo/pos/internal/core/service"
)

// @title       POS API
// @version     1.0
// @description Point-of-sale catalog, sales and reporting API

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// open the embedded store; schema is created on first start
	store, err := sqlite.NewStore(cfg.DB)
	if err != nil {
		logger.Fatal(ctx, "Failed to open store", err, map[string]any{"path": cfg.DB.Path})
	}
	defer store.Close()
	logger.Info(ctx, "Store opened", map[string]any{"path": cfg.DB.Path})

	// repositories and transaction scope
	productRepository := repository.NewProductRepository(store)
	saleRepository := repository.NewSaleRepository(store)
	txManager := sqlite.NewTransactionManager(store)

	// services
	catalogService := service.NewCatalogService(productRepository)
	saleService := service.NewSaleService(saleRepository, catalogService, txManager)

	// controllers
	productController := controllers.NewProductController(catalogService)
	saleController := controllers.NewSaleController(saleService)
	healthController := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "sqlite", Check: store.Ping},
	})

	// router
	router := http.NewRouter(healthController, productController, saleController)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	if err := router.ListenAndServe(ctx, cfg.HTTP); err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
