package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elpotrillo/pos/internal/adapters/config"
	"github.com/elpotrillo/pos/internal/adapters/http/controllers"
	"github.com/elpotrillo/pos/internal/adapters/http/middleware"
)

type Router struct {
	healthController  *controllers.HealthController
	productController *controllers.ProductController
	saleController    *controllers.SaleController
}

func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	saleController *controllers.SaleController,
) *Router {
	return &Router{
		healthController:  healthController,
		productController: productController,
		saleController:    saleController,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.RequestID(), middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.POST("/products", r.productController.CreateProduct)
		v1Group.GET("/products", r.productController.GetAll)
		v1Group.GET("/products/:id", r.productController.GetByID)
		v1Group.PATCH("/products/:id/price", r.productController.UpdatePrice)
		v1Group.PATCH("/products/:id/stock", r.productController.UpdateStock)
		v1Group.POST("/products/:id/replenish", r.productController.Replenish)

		v1Group.POST("/sales", r.saleController.RegisterSale)
		v1Group.GET("/reports/products", r.saleController.GetProductReport)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
