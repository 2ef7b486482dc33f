package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/thetrinh16698/coding-test-The-Trinh/internal/api/v1"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/config"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/logger"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/rest/middleware"
)

type Handlers struct {
	Health         *v1.HealthHandler
	BundleDiscount *v1.BundleDiscountHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.SentryMiddleware(cfg),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	logger.Debugw("registered routes", "count", len(router.Routes()))

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	bundleDiscounts := router.Group("/bundle-discounts")
	{
		bundleDiscounts.POST("/run", handlers.BundleDiscount.Run)
		bundleDiscounts.POST("/validate", handlers.BundleDiscount.ValidateConfiguration)
	}
}
