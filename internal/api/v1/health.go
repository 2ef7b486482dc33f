package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/cache"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/config"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/logger"
)

type HealthHandler struct {
	config *config.Configuration
	cache  *cache.InMemoryCache
	logger *logger.Logger
}

func NewHealthHandler(
	config *config.Configuration,
	cache *cache.InMemoryCache,
	logger *logger.Logger,
) *HealthHandler {
	return &HealthHandler{
		config: config,
		cache:  cache,
		logger: logger,
	}
}

// @Summary Health check
// @Description Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                 "ok",
		"negative_bundle_policy": h.config.Discount.NegativeBundlePolicy,
		"cached_configurations":  h.cache.ItemCount(),
	})
}
