package service

import (
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/cache"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/config"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/logger"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/sentry"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/validator"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger    *logger.Logger
	Config    *config.Configuration
	Validator *validator.Validator
	Cache     cache.Cache
	Sentry    *sentry.Service
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	validator *validator.Validator,
	cache *cache.InMemoryCache,
	sentry *sentry.Service,
) ServiceParams {
	return ServiceParams{
		Logger:    logger,
		Config:    config,
		Validator: validator,
		Cache:     cache,
		Sentry:    sentry,
	}
}
