package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/cache"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/config"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/logger"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/sentry"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/validator"
)

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	logger    *logger.Logger
	config    *config.Configuration
	validator *validator.Validator
	cache     *cache.InMemoryCache
	sentry    *sentry.Service
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	s.validator = validator.NewValidator()
	s.config = config.GetDefaultConfig()
	s.logger = logger.NewNopLogger()
	s.cache = cache.NewInMemoryCache(s.config, s.logger)
	s.sentry = sentry.NewSentryService(s.config, s.logger)
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cache.Flush(s.ctx)
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration. Tests may modify it before building
// the service under test.
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetValidator returns the validator services are built with
func (s *BaseServiceTestSuite) GetValidator() *validator.Validator {
	return s.validator
}

// GetCache returns the shared in-memory cache, flushed before each test
func (s *BaseServiceTestSuite) GetCache() *cache.InMemoryCache {
	return s.cache
}

// GetSentry returns a Sentry service that is disabled by the default configuration
func (s *BaseServiceTestSuite) GetSentry() *sentry.Service {
	return s.sentry
}
