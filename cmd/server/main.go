package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/api"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/api/dto"
	v1 "github.com/thetrinh16698/coding-test-The-Trinh/internal/api/v1"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/cache"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/config"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/logger"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/sentry"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/service"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/types"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/validator"
	"go.uber.org/fx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		// fx lifecycle logs would otherwise land on stdout next to the function result
		fx.NopLogger,
		providers,
		fx.Invoke(
			sentry.RegisterHooks,
			startServer,
		),
	)
	app.Run()
}

// providers is the dependency graph shared by every deployment mode
var providers = fx.Provide(
	validator.NewValidator,
	config.NewConfig,
	logger.NewLogger,

	// Monitoring
	sentry.NewSentryService,

	// Cache
	cache.NewInMemoryCache,

	service.NewServiceParams,
	service.NewBundleDiscountService,

	provideHandlers,
	provideRouter,
)

func provideHandlers(
	cfg *config.Configuration,
	cache *cache.InMemoryCache,
	logger *logger.Logger,
	bundleDiscountService service.BundleDiscountService,
) api.Handlers {
	return api.Handlers{
		Health:         v1.NewHealthHandler(cfg, cache, logger),
		BundleDiscount: v1.NewBundleDiscountHandler(bundleDiscountService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	return api.NewRouter(handlers, cfg, logger)
}

func startServer(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg *config.Configuration,
	r *gin.Engine,
	bundleDiscountService service.BundleDiscountService,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeFunction
	}

	switch mode {
	case types.ModeFunction:
		startFunctionRun(lc, shutdowner, bundleDiscountService, log)
	case types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	case types.ModeAWSLambdaAPI:
		startAWSLambdaAPI(r)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

// startFunctionRun evaluates a single function input from stdin, writes the result
// to stdout and stops the application
func startFunctionRun(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	bundleDiscountService service.BundleDiscountService,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				exitCode := 0
				if err := runFunction(context.Background(), os.Stdin, os.Stdout, bundleDiscountService, log); err != nil {
					log.Errorw("function run failed", "error", err)
					exitCode = 1
				}
				if err := shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
					log.Errorw("failed to shut down", "error", err)
				}
			}()
			return nil
		},
	})
}

// runFunction always writes a result. An input that cannot be evaluated yields the
// empty result, so the checkout never sees a broken function.
func runFunction(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	bundleDiscountService service.BundleDiscountService,
	log *logger.Logger,
) error {
	runID := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FUNCTION_RUN)
	result := dto.EmptyFunctionResult()

	var input dto.FunctionInput
	if err := json.NewDecoder(in).Decode(&input); err != nil {
		log.Warnw("could not decode function input", "run_id", runID, "error", err)
	} else if resp, err := bundleDiscountService.Run(ctx, &input); err != nil {
		log.Warnw("could not evaluate function input", "run_id", runID, "error", err)
	} else {
		result = resp
	}

	log.Debugw("function run finished",
		"run_id", runID,
		"strategy", result.DiscountApplicationStrategy,
		"discounts", len(result.Discounts),
	)

	return json.NewEncoder(out).Encode(result)
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}

func startAWSLambdaAPI(r *gin.Engine) {
	ginLambda := ginadapter.New(r)
	lambda.Start(ginLambda.ProxyWithContext)
}
