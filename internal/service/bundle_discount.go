package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/thetrinh16698/coding-test-The-Trinh/internal/api/dto"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/cache"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/domain/bundle"
	ierr "github.com/thetrinh16698/coding-test-The-Trinh/internal/errors"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/sentry"
)

// BundleDiscountService evaluates volume bundle discounts for carts
type BundleDiscountService interface {
	// Run evaluates one function input. A missing or invalid bundle configuration
	// yields the empty result; only a malformed cart is reported as an error.
	Run(ctx context.Context, input *dto.FunctionInput) (*dto.FunctionResult, error)

	// ValidateConfiguration parses a raw bundle configuration and reports every
	// problem a merchant has to fix before the bundle can apply
	ValidateConfiguration(ctx context.Context, raw string) (*dto.BundleConfiguration, error)
}

type bundleDiscountService struct {
	ServiceParams
	calculator *bundle.Calculator
}

func NewBundleDiscountService(params ServiceParams) BundleDiscountService {
	return &bundleDiscountService{
		ServiceParams: params,
		calculator: bundle.NewCalculator(bundle.Options{
			NegativeBundlePolicy: params.Config.Discount.NegativeBundlePolicy,
		}),
	}
}

func (s *bundleDiscountService) Run(ctx context.Context, input *dto.FunctionInput) (*dto.FunctionResult, error) {
	if input == nil {
		return nil, ierr.NewError("function input is required").
			WithHint("Please provide a cart to evaluate").
			Mark(ierr.ErrValidation)
	}

	if err := s.Validator.Struct(input); err != nil {
		return nil, err
	}

	span, ctx := s.Sentry.StartSpan(ctx, "bundle_discount.run", map[string]interface{}{
		"lines": len(input.Cart.Lines),
	})
	defer sentry.FinishSpan(span)

	cfg := s.configurationFor(ctx, input)
	eval := s.calculator.Calculate(input.ToCart(), cfg)

	if eval.NegativeBundleDiscount {
		s.Logger.Warnw("bundle price exceeds the bundled total",
			"tier_quantity", eval.Match.Tier.Quantity,
			"tier_amount", eval.Match.Tier.Amount.String(),
			"policy", s.Config.Discount.NegativeBundlePolicy,
		)
	}

	s.Sentry.AddBreadcrumb("bundle_discount", "evaluated bundle discount", map[string]interface{}{
		"units":       eval.Units,
		"skip_reason": eval.SkipReason,
		"discounts":   len(eval.Result.Discounts),
	})

	s.Logger.Debugw("evaluated bundle discount",
		"discount_type", cfg.DiscountType,
		"lines", len(input.Cart.Lines),
		"eligible_lines", eval.EligibleLines,
		"units", eval.Units,
		"tier_quantity", eval.Match.Tier.Quantity,
		"baseline", eval.Match.Baseline,
		"skip_reason", eval.SkipReason,
		"discounts", len(eval.Result.Discounts),
	)

	return dto.NewFunctionResult(eval.Result), nil
}

// configurationFor never fails: a configuration that cannot be used is logged and
// replaced by the empty configuration, which applies no discount. Tiers that can
// never apply are dropped individually. Parsed configurations are cached by the
// hash of their raw payload.
func (s *bundleDiscountService) configurationFor(ctx context.Context, input *dto.FunctionInput) bundle.Configuration {
	raw := input.ConfigurationPayload()
	key := configurationCacheKey(raw)

	if cached, found := s.Cache.Get(ctx, key); found {
		if cfg, ok := cached.(bundle.Configuration); ok {
			return cfg
		}
	}

	parsed, err := dto.ParseConfiguration(s.Validator, raw)
	if err != nil {
		if ierr.IsNotFound(err) {
			s.Logger.Debugw("no bundle configuration on discount node")
		} else {
			s.Logger.Warnw("ignoring invalid bundle configuration",
				"error", err.Error(),
				"details", ierr.ReportableDetails(err),
			)
			s.Sentry.CaptureException(err)
		}
		return bundle.Configuration{}
	}

	if err := parsed.ValidateTiers(); err != nil {
		s.Logger.Warnw("ignoring invalid bundle tiers",
			"error", err.Error(),
			"details", ierr.ReportableDetails(err),
		)
		s.Sentry.CaptureException(err)
	}

	cfg := parsed.ToConfiguration()
	s.Cache.Set(ctx, key, cfg, 0)
	return cfg
}

func configurationCacheKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return cache.GenerateKey(cache.PrefixBundleConfiguration, hex.EncodeToString(sum[:]))
}

func (s *bundleDiscountService) ValidateConfiguration(ctx context.Context, raw string) (*dto.BundleConfiguration, error) {
	cfg, err := dto.ParseConfiguration(s.Validator, raw)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateTiers(); err != nil {
		return nil, err
	}
	return cfg, nil
}
