package bundle

import (
	"github.com/shopspring/decimal"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/types"
)

// SkipReason explains why an evaluation produced the empty result
type SkipReason string

const (
	SkipReasonNone                   SkipReason = ""
	SkipReasonBusinessBuyer          SkipReason = "business_buyer"
	SkipReasonNoEligibleLines        SkipReason = "no_eligible_lines"
	SkipReasonNoTier                 SkipReason = "no_tier"
	SkipReasonUnsupportedType        SkipReason = "unsupported_discount_type"
	SkipReasonNegativeBundleDiscount SkipReason = "negative_bundle_discount"
)

type Options struct {
	NegativeBundlePolicy types.NegativeDiscountPolicy
}

// Evaluation is the result of one cart evaluation plus what led to it
type Evaluation struct {
	Result        Result
	EligibleLines int
	Units         int
	Match         TierMatch
	SkipReason    SkipReason
	// NegativeBundleDiscount is set when the bundle price exceeded the bundled total
	NegativeBundleDiscount bool
}

// Calculator evaluates carts against a bundle configuration. It holds no state
// besides its options and is safe for concurrent use.
type Calculator struct {
	opts Options
}

func NewCalculator(opts Options) *Calculator {
	if opts.NegativeBundlePolicy == "" {
		opts.NegativeBundlePolicy = types.NegativeDiscountPolicyPassthrough
	}
	return &Calculator{opts: opts}
}

// Calculate runs the whole pipeline for one cart
func (c *Calculator) Calculate(cart Cart, cfg Configuration) Evaluation {
	eval := Evaluation{
		Result: EmptyResult(),
		Match:  baselineMatch(),
	}

	if cart.Buyer.IsBusiness() {
		eval.SkipReason = SkipReasonBusinessBuyer
		return eval
	}

	eligible := FilterEligible(cart.Lines, cfg)
	eval.EligibleLines = len(eligible)
	if len(eligible) == 0 {
		eval.SkipReason = SkipReasonNoEligibleLines
		return eval
	}

	units := ExpandUnits(eligible)
	eval.Units = len(units)

	eval.Match = ResolveTier(len(units), cfg.Tiers)
	if eval.Match.Baseline {
		eval.SkipReason = SkipReasonNoTier
		return eval
	}

	entry, ok := ValueTier(eval.Match, units, cfg)
	if !ok {
		eval.SkipReason = SkipReasonUnsupportedType
		return eval
	}

	if cfg.DiscountType == types.BundleDiscountTypeFixedBundlePrice && isNegative(entry.Value) {
		eval.NegativeBundleDiscount = true
		if c.opts.NegativeBundlePolicy == types.NegativeDiscountPolicySkip {
			eval.SkipReason = SkipReasonNegativeBundleDiscount
			return eval
		}
	}

	discounts := ConsolidateDiscounts([]Entry{entry}, cfg.Title)
	if len(discounts) == 0 {
		return eval
	}

	eval.Result = Result{
		Strategy:  types.DiscountApplicationStrategyMaximum,
		Discounts: discounts,
	}
	return eval
}

func isNegative(value DiscountValue) bool {
	fixed, ok := value.(FixedAmountValue)
	return ok && fixed.Amount.LessThan(decimal.Zero)
}
