package types

import (
	"github.com/samber/lo"
	ierr "github.com/thetrinh16698/coding-test-The-Trinh/internal/errors"
)

// BundleDiscountType is how a tier's amount is interpreted
type BundleDiscountType string

const (
	// BundleDiscountTypePercentage deducts tier.amount percent from every target
	BundleDiscountTypePercentage BundleDiscountType = "PERCENTAGE"
	// BundleDiscountTypeFixedAmount deducts tier.amount once from the targets
	BundleDiscountTypeFixedAmount BundleDiscountType = "FIXED_AMOUNT"
	// BundleDiscountTypeFixedBundlePrice makes the targets cost exactly tier.amount
	BundleDiscountTypeFixedBundlePrice BundleDiscountType = "FIXED_BUNDLE_PRICE"
)

func (t BundleDiscountType) String() string {
	return string(t)
}

func (t BundleDiscountType) Validate() error {
	allowed := []BundleDiscountType{
		BundleDiscountTypePercentage,
		BundleDiscountTypeFixedAmount,
		BundleDiscountTypeFixedBundlePrice,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid discount type").
			WithHintf("Discount type must be one of %v", allowed).
			WithReportableDetails(map[string]any{
				"discount_type": t,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DiscountApplicationStrategy tells the platform how to apply the returned discounts
type DiscountApplicationStrategy string

const (
	DiscountApplicationStrategyFirst   DiscountApplicationStrategy = "FIRST"
	DiscountApplicationStrategyMaximum DiscountApplicationStrategy = "MAXIMUM"
)

// NegativeDiscountPolicy decides what happens when a fixed bundle price is above the
// current total of the bundled lines
type NegativeDiscountPolicy string

const (
	// NegativeDiscountPolicySkip drops the discount and yields the empty result
	NegativeDiscountPolicySkip NegativeDiscountPolicy = "skip"
	// NegativeDiscountPolicyPassthrough emits the negative amount as-is
	NegativeDiscountPolicyPassthrough NegativeDiscountPolicy = "passthrough"
)

func (p NegativeDiscountPolicy) Validate() error {
	allowed := []NegativeDiscountPolicy{
		NegativeDiscountPolicySkip,
		NegativeDiscountPolicyPassthrough,
	}
	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid negative discount policy").
			WithHintf("Negative discount policy must be one of %v", allowed).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// MerchandiseTypeProductVariant is the only merchandise type a bundle can target
const MerchandiseTypeProductVariant = "ProductVariant"
