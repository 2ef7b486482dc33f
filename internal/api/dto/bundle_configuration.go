package dto

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/domain/bundle"
	ierr "github.com/thetrinh16698/coding-test-The-Trinh/internal/errors"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/types"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/validator"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BundleConfiguration is the merchant-defined bundle stored in the discount metafield
type BundleConfiguration struct {
	Title        string                   `json:"title"`
	DiscountType types.BundleDiscountType `json:"discountType" validate:"required"`
	Products     []string                 `json:"products"`
	Collections  []string                 `json:"collections"`
	Tiers        []TierConfiguration      `json:"tiers"`
}

type TierConfiguration struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Quantity int             `json:"quantity"`
}

// ParseConfiguration decodes a raw metafield value and checks the fields every
// tier depends on. Individual tiers are checked by ValidateTiers.
func ParseConfiguration(v *validator.Validator, raw string) (*BundleConfiguration, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ierr.NewError("bundle configuration is missing").
			WithHint("The discount has no bundle configuration").
			Mark(ierr.ErrNotFound)
	}

	var cfg BundleConfiguration
	if err := json.UnmarshalFromString(raw, &cfg); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("decode bundle configuration").
			WithHint("Bundle configuration is not valid JSON").
			Mark(ierr.ErrValidation)
	}

	if err := cfg.Validate(v); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *BundleConfiguration) Validate(v *validator.Validator) error {
	if err := v.Struct(c); err != nil {
		return err
	}
	return c.DiscountType.Validate()
}

// ValidateTiers reports every tier that can never apply. Such tiers are left out by
// ToConfiguration while the others still apply.
func (c *BundleConfiguration) ValidateTiers() error {
	details := make(map[string]any)
	for i, tier := range c.Tiers {
		for field, problem := range c.tierProblems(tier) {
			details[fmt.Sprintf("tiers[%d].%s", i, field)] = problem
		}
	}
	if len(details) == 0 {
		return nil
	}

	invalid := lo.CountBy(c.Tiers, func(tier TierConfiguration) bool {
		return len(c.tierProblems(tier)) > 0
	})
	return ierr.NewError("bundle configuration has invalid tiers").
		WithHintf("%d of %d tiers can never apply", invalid, len(c.Tiers)).
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
}

func (c *BundleConfiguration) tierProblems(tier TierConfiguration) map[string]string {
	problems := make(map[string]string)
	if tier.Quantity < 0 {
		problems["quantity"] = "must not be negative"
	}
	if tier.Amount.IsNegative() {
		problems["amount"] = "must not be negative"
	} else if c.DiscountType == types.BundleDiscountTypePercentage && tier.Amount.GreaterThan(maxPercentage) {
		problems["amount"] = "percentage must not exceed 100"
	}
	return problems
}

var maxPercentage = decimal.NewFromInt(100)

func (c *BundleConfiguration) ToConfiguration() bundle.Configuration {
	return bundle.Configuration{
		Title:        c.Title,
		DiscountType: c.DiscountType,
		Products:     lo.Compact(c.Products),
		Collections:  lo.Compact(c.Collections),
		Tiers: lo.FilterMap(c.Tiers, func(tier TierConfiguration, _ int) (bundle.Tier, bool) {
			return bundle.Tier{
				Quantity: tier.Quantity,
				Amount:   tier.Amount,
				Title:    tier.Title,
			}, len(c.tierProblems(tier)) == 0
		}),
	}
}
