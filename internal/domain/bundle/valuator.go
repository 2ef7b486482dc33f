package bundle

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/thetrinh16698/coding-test-The-Trinh/internal/types"
)

// MoneyPrecision is the number of decimals computed money amounts are rounded to
const MoneyPrecision = 2

// ValueTier turns a resolved tier into a discount entry over the expanded units.
// It returns false when the match is the baseline or the discount type is unknown.
//
// A fixed bundle price is not clamped: when the units already cost less than the
// bundle price the entry carries a negative amount.
func ValueTier(match TierMatch, units []CartLine, cfg Configuration) (Entry, bool) {
	if match.Baseline {
		return Entry{}, false
	}
	tier := match.Tier

	var value DiscountValue
	switch cfg.DiscountType {
	case types.BundleDiscountTypePercentage:
		value = PercentageValue{Value: tier.Amount}
	case types.BundleDiscountTypeFixedAmount:
		value = FixedAmountValue{Amount: tier.Amount}
	case types.BundleDiscountTypeFixedBundlePrice:
		total := decimal.Sum(decimal.Zero, lo.Map(units, func(unit CartLine, _ int) decimal.Decimal {
			return unit.Subtotal()
		})...)
		value = FixedAmountValue{Amount: total.Sub(tier.Amount).Round(MoneyPrecision)}
	default:
		return Entry{}, false
	}

	return Entry{
		Message: lo.Ternary(tier.Title != "", tier.Title, cfg.Title),
		Value:   value,
		Lines:   GroupUnits(units),
	}, true
}
