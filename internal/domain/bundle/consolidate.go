package bundle

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ConsolidateTargets merges targets sharing a variant, summing their quantities.
// Output order follows the first occurrence of each variant.
func ConsolidateTargets(targets []Target) []Target {
	groups := lo.PartitionBy(targets, func(target Target) string {
		return target.VariantID
	})
	return lo.Map(groups, func(group []Target, _ int) Target {
		return Target{
			VariantID: group[0].VariantID,
			Quantity: lo.SumBy(group, func(target Target) int {
				return target.Quantity
			}),
		}
	})
}

// ConsolidateDiscounts folds computed entries into the discount list returned to the
// platform, which allows a single discount line per strategy. Several entries are
// priced into one fixed amount titled fallbackTitle.
func ConsolidateDiscounts(entries []Entry, fallbackTitle string) []Discount {
	switch len(entries) {
	case 0:
		return []Discount{}
	case 1:
		entry := entries[0]
		return []Discount{{
			Message: entry.Message,
			Value:   entry.Value,
			Targets: ConsolidateTargets(targetsOf(entry.Lines)),
		}}
	}

	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entryAmount(entry))
	}

	return []Discount{{
		Message: fallbackTitle,
		Value:   FixedAmountValue{Amount: total.Round(MoneyPrecision)},
		Targets: ConsolidateTargets(lo.FlatMap(entries, func(entry Entry, _ int) []Target {
			return targetsOf(entry.Lines)
		})),
	}}
}

// entryAmount prices an entry in money. A fixed amount counts once per target line.
func entryAmount(entry Entry) decimal.Decimal {
	amount := decimal.Zero
	for _, line := range entry.Lines {
		switch value := entry.Value.(type) {
		case PercentageValue:
			amount = amount.Add(line.Subtotal().Mul(value.Value).Div(hundred))
		case FixedAmountValue:
			amount = amount.Add(value.Amount)
		}
	}
	return amount
}

func targetsOf(lines []CartLine) []Target {
	return lo.Map(lines, func(line CartLine, _ int) Target {
		return Target{
			VariantID: line.Merchandise.ID,
			Quantity:  line.Quantity,
		}
	})
}
