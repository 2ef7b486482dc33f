package bundle

import "sort"

// TierMatch is the outcome of ResolveTier. Baseline means only the implicit zero
// threshold was met and no configured tier applies.
type TierMatch struct {
	Tier     Tier
	Baseline bool
}

func baselineMatch() TierMatch {
	return TierMatch{Baseline: true}
}

// SortTiers returns a copy of tiers sorted by quantity and then, stably, by amount
// descending. The result is ordered by amount first, quantity breaking ties, so among
// tiers sharing a threshold the highest amount comes first.
func SortTiers(tiers []Tier) []Tier {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Quantity < sorted[j].Quantity
	})
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})
	return sorted
}

// ResolveTier picks the tier with the highest quantity threshold not above unitCount.
// On equal thresholds the first tier in SortTiers order wins.
func ResolveTier(unitCount int, tiers []Tier) TierMatch {
	match := baselineMatch()
	for _, tier := range SortTiers(tiers) {
		// thresholds below the zero baseline can never win
		if tier.Quantity < 0 || tier.Quantity > unitCount {
			continue
		}
		if match.Baseline || tier.Quantity > match.Tier.Quantity {
			match = TierMatch{Tier: tier}
		}
	}
	return match
}
