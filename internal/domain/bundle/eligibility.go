package bundle

import "github.com/samber/lo"

// FilterEligible returns the lines that may take part in a bundle.
// Subscription lines never qualify. When the configuration names products only those
// products qualify, otherwise membership of a configured collection decides.
func FilterEligible(lines []CartLine, cfg Configuration) []CartLine {
	return lo.Filter(lines, func(line CartLine, _ int) bool {
		return isEligible(line, cfg)
	})
}

func isEligible(line CartLine, cfg Configuration) bool {
	if line.SellingPlan != nil {
		return false
	}
	if len(cfg.Products) > 0 {
		return lo.Contains(cfg.Products, line.Merchandise.ProductID)
	}
	return line.Merchandise.InAnyCollection
}
