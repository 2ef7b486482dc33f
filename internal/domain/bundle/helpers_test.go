package bundle

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func newLine(id, variantID, productID string, quantity int, cost string) CartLine {
	return CartLine{
		ID:       id,
		Quantity: quantity,
		Cost:     decimal.RequireFromString(cost),
		Merchandise: Variant{
			ID:        variantID,
			ProductID: productID,
		},
	}
}

func newTier(quantity int, amount int64, title string) Tier {
	return Tier{Quantity: quantity, Amount: decimal.NewFromInt(amount), Title: title}
}

func quantitiesByID(lines []CartLine) map[string]int {
	return lo.SliceToMap(lines, func(line CartLine) (string, int) {
		return line.ID, line.Quantity
	})
}
