package bundle

import "github.com/samber/lo"

// ExpandUnits splits every line of quantity n into n lines of quantity 1. The copies
// keep the original line ID so GroupUnits can undo the expansion.
func ExpandUnits(lines []CartLine) []CartLine {
	return lo.FlatMap(lines, func(line CartLine, _ int) []CartLine {
		if line.Quantity <= 0 {
			return nil
		}
		unit := line
		unit.Quantity = 1
		return lo.Times(line.Quantity, func(_ int) CartLine {
			return unit
		})
	})
}

// GroupUnits merges lines sharing an ID back into one line, summing quantities.
// Groups keep the order in which their ID first appears.
func GroupUnits(units []CartLine) []CartLine {
	groups := lo.PartitionBy(units, func(unit CartLine) string {
		return unit.ID
	})
	return lo.Map(groups, func(group []CartLine, _ int) CartLine {
		line := group[0]
		line.Quantity = lo.SumBy(group, func(unit CartLine) int {
			return unit.Quantity
		})
		return line
	})
}
