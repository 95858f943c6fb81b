package core

// AggregateCost sums the cost of each segment's selected option. Segments
// without a resolvable selection use DefaultOption. Points are summed across
// programs into one total; PointsByProgram keeps the per-program split.
func AggregateCost(segments []Segment, store OverrideStore) CostTotals {
	var totals CostTotals
	for _, seg := range segments {
		opt, ok := SelectedOption(store, seg)
		if !ok {
			continue
		}
		totals.add(opt.Cost)
	}
	return totals
}
