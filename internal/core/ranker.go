package core

import "sort"

// RankOptions returns a copy of options ordered recommended-first, then by
// ascending priority. Ties keep their input order.
func RankOptions(options []Option) []Option {
	ranked := make([]Option, len(options))
	copy(ranked, options)
	sort.SliceStable(ranked, func(i, j int) bool {
		return optionLess(ranked[i], ranked[j])
	})
	return ranked
}

func optionLess(a, b Option) bool {
	if a.RecommendedSelection != b.RecommendedSelection {
		return a.RecommendedSelection
	}
	return a.Priority < b.Priority
}

// VisibleOptions narrows the ranked list to the selected option unless
// showAll is set. A selection that matches no option shows everything.
func VisibleOptions(options []Option, selectedID string, showAll bool) []Option {
	ranked := RankOptions(options)
	if showAll || selectedID == "" {
		return ranked
	}
	for _, o := range ranked {
		if o.ID == selectedID {
			return []Option{o}
		}
	}
	return ranked
}

// DefaultOption is the algorithmic fallback when nothing is selected: the
// lowest priority wins, first in input order on ties. The recommendation
// flag does not take part.
func DefaultOption(options []Option) (Option, bool) {
	if len(options) == 0 {
		return Option{}, false
	}
	best := options[0]
	for _, o := range options[1:] {
		if o.Priority < best.Priority {
			best = o
		}
	}
	return best, true
}
