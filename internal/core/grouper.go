package core

import "sort"

// Grouping is the partition of a segment list into booking groups and
// individually bookable segments.
type Grouping struct {
	BookingGroups []BookingGroup `json:"bookingGroups"`
	Individual    []Segment      `json:"individualSegments"`
}

// groupKey keeps synthesized singleton keys apart from real group ids, so a
// payload groupId can never collide with one.
type groupKey struct {
	id          string
	synthesized bool
}

func keyFor(s Segment) groupKey {
	id := s.BookingGroupID()
	if id == "" {
		return groupKey{id: s.ID, synthesized: true}
	}
	return groupKey{id: id}
}

// GroupSegments partitions segments by BookingGroupID. Only a real groupId
// shared by more than one segment forms a booking group; everything else is
// listed as an individual segment ordered by displaySequence.
func GroupSegments(segments []Segment) Grouping {
	var order []groupKey
	members := make(map[groupKey][]Segment)
	for _, s := range segments {
		k := keyFor(s)
		if _, seen := members[k]; !seen {
			order = append(order, k)
		}
		members[k] = append(members[k], s)
	}

	g := Grouping{
		BookingGroups: []BookingGroup{},
		Individual:    []Segment{},
	}
	for _, k := range order {
		segs := members[k]
		if k.synthesized || len(segs) < 2 {
			g.Individual = append(g.Individual, segs...)
			continue
		}
		g.BookingGroups = append(g.BookingGroups, BookingGroup{
			Key:       k.id,
			Segments:  segs,
			RoundTrip: anyRoundTrip(segs),
		})
	}

	sort.SliceStable(g.Individual, func(i, j int) bool {
		return g.Individual[i].DisplaySequence < g.Individual[j].DisplaySequence
	})
	sort.SliceStable(g.BookingGroups, func(i, j int) bool {
		return g.BookingGroups[i].Key < g.BookingGroups[j].Key
	})
	return g
}

func anyRoundTrip(segs []Segment) bool {
	for _, s := range segs {
		for _, o := range s.Options {
			if o.RoundTrip {
				return true
			}
		}
	}
	return false
}

// Rows lays the grouping out for display. Grouped mode lists booking groups
// first; sequential mode lists individual segments first.
func (g Grouping) Rows(mode ViewMode) []Row {
	groups := make([]Row, 0, len(g.BookingGroups))
	for i := range g.BookingGroups {
		bg := g.BookingGroups[i]
		groups = append(groups, Row{
			Kind:     RowBookingGroup,
			Label:    bg.Label(),
			Subtitle: bg.Subtitle(),
			Group:    &bg,
		})
	}
	singles := make([]Row, 0, len(g.Individual))
	for i := range g.Individual {
		s := g.Individual[i]
		singles = append(singles, Row{Kind: RowIndividual, Label: s.Title, Segment: &s})
	}

	if mode == ViewSequential {
		return append(singles, groups...)
	}
	return append(groups, singles...)
}

// Len is the number of segments across all groups and individuals.
func (g Grouping) Len() int {
	n := len(g.Individual)
	for _, bg := range g.BookingGroups {
		n += len(bg.Segments)
	}
	return n
}
