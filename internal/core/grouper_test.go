package core

import "testing"

func TestGroupSegments_SharedGroupIsBookingGroup(t *testing.T) {
	segs := []Segment{
		{ID: "s1", GroupID: "g1", Options: []Option{{ID: "o1", Priority: 1}}},
		{ID: "s2", GroupID: "g1", Options: []Option{{ID: "o2", Priority: 2}}},
	}

	g := GroupSegments(segs)
	if len(g.BookingGroups) != 1 {
		t.Fatalf("expected 1 booking group, got %d", len(g.BookingGroups))
	}
	if g.BookingGroups[0].Key != "g1" || len(g.BookingGroups[0].Segments) != 2 {
		t.Errorf("unexpected group: %+v", g.BookingGroups[0])
	}
	if len(g.Individual) != 0 {
		t.Errorf("expected no individual segments, got %d", len(g.Individual))
	}
}

func TestGroupSegments_LoneGroupIDIsIndividual(t *testing.T) {
	segs := []Segment{
		{ID: "s1", GroupID: "solo"},
		{ID: "s2"},
	}

	g := GroupSegments(segs)
	if len(g.BookingGroups) != 0 {
		t.Errorf("expected no booking groups, got %d", len(g.BookingGroups))
	}
	if len(g.Individual) != 2 {
		t.Errorf("expected 2 individual segments, got %d", len(g.Individual))
	}
}

func TestGroupSegments_GroupIDMatchingSegmentIDDoesNotCollide(t *testing.T) {
	segs := []Segment{
		{ID: "s1"},
		{ID: "s2", GroupID: "s1"},
		{ID: "s3", GroupID: "s1"},
	}

	g := GroupSegments(segs)
	if len(g.BookingGroups) != 1 || len(g.BookingGroups[0].Segments) != 2 {
		t.Fatalf("expected one booking group of 2, got %+v", g.BookingGroups)
	}
	if len(g.Individual) != 1 || g.Individual[0].ID != "s1" {
		t.Errorf("expected s1 individual, got %+v", g.Individual)
	}
}

func TestGroupSegments_PartitionsEverySegment(t *testing.T) {
	segs := []Segment{
		{ID: "a", GroupID: "g2"},
		{ID: "b"},
		{ID: "c", GroupID: "g1"},
		{ID: "d", GroupID: "g2"},
		{ID: "e", GroupID: "g3"},
		{ID: "f", GroupID: "g1"},
	}

	g := GroupSegments(segs)
	if g.Len() != len(segs) {
		t.Fatalf("expected %d segments, got %d", len(segs), g.Len())
	}

	seen := map[string]int{}
	for _, bg := range g.BookingGroups {
		for _, s := range bg.Segments {
			seen[s.ID]++
		}
	}
	for _, s := range g.Individual {
		seen[s.ID]++
	}
	for _, s := range segs {
		if seen[s.ID] != 1 {
			t.Errorf("segment %s appears %d times", s.ID, seen[s.ID])
		}
	}

	if g.BookingGroups[0].Key != "g1" || g.BookingGroups[1].Key != "g2" {
		t.Errorf("expected groups ordered by key, got %s, %s", g.BookingGroups[0].Key, g.BookingGroups[1].Key)
	}
}

func TestGroupSegments_IndividualsByDisplaySequence(t *testing.T) {
	segs := []Segment{
		{ID: "third", DisplaySequence: 3},
		{ID: "unset"},
		{ID: "first", DisplaySequence: 1},
		{ID: "also-unset"},
	}

	g := GroupSegments(segs)
	got := make([]string, len(g.Individual))
	for i, s := range g.Individual {
		got[i] = s.ID
	}
	equalIDs(t, got, "unset", "also-unset", "first", "third")
}

func TestGroupSegments_RoundTripLabel(t *testing.T) {
	segs := []Segment{
		{ID: "out", GroupID: "rt", Options: []Option{{ID: "o1", RoundTrip: true}}},
		{ID: "back", GroupID: "rt", Options: []Option{{ID: "o2"}}},
		{ID: "x1", GroupID: "multi", Options: []Option{{ID: "o3"}}},
		{ID: "x2", GroupID: "multi", Options: []Option{{ID: "o4"}}},
	}

	g := GroupSegments(segs)
	byKey := map[string]BookingGroup{}
	for _, bg := range g.BookingGroups {
		byKey[bg.Key] = bg
	}
	if !byKey["rt"].RoundTrip || byKey["rt"].Label() != "Round Trip" {
		t.Errorf("expected rt to be a round trip, got %+v", byKey["rt"])
	}
	if byKey["multi"].RoundTrip {
		t.Error("expected multi not to be a round trip")
	}
}

func TestGrouping_RowsByViewMode(t *testing.T) {
	segs := []Segment{
		{ID: "solo", Title: "Train"},
		{ID: "s1", GroupID: "g1"},
		{ID: "s2", GroupID: "g1"},
	}
	g := GroupSegments(segs)

	grouped := g.Rows(ViewGrouped)
	if len(grouped) != 2 || grouped[0].Kind != RowBookingGroup || grouped[1].Kind != RowIndividual {
		t.Errorf("grouped view: unexpected rows %+v", grouped)
	}

	sequential := g.Rows(ViewSequential)
	if len(sequential) != 2 || sequential[0].Kind != RowIndividual || sequential[1].Kind != RowBookingGroup {
		t.Errorf("sequential view: unexpected rows %+v", sequential)
	}
}

func TestParseViewMode(t *testing.T) {
	if m, err := ParseViewMode(""); err != nil || m != ViewGrouped {
		t.Errorf("expected grouped default, got %q, %v", m, err)
	}
	if _, err := ParseViewMode("tabs"); err == nil {
		t.Error("expected error for unknown view mode")
	}
}

func TestGroupSegments_OptionGroupIDWhenSegmentHasNone(t *testing.T) {
	segs := []Segment{
		{ID: "out", GroupID: "fare", Options: []Option{{ID: "o1", GroupID: "fare"}}},
		{ID: "back", Options: []Option{{ID: "o2", GroupID: "fare"}}},
		{ID: "hotel", Options: []Option{{ID: "o3", GroupID: "stay"}}},
		{ID: "taxi", GroupID: "cab", Options: []Option{{ID: "o4", GroupID: "fare"}}},
	}

	g := GroupSegments(segs)
	if len(g.BookingGroups) != 1 {
		t.Fatalf("expected 1 booking group, got %d", len(g.BookingGroups))
	}
	equalIDs(t, segmentIDs(g.BookingGroups[0].Segments), "out", "back")
	equalIDs(t, segmentIDs(g.Individual), "hotel", "taxi")
}

func segmentIDs(segs []Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.ID
	}
	return out
}
