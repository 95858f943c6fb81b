package core

import "testing"

func TestResolveSelection_OverrideWins(t *testing.T) {
	store := mapStore{}
	store.Set("seg1", "optX")
	seg := Segment{ID: "seg1", SelectedOptionID: "optY"}

	id, src := ResolveSelection(store, seg)
	if id != "optX" || src != SourceOverride {
		t.Errorf("expected optX from override, got %s from %s", id, src)
	}
}

func TestResolveSelection_ServerThenNone(t *testing.T) {
	seg := Segment{ID: "seg1", SelectedOptionID: "optY"}

	id, src := ResolveSelection(mapStore{}, seg)
	if id != "optY" || src != SourceServer {
		t.Errorf("expected optY from server, got %s from %s", id, src)
	}

	id, ok := EffectiveSelection(nil, Segment{ID: "seg2"})
	if ok || id != "" {
		t.Errorf("expected no selection, got %q", id)
	}
}

func TestResolveSelection_LastWriteWins(t *testing.T) {
	store := mapStore{}
	store.Set("seg1", "a")
	store.Set("seg1", "b")

	id, _ := EffectiveSelection(store, Segment{ID: "seg1"})
	if id != "b" {
		t.Errorf("expected b, got %s", id)
	}
}

func TestSelectedOption_StaleFallsBackToDefault(t *testing.T) {
	seg := Segment{
		ID:               "seg1",
		SelectedOptionID: "removed",
		Options:          []Option{{ID: "a", Priority: 2}, {ID: "b", Priority: 1}},
	}

	opt, ok := SelectedOption(nil, seg)
	if !ok || opt.ID != "b" {
		t.Errorf("expected default b, got %q", opt.ID)
	}
}
