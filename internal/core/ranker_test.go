package core

import "testing"

type mapStore map[string]string

func (m mapStore) Get(id string) (string, bool) {
	v, ok := m[id]
	return v, ok
}

func (m mapStore) Set(id, option string) { m[id] = option }

func ids(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.ID
	}
	return out
}

func equalIDs(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRankOptions_RecommendedFirst(t *testing.T) {
	opts := []Option{
		{ID: "a", Priority: 2},
		{ID: "b", Priority: 1, RecommendedSelection: true},
	}

	equalIDs(t, ids(RankOptions(opts)), "b", "a")
}

func TestRankOptions_RecommendedBeatsPriority(t *testing.T) {
	opts := []Option{
		{ID: "cheap", Priority: 0},
		{ID: "mid", Priority: 3},
		{ID: "rec", Priority: 99, RecommendedSelection: true},
	}

	ranked := RankOptions(opts)
	if ranked[0].ID != "rec" {
		t.Errorf("expected rec first, got %s", ranked[0].ID)
	}
}

func TestRankOptions_StableOnTies(t *testing.T) {
	opts := []Option{
		{ID: "x", Priority: 1},
		{ID: "y", Priority: 1},
		{ID: "z", Priority: 0},
		{ID: "w", Priority: 1},
	}

	first := RankOptions(opts)
	equalIDs(t, ids(first), "z", "x", "y", "w")

	again := RankOptions(first)
	equalIDs(t, ids(again), ids(first)...)
}

func TestRankOptions_DoesNotMutateInput(t *testing.T) {
	opts := []Option{{ID: "a", Priority: 5}, {ID: "b", Priority: 1}}

	_ = RankOptions(opts)
	equalIDs(t, ids(opts), "a", "b")
}

func TestVisibleOptions_NarrowsToSelection(t *testing.T) {
	opts := []Option{{ID: "a", Priority: 1}, {ID: "b", Priority: 2}}

	equalIDs(t, ids(VisibleOptions(opts, "b", false)), "b")
	equalIDs(t, ids(VisibleOptions(opts, "b", true)), "a", "b")
	equalIDs(t, ids(VisibleOptions(opts, "", false)), "a", "b")
}

func TestVisibleOptions_StaleSelectionShowsAll(t *testing.T) {
	opts := []Option{{ID: "a", Priority: 1}, {ID: "b", Priority: 2}}

	equalIDs(t, ids(VisibleOptions(opts, "gone", false)), "a", "b")
}

func TestDefaultOption_IgnoresRecommendation(t *testing.T) {
	opts := []Option{
		{ID: "rec", Priority: 5, RecommendedSelection: true},
		{ID: "low", Priority: 1},
		{ID: "low2", Priority: 1},
	}

	def, ok := DefaultOption(opts)
	if !ok || def.ID != "low" {
		t.Errorf("expected low, got %q (ok=%v)", def.ID, ok)
	}

	if _, ok := DefaultOption(nil); ok {
		t.Error("expected no default for empty options")
	}
}
