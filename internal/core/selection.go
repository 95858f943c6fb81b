package core

type SelectionSource string

const (
	SourceOverride SelectionSource = "override"
	SourceServer   SelectionSource = "server"
	SourceNone     SelectionSource = "none"
)

// ResolveSelection applies override -> server -> none precedence for one
// segment. store may be nil.
func ResolveSelection(store OverrideStore, seg Segment) (string, SelectionSource) {
	if store != nil {
		if id, ok := store.Get(seg.ID); ok && id != "" {
			return id, SourceOverride
		}
	}
	if seg.SelectedOptionID != "" {
		return seg.SelectedOptionID, SourceServer
	}
	return "", SourceNone
}

func EffectiveSelection(store OverrideStore, seg Segment) (string, bool) {
	id, src := ResolveSelection(store, seg)
	return id, src != SourceNone
}

// SelectedOption returns the option the segment currently resolves to. A
// stale selection id falls back to DefaultOption.
func SelectedOption(store OverrideStore, seg Segment) (Option, bool) {
	if id, ok := EffectiveSelection(store, seg); ok {
		if o, found := seg.Option(id); found {
			return o, true
		}
	}
	return DefaultOption(seg.Options)
}
