package booking

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewMarkBooked(t *testing.T) {
	m, err := NewMarkBooked("trip-1", " seg_out ", "opt_AC_100", " ABC123 ", "2026-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.EntityID != "seg_out" || m.Reference != "ABC123" || m.BookedOn != "2026-06-01" || m.Status != StatusBooked {
		t.Errorf("unexpected mutation %+v", m)
	}
	if _, err := uuid.Parse(m.RequestID); err != nil {
		t.Errorf("expected uuid request id, got %q", m.RequestID)
	}

	other, _ := NewMarkBooked("trip-1", "seg_out", "", "ABC123", "2026-06-01")
	if other.RequestID == m.RequestID {
		t.Error("expected distinct request ids")
	}
}

func TestNewMarkBooked_Rejects(t *testing.T) {
	cases := []struct {
		entity, ref, date string
		want              error
	}{
		{"", "ABC", "2026-06-01", ErrMissingEntity},
		{"seg", "  ", "2026-06-01", ErrMissingReference},
		{"seg", "ABC", "06/01/2026", ErrInvalidDate},
		{"seg", "ABC", "2026-6-1", ErrInvalidDate},
	}
	for _, c := range cases {
		if _, err := NewMarkBooked("t", c.entity, "", c.ref, c.date); !errors.Is(err, c.want) {
			t.Errorf("%+v: expected %v, got %v", c, c.want, err)
		}
	}
}
