// Package booking builds the booking-status mutations sent back to the trip
// service once a traveller has reserved a segment outside the app.
package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

var (
	ErrMissingEntity    = errors.New("entity id is required")
	ErrMissingReference = errors.New("booking reference is required")
	ErrInvalidDate      = errors.New("booked-on date must be yyyy-MM-dd")
)

type Status string

const StatusBooked Status = "booked"

// MarkBooked is the "mark as booked" mutation. RequestID lets the service
// drop duplicate deliveries.
type MarkBooked struct {
	RequestID string `json:"requestId"`
	TripID    string `json:"tripId,omitempty"`
	EntityID  string `json:"entityId"`
	OptionID  string `json:"optionId,omitempty"`
	Status    Status `json:"status"`
	Reference string `json:"reference"`
	BookedOn  string `json:"bookedOn"`
}

func NewMarkBooked(tripID, entityID, optionID, reference, bookedOn string) (*MarkBooked, error) {
	entityID = strings.TrimSpace(entityID)
	reference = strings.TrimSpace(reference)
	if entityID == "" {
		return nil, ErrMissingEntity
	}
	if reference == "" {
		return nil, ErrMissingReference
	}
	day, err := ParseDate(bookedOn)
	if err != nil {
		return nil, err
	}
	return &MarkBooked{
		RequestID: uuid.NewString(),
		TripID:    tripID,
		EntityID:  entityID,
		OptionID:  optionID,
		Status:    StatusBooked,
		Reference: reference,
		BookedOn:  day.Format(DateLayout),
	}, nil
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func Today() string {
	return time.Now().Format(DateLayout)
}
