package core

import (
	"errors"
	"fmt"
)

type SegmentKind string

const (
	KindTransport     SegmentKind = "transport"
	KindAccommodation SegmentKind = "accommodation"
)

type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentPoints PaymentType = "points"
	PaymentHybrid PaymentType = "hybrid"
)

// ViewMode decides where booking groups are placed relative to individual
// segments when a grouping is laid out as rows.
type ViewMode string

const (
	ViewGrouped    ViewMode = "grouped"
	ViewSequential ViewMode = "sequential"
)

func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewGrouped, ViewSequential:
		return ViewMode(s), nil
	case "":
		return ViewGrouped, nil
	}
	return "", fmt.Errorf("unknown view mode %q (want grouped or sequential)", s)
}

var (
	ErrUnknownSegment = errors.New("unknown segment")
	ErrUnknownOption  = errors.New("unknown option")
)

// OverrideStore holds client-side selections keyed by entity id. A value set
// through Set must be returned by every later Get for the same key.
type OverrideStore interface {
	Get(entityID string) (string, bool)
	Set(entityID, optionID string)
}

// FlexibleCost is a price in cash, loyalty points, or both. A nil CashAmount
// means the cash price is unknown; zero is a real price.
type FlexibleCost struct {
	CashAmount    *float64    `json:"cashAmount,omitempty" yaml:"cashAmount,omitempty"`
	Currency      string      `json:"currency,omitempty" yaml:"currency,omitempty"`
	PointsAmount  *int        `json:"pointsAmount,omitempty" yaml:"pointsAmount,omitempty"`
	PointsProgram string      `json:"pointsProgram,omitempty" yaml:"pointsProgram,omitempty"`
	Payment       PaymentType `json:"paymentType,omitempty" yaml:"paymentType,omitempty"`
}

// PaymentType returns the declared payment type, or derives it from the
// amounts that are present.
func (c FlexibleCost) PaymentType() PaymentType {
	if c.Payment != "" {
		return c.Payment
	}
	switch {
	case c.PointsAmount != nil && c.CashAmount != nil:
		return PaymentHybrid
	case c.PointsAmount != nil:
		return PaymentPoints
	}
	return PaymentCash
}

func (c FlexibleCost) Cash() float64 {
	if c.CashAmount == nil {
		return 0
	}
	return *c.CashAmount
}

func (c FlexibleCost) Points() int {
	if c.PointsAmount == nil {
		return 0
	}
	return *c.PointsAmount
}

func (c FlexibleCost) Validate() error {
	var errs []error
	if c.CashAmount != nil && *c.CashAmount < 0 {
		errs = append(errs, fmt.Errorf("cashAmount must not be negative, got %v", *c.CashAmount))
	}
	if c.PointsAmount != nil && *c.PointsAmount < 0 {
		errs = append(errs, fmt.Errorf("pointsAmount must not be negative, got %d", *c.PointsAmount))
	}
	if c.PointsAmount != nil && c.PointsProgram == "" {
		errs = append(errs, errors.New("pointsProgram is required when pointsAmount is set"))
	}
	switch c.PaymentType() {
	case PaymentCash, PaymentHybrid:
	case PaymentPoints:
		if c.PointsAmount == nil || c.PointsProgram == "" {
			errs = append(errs, errors.New("points payment requires pointsAmount and pointsProgram"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown paymentType %q", c.Payment))
	}
	return errors.Join(errs...)
}

type Option struct {
	ID                   string       `json:"id" yaml:"id"`
	Title                string       `json:"title,omitempty" yaml:"title,omitempty"`
	Provider             string       `json:"provider,omitempty" yaml:"provider,omitempty"`
	Priority             int          `json:"priority" yaml:"priority"`
	RecommendedSelection bool         `json:"recommendedSelection,omitempty" yaml:"recommendedSelection,omitempty"`
	RoundTrip            bool         `json:"roundTrip,omitempty" yaml:"roundTrip,omitempty"`
	GroupID              string       `json:"groupId,omitempty" yaml:"groupId,omitempty"`
	Cost                 FlexibleCost `json:"cost" yaml:"cost"`
}

type Segment struct {
	ID               string      `json:"id" yaml:"id"`
	Kind             SegmentKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	Title            string      `json:"title,omitempty" yaml:"title,omitempty"`
	Date             string      `json:"date,omitempty" yaml:"date,omitempty"`
	DisplaySequence  int         `json:"displaySequence,omitempty" yaml:"displaySequence,omitempty"`
	GroupID          string      `json:"groupId,omitempty" yaml:"groupId,omitempty"`
	Options          []Option    `json:"options" yaml:"options"`
	SelectedOptionID string      `json:"selectedOptionId,omitempty" yaml:"selectedOptionId,omitempty"`
}

// BookingGroupID is the segment's groupId, or the first groupId carried by
// one of its options when the segment has none.
func (s Segment) BookingGroupID() string {
	if s.GroupID != "" {
		return s.GroupID
	}
	for _, o := range s.Options {
		if o.GroupID != "" {
			return o.GroupID
		}
	}
	return ""
}

func (s Segment) Option(id string) (Option, bool) {
	for _, o := range s.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

type Flight struct {
	ID           string `json:"id" yaml:"id"`
	Airline      string `json:"airline,omitempty" yaml:"airline,omitempty"`
	FlightNumber string `json:"flightNumber,omitempty" yaml:"flightNumber,omitempty"`
	From         string `json:"from,omitempty" yaml:"from,omitempty"`
	To           string `json:"to,omitempty" yaml:"to,omitempty"`
	Date         string `json:"date,omitempty" yaml:"date,omitempty"`
	Time         string `json:"time,omitempty" yaml:"time,omitempty"`
}

type LocalTransport struct {
	ID          string `json:"id" yaml:"id"`
	Mode        string `json:"mode,omitempty" yaml:"mode,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Date        string `json:"date,omitempty" yaml:"date,omitempty"`
	Time        string `json:"time,omitempty" yaml:"time,omitempty"`
}

type Recommendation struct {
	TripID              string           `json:"tripId" yaml:"tripId"`
	Transport           []Segment        `json:"transport,omitempty" yaml:"transport,omitempty"`
	Accommodations      []Segment        `json:"accommodations,omitempty" yaml:"accommodations,omitempty"`
	Flights             []Flight         `json:"flights,omitempty" yaml:"flights,omitempty"`
	LocalTransportation []LocalTransport `json:"localTransportation,omitempty" yaml:"localTransportation,omitempty"`
}

// Segment looks an entity up across transport and accommodation segments.
func (r *Recommendation) Segment(id string) (Segment, bool) {
	for _, list := range [][]Segment{r.Transport, r.Accommodations} {
		for _, s := range list {
			if s.ID == id {
				return s, true
			}
		}
	}
	return Segment{}, false
}

type BookingGroup struct {
	Key       string    `json:"key"`
	Segments  []Segment `json:"segments"`
	RoundTrip bool      `json:"roundTrip"`
}

func (g BookingGroup) Label() string {
	if g.RoundTrip {
		return "Round Trip"
	}
	return "Book Together"
}

func (g BookingGroup) Subtitle() string {
	if g.RoundTrip {
		return fmt.Sprintf("%d segments on one round-trip fare", len(g.Segments))
	}
	return fmt.Sprintf("%d segments must be booked together", len(g.Segments))
}

type TimelineKind string

const (
	TimelineFlight TimelineKind = "flight"
	TimelineLocal  TimelineKind = "localTransportation"
)

type TimelineItem struct {
	Kind   TimelineKind    `json:"kind"`
	Title  string          `json:"title"`
	Date   string          `json:"date,omitempty"`
	Time   string          `json:"time,omitempty"`
	Flight *Flight         `json:"flight,omitempty"`
	Local  *LocalTransport `json:"localTransportation,omitempty"`
}

type CostTotals struct {
	Cash            float64        `json:"cash"`
	Points          int            `json:"points"`
	PointsByProgram map[string]int `json:"pointsByProgram,omitempty"`
}

func (t *CostTotals) add(c FlexibleCost) {
	t.Cash += c.Cash()
	if c.PointsAmount == nil {
		return
	}
	t.Points += *c.PointsAmount
	if t.PointsByProgram == nil {
		t.PointsByProgram = make(map[string]int)
	}
	t.PointsByProgram[c.PointsProgram] += *c.PointsAmount
}

func (t CostTotals) Plus(o CostTotals) CostTotals {
	out := CostTotals{Cash: t.Cash + o.Cash, Points: t.Points + o.Points}
	for _, m := range []map[string]int{t.PointsByProgram, o.PointsByProgram} {
		for program, pts := range m {
			if out.PointsByProgram == nil {
				out.PointsByProgram = make(map[string]int)
			}
			out.PointsByProgram[program] += pts
		}
	}
	return out
}

type PlanOptions struct {
	ShowAll bool
	View    ViewMode
}

type SegmentView struct {
	ID              string   `json:"id"`
	Title           string   `json:"title,omitempty"`
	Date            string   `json:"date,omitempty"`
	GroupID         string   `json:"groupId,omitempty"`
	Selected        string   `json:"selectedOptionId,omitempty"`
	SelectionSource string   `json:"selectionSource"`
	DefaultOptionID string   `json:"defaultOptionId,omitempty"`
	Options         []Option `json:"options"`
}

type RowKind string

const (
	RowBookingGroup RowKind = "bookingGroup"
	RowIndividual   RowKind = "individual"
)

type Row struct {
	Kind     RowKind       `json:"kind"`
	Label    string        `json:"label,omitempty"`
	Subtitle string        `json:"subtitle,omitempty"`
	Group    *BookingGroup `json:"group,omitempty"`
	Segment  *Segment      `json:"segment,omitempty"`
}

type TripPlan struct {
	TripID         string         `json:"tripId"`
	View           ViewMode       `json:"view"`
	Rows           []Row          `json:"rows"`
	Transport      []SegmentView  `json:"transport"`
	Accommodations []SegmentView  `json:"accommodations"`
	Timeline       []TimelineItem `json:"timeline"`
	TransportCost  CostTotals     `json:"transportCost"`
	StayCost       CostTotals     `json:"accommodationCost"`
	TotalCost      CostTotals     `json:"totalCost"`
}
