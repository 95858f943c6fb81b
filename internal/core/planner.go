package core

import (
	"fmt"

	"go.uber.org/zap"
)

// Planner derives the full selection view for a recommendation payload on
// top of an override store.
type Planner struct {
	store  OverrideStore
	logger *zap.Logger
}

func NewPlanner(store OverrideStore, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{store: store, logger: logger}
}

func (p *Planner) Plan(rec *Recommendation, opts PlanOptions) *TripPlan {
	if opts.View == "" {
		opts.View = ViewGrouped
	}

	grouping := GroupSegments(rec.Transport)
	plan := &TripPlan{
		TripID:         rec.TripID,
		View:           opts.View,
		Rows:           grouping.Rows(opts.View),
		Transport:      p.segmentViews(rec.Transport, opts.ShowAll),
		Accommodations: p.segmentViews(rec.Accommodations, opts.ShowAll),
		Timeline:       MergeTimeline(rec.Flights, rec.LocalTransportation),
		TransportCost:  AggregateCost(rec.Transport, p.store),
		StayCost:       AggregateCost(rec.Accommodations, p.store),
	}
	plan.TotalCost = plan.TransportCost.Plus(plan.StayCost)

	p.logger.Debug("plan computed",
		zap.String("trip_id", rec.TripID),
		zap.String("view", string(opts.View)),
		zap.Int("booking_groups", len(grouping.BookingGroups)),
		zap.Int("individual_segments", len(grouping.Individual)),
		zap.Int("timeline_items", len(plan.Timeline)),
		zap.Float64("total_cash", plan.TotalCost.Cash),
		zap.Int("total_points", plan.TotalCost.Points),
	)
	return plan
}

func (p *Planner) segmentViews(segments []Segment, showAll bool) []SegmentView {
	views := make([]SegmentView, 0, len(segments))
	for _, seg := range segments {
		views = append(views, p.SegmentView(seg, showAll))
	}
	return views
}

func (p *Planner) SegmentView(seg Segment, showAll bool) SegmentView {
	selected, src := ResolveSelection(p.store, seg)
	view := SegmentView{
		ID:              seg.ID,
		Title:           seg.Title,
		Date:            seg.Date,
		GroupID:         seg.BookingGroupID(),
		Selected:        selected,
		SelectionSource: string(src),
		Options:         VisibleOptions(seg.Options, selected, showAll),
	}
	if def, ok := DefaultOption(seg.Options); ok {
		view.DefaultOptionID = def.ID
	}
	if selected != "" {
		if _, ok := seg.Option(selected); !ok {
			p.logger.Warn("stale selection, showing all options",
				zap.String("segment_id", seg.ID),
				zap.String("option_id", selected),
				zap.String("source", string(src)),
			)
		}
	}
	return view
}

// Select records a client-side choice for one segment. The segment and option
// must exist in the payload; the write itself cannot fail.
func (p *Planner) Select(rec *Recommendation, entityID, optionID string) error {
	seg, ok := rec.Segment(entityID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSegment, entityID)
	}
	if _, ok := seg.Option(optionID); !ok {
		return fmt.Errorf("%w: %s on segment %s", ErrUnknownOption, optionID, entityID)
	}
	if p.store == nil {
		return fmt.Errorf("no override store configured")
	}
	p.store.Set(entityID, optionID)
	p.logger.Info("selection recorded",
		zap.String("trip_id", rec.TripID),
		zap.String("segment_id", entityID),
		zap.String("option_id", optionID),
	)
	return nil
}
