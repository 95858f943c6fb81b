package commands

import (
	"fmt"

	"github.com/beetlebot/itinerary-cli/internal/booking"
	"github.com/beetlebot/itinerary-cli/internal/core"
	"github.com/beetlebot/itinerary-cli/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func BookCmd() *cobra.Command {
	var segmentID, reference, bookedOn string

	cmd := &cobra.Command{
		Use:     "book",
		Short:   "Build a mark-as-booked mutation for the trip service",
		Example: `  itinerary book --payload trip.json --segment seg_out --reference ABC123 --date 2026-05-02`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if segmentID == "" || reference == "" {
				return fmt.Errorf("both --segment and --reference are required")
			}
			if bookedOn == "" {
				bookedOn = booking.Today()
			}
			return withSession(cmd, func(s *session) error {
				seg, ok := s.rec.Segment(segmentID)
				if !ok {
					output.JSONError("book failed", fmt.Sprintf("%v: %s", core.ErrUnknownSegment, segmentID))
					return nil
				}
				var optionID string
				if opt, ok := core.SelectedOption(s.overrides, seg); ok {
					optionID = opt.ID
				}

				m, err := booking.NewMarkBooked(s.rec.TripID, seg.ID, optionID, reference, bookedOn)
				if err != nil {
					output.JSONError("book failed", err.Error())
					return nil
				}
				s.logger.Info("booking mutation built",
					zap.String("request_id", m.RequestID),
					zap.String("segment_id", m.EntityID),
					zap.String("option_id", m.OptionID),
				)
				return s.render(m)
			})
		},
	}

	cmd.Flags().StringVar(&segmentID, "segment", "", "Segment id (required)")
	cmd.Flags().StringVar(&reference, "reference", "", "Booking reference from the provider (required)")
	cmd.Flags().StringVar(&bookedOn, "date", "", "Date booked, YYYY-MM-DD (default today)")
	return cmd
}
