package commands

import (
	"fmt"

	"github.com/beetlebot/itinerary-cli/internal/core"
	"github.com/beetlebot/itinerary-cli/internal/output"
	"github.com/spf13/cobra"
)

func RankCmd() *cobra.Command {
	var segmentID string

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the options of one segment, or of every segment",
		Example: `  itinerary rank --payload trip.json --segment seg_out
  itinerary rank --sample YUL-CDG --show-all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) error {
				opts, err := s.planOptions(cmd)
				if err != nil {
					return err
				}
				p := s.planner()

				if segmentID != "" {
					seg, ok := s.rec.Segment(segmentID)
					if !ok {
						output.JSONError("rank failed", fmt.Sprintf("%v: %s", core.ErrUnknownSegment, segmentID))
						return nil
					}
					return s.render(p.SegmentView(seg, opts.ShowAll))
				}

				var views []core.SegmentView
				for _, list := range [][]core.Segment{s.rec.Transport, s.rec.Accommodations} {
					for _, seg := range list {
						views = append(views, p.SegmentView(seg, opts.ShowAll))
					}
				}
				return s.render(views)
			})
		},
	}

	cmd.Flags().StringVar(&segmentID, "segment", "", "Segment id (default: all segments)")
	cmd.Flags().Bool("show-all", false, "Show every option even when one is selected")
	return cmd
}

func SelectCmd() *cobra.Command {
	var segmentID, optionID string

	cmd := &cobra.Command{
		Use:     "select",
		Short:   "Record a local choice for a segment until the server confirms it",
		Example: `  itinerary select --payload trip.json --segment seg_stay --option opt_stay_201`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if segmentID == "" || optionID == "" {
				return fmt.Errorf("both --segment and --option are required")
			}
			return withSession(cmd, func(s *session) error {
				p := s.planner()
				if err := p.Select(s.rec, segmentID, optionID); err != nil {
					output.JSONError("select failed", err.Error())
					return nil
				}
				seg, _ := s.rec.Segment(segmentID)
				return s.render(p.SegmentView(seg, false))
			})
		},
	}

	cmd.Flags().StringVar(&segmentID, "segment", "", "Segment id (required)")
	cmd.Flags().StringVar(&optionID, "option", "", "Option id (required)")
	return cmd
}
