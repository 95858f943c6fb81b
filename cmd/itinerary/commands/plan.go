package commands

import (
	"github.com/beetlebot/itinerary-cli/internal/core"
	"github.com/spf13/cobra"
)

func PlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the full selection view for a trip",
		Example: `  itinerary plan --payload trip.json
  itinerary plan --sample YUL-CDG --depart 2026-06-12 --view sequential --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) error {
				opts, err := s.planOptions(cmd)
				if err != nil {
					return err
				}
				return s.render(s.planner().Plan(s.rec, opts))
			})
		},
	}
	cmd.Flags().Bool("show-all", false, "Show every option even when one is selected")
	return cmd
}

func GroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Show transport segments split into booking groups and individual segments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) error {
				view, err := core.ParseViewMode(s.cfg.View)
				if err != nil {
					return err
				}
				g := core.GroupSegments(s.rec.Transport)
				return s.render(map[string]interface{}{
					"view":               view,
					"bookingGroups":      g.BookingGroups,
					"individualSegments": g.Individual,
					"rows":               g.Rows(view),
				})
			})
		},
	}
	return cmd
}

func TimelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Merge flights and local transportation into one timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) error {
				return s.render(core.MergeTimeline(s.rec.Flights, s.rec.LocalTransportation))
			})
		},
	}
	return cmd
}

func CostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Total the cost of the currently selected options",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) error {
				transport := core.AggregateCost(s.rec.Transport, s.overrides)
				stays := core.AggregateCost(s.rec.Accommodations, s.overrides)
				return s.render(map[string]core.CostTotals{
					"transport":      transport,
					"accommodations": stays,
					"total":          transport.Plus(stays),
				})
			})
		},
	}
	return cmd
}

