package main

import (
	"fmt"
	"os"

	"github.com/beetlebot/itinerary-cli/cmd/itinerary/commands"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "itinerary",
		Short: "Beetlebot itinerary options – ranking, booking groups, timeline and cost",
		Long:  "Works on a trip recommendation payload: ranks transport and stay options, groups segments that must be booked together, merges the travel timeline and totals the selected cost. Local choices are kept in an override store until the trip service confirms them.",
	}

	root.PersistentFlags().String("payload", "", "Recommendation payload file (.json, .yaml) or - for stdin")
	root.PersistentFlags().String("sample", "", "Use a generated sample trip for this seed instead of --payload")
	root.PersistentFlags().String("depart", "", "Departure date YYYY-MM-DD for --sample (default one month out)")
	root.PersistentFlags().String("store", "", "Override store: memory, file, redis (default from config/env)")
	root.PersistentFlags().String("view", "", "Segment layout: grouped, sequential (default from config/env)")
	root.PersistentFlags().String("format", "", "Output format: json, compact, yaml (default json)")

	root.AddCommand(commands.PlanCmd())
	root.AddCommand(commands.RankCmd())
	root.AddCommand(commands.GroupsCmd())
	root.AddCommand(commands.TimelineCmd())
	root.AddCommand(commands.CostCmd())
	root.AddCommand(commands.SelectCmd())
	root.AddCommand(commands.BookCmd())
	root.AddCommand(commands.DoctorCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print itinerary CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("itinerary v0.1.0")
		},
	}
}
