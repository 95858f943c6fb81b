package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/beetlebot/itinerary-cli/internal/config"
	"github.com/beetlebot/itinerary-cli/internal/logging"
	"github.com/beetlebot/itinerary-cli/internal/output"
	"github.com/beetlebot/itinerary-cli/internal/store"
	"github.com/spf13/cobra"
)

type DoctorReport struct {
	Backend config.Backend `json:"backend"`
	Target  string         `json:"target,omitempty"`
	View    string         `json:"view"`
	Healthy bool           `json:"healthy"`
	Summary string         `json:"summary"`
}

func DoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate configuration and override store health",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)
			if err := logging.Init(cfg.LogLevel); err != nil {
				return err
			}
			report := DoctorReport{Backend: cfg.Store.Backend, View: cfg.View}

			s, err := store.Open(cfg, logging.Get())
			if err != nil {
				report.Summary = err.Error()
				return output.Render(cfg.Format, report)
			}
			defer s.Close()

			switch st := s.(type) {
			case *store.File:
				report.Target = st.Path()
				report.Healthy = true
			case *store.Redis:
				report.Target = cfg.Store.RedisAddr
				ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				defer cancel()
				if err := st.Ping(ctx); err != nil {
					report.Summary = fmt.Sprintf("redis unreachable: %v (overrides stay session-local)", err)
				} else {
					report.Healthy = true
				}
			default:
				report.Healthy = true
			}

			if report.Summary == "" {
				report.Summary = fmt.Sprintf("override store %s ok (view=%s)", cfg.Store.Backend, cfg.View)
			}
			return output.Render(cfg.Format, report)
		},
	}
	return cmd
}
