package commands

import (
	"fmt"
	"time"

	"github.com/beetlebot/itinerary-cli/internal/config"
	"github.com/beetlebot/itinerary-cli/internal/core"
	"github.com/beetlebot/itinerary-cli/internal/logging"
	"github.com/beetlebot/itinerary-cli/internal/output"
	"github.com/beetlebot/itinerary-cli/internal/payload"
	"github.com/beetlebot/itinerary-cli/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session carries what every command needs: config, logger, the payload
// and the override store scoped to the payload's trip.
type session struct {
	cfg       *config.Config
	logger    *zap.Logger
	rec       *core.Recommendation
	backing   store.Store
	overrides core.OverrideStore
}

func loadConfig(cmd *cobra.Command) *config.Config {
	backend, _ := cmd.Flags().GetString("store")
	format, _ := cmd.Flags().GetString("format")
	view, _ := cmd.Flags().GetString("view")
	return config.Load().WithBackend(backend).WithFormat(format).WithView(view)
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg := loadConfig(cmd)
	if err := logging.Init(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger := logging.Get()

	rec, err := loadRecommendation(cmd)
	if err != nil {
		return nil, err
	}

	backing, err := store.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("session opened",
		zap.String("trip_id", rec.TripID),
		zap.String("store", string(cfg.Store.Backend)),
	)

	return &session{
		cfg:       cfg,
		logger:    logger,
		rec:       rec,
		backing:   backing,
		overrides: store.NewScoped(backing, rec.TripID),
	}, nil
}

func loadRecommendation(cmd *cobra.Command) (*core.Recommendation, error) {
	path, _ := cmd.Flags().GetString("payload")
	seed, _ := cmd.Flags().GetString("sample")
	switch {
	case path != "":
		return payload.Load(path)
	case seed != "":
		departFlag, _ := cmd.Flags().GetString("depart")
		depart := time.Now().UTC().AddDate(0, 1, 0)
		if departFlag != "" {
			d, err := time.Parse("2006-01-02", departFlag)
			if err != nil {
				return nil, fmt.Errorf("invalid --depart date: %w", err)
			}
			depart = d
		}
		return payload.Sample(seed, depart), nil
	}
	return nil, fmt.Errorf("either --payload or --sample is required")
}

func (s *session) Close() {
	if err := s.backing.Close(); err != nil {
		s.logger.Warn("closing override store", zap.Error(err))
	}
	logging.Sync()
}

func (s *session) planner() *core.Planner {
	return core.NewPlanner(s.overrides, s.logger)
}

func (s *session) planOptions(cmd *cobra.Command) (core.PlanOptions, error) {
	view, err := core.ParseViewMode(s.cfg.View)
	if err != nil {
		return core.PlanOptions{}, err
	}
	showAll := s.cfg.ShowAllOptions
	if cmd.Flags().Changed("show-all") {
		showAll, _ = cmd.Flags().GetBool("show-all")
	}
	return core.PlanOptions{ShowAll: showAll, View: view}, nil
}

func (s *session) render(v interface{}) error {
	return output.Render(s.cfg.Format, v)
}

// withSession runs fn against an open session. Payload and store problems
// are reported as JSON errors, not usage errors.
func withSession(cmd *cobra.Command, fn func(*session) error) error {
	s, err := openSession(cmd)
	if err != nil {
		output.JSONError("cannot load trip", err.Error())
		return nil
	}
	defer s.Close()
	return fn(s)
}
