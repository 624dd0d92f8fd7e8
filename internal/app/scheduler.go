package app

import (
	"context"

	"github.com/robfig/cron/v3"
)

// scheduler re-runs the valuation pipeline on a cron schedule.
type scheduler struct {
	cron *cron.Cron
}

func (s *scheduler) stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// StartScheduler begins periodic re-valuation when a cron spec is configured.
// Returns false when no schedule is set.
func (a *App) StartScheduler() (bool, error) {
	spec := a.Config.Scheduler.Spec
	if spec == "" {
		return false, nil
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if _, err := a.Run(context.Background()); err != nil {
			a.Logger.Error().Err(err).Msg("Scheduled valuation run failed")
		}
	})
	if err != nil {
		return false, err
	}

	c.Start()
	a.scheduler = &scheduler{cron: c}

	a.Logger.Info().Str("spec", spec).Msg("Valuation scheduler started")
	return true, nil
}
