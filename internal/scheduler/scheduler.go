package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/orcafacil/orcafacil/internal/config"
	"github.com/orcafacil/orcafacil/internal/service/reporting"
)

// Scheduler runs the daily quote summary export on a cron schedule.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	cfg          config.ExportConfig
	location     *time.Location
	logger       *zap.Logger
}

// NewScheduler creates a scheduler in the configured timezone. An unknown
// timezone falls back to the server's local time.
func NewScheduler(cfg config.ExportConfig, reportingSvc *reporting.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, using local time", zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(location)),
		reportingSvc: reportingSvc,
		cfg:          cfg,
		location:     location,
		logger:       logger,
	}
}

// Start registers the export job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.exportDailySummary); err != nil {
		s.logger.Error("failed to schedule daily export", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) exportDailySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.reportingSvc.ExportDailySummary(ctx, time.Now().In(s.location)); err != nil {
		s.logger.Error("failed to export daily summary", zap.Error(err))
	}
}
