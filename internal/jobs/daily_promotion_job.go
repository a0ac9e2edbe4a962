package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultDailyPromotionSchedule fires the campaign at noon every day.
const DefaultDailyPromotionSchedule = "0 12 * * *"

// DailyPromotionJob manages the scheduled promotional campaign.
// Renders the daily discount mail for every opted-in subscriber on each tick.
type DailyPromotionJob struct {
	handler  commands.SendDailyPromotionCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDailyPromotionJob creates the campaign job with the given cron schedule.
// The schedule uses the standard five-field cron format.
func NewDailyPromotionJob(
	handler commands.SendDailyPromotionCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DailyPromotionJob {
	if schedule == "" {
		schedule = DefaultDailyPromotionSchedule
	}

	return &DailyPromotionJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "daily_promotion_job"),
	}
}

// Start schedules the campaign. Returns an error for an invalid schedule.
func (j *DailyPromotionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if err := j.handler.Handle(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Daily promotion job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Daily promotion job started", "schedule", j.schedule)
	return nil
}

// Stop stops the campaign job.
func (j *DailyPromotionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily promotion job stopped")
}
