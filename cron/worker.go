package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	cronlib "github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/alimp01/hural-bot/services/digest"
)

// Schedule is the weekly trigger point for the reminder digest, in the
// reference timezone. Weekday is cron-style: 0=Sunday .. 6=Saturday.
type Schedule struct {
	Weekday int
	Hour    int
	Minute  int
}

func (s Schedule) spec() string {
	return fmt.Sprintf("%d %d * * %d", s.Minute, s.Hour, s.Weekday)
}

// StartReminderWorker schedules the weekly digest job and returns the running
// scheduler. A failed run is logged and swallowed so the next trigger always
// fires; the job shares no state with live chat sessions, so re-running it is
// always safe.
func StartReminderWorker(svc digest.DigestService, sched Schedule, loc *time.Location, logger *zap.Logger) (*cronlib.Cron, error) {
	c := cronlib.New(cronlib.WithLocation(loc))

	_, err := c.AddFunc(sched.spec(), func() {
		runID := uuid.New().String()
		log := logger.With(zap.String("run", runID))

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		log.Info("reminder digest triggered")
		if err := svc.Run(ctx); err != nil {
			log.Error("reminder digest failed, will retry next week", zap.Error(err))
			return
		}
		log.Info("reminder digest finished")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule reminder digest: %w", err)
	}

	c.Start()
	logger.Info("reminder worker started", zap.String("cron", sched.spec()), zap.String("tz", loc.String()))
	return c, nil
}
