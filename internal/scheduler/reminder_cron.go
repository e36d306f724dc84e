package cron

import (
	"context"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler owns the cron entries driving goal expiration and the
// reminder/skipped-meal passes. Each job is wrapped with SkipIfStillRunning
// so a slow scan never overlaps the next firing of the same job.
type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler registers the reminder cron jobs against the given service.
func NewScheduler(reminderService *services.ReminderService, notificationService *services.NotificationService) (*Scheduler, error) {
	cronLogger := cron.PrintfLogger(logrus.StandardLogger())
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cronLogger),
		cron.Recover(cronLogger),
	))

	// Midnight: expire goals whose end date has passed, then prune old
	// notifications.
	_, err := c.AddFunc("0 0 * * *", func() {
		ctx := context.Background()
		if err := reminderService.ExpireGoals(ctx); err != nil {
			logrus.WithError(err).Error("ExpireGoals failed")
		}
		if err := notificationService.CleanupExpiredNotifications(ctx); err != nil {
			logrus.WithError(err).Error("CleanupExpiredNotifications failed")
		}
	})
	if err != nil {
		return nil, err
	}

	// Meal reminders at the four scheduled meal hours.
	_, err = c.AddFunc("0 8,13,17,20 * * *", func() {
		if err := reminderService.SendDueReminders(context.Background()); err != nil {
			logrus.WithError(err).Error("SendDueReminders failed")
		}
	})
	if err != nil {
		return nil, err
	}

	// Hourly skipped-meal check.
	_, err = c.AddFunc("@hourly", func() {
		if err := reminderService.CheckSkippedMeals(context.Background()); err != nil {
			logrus.WithError(err).Error("CheckSkippedMeals failed")
		}
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

// Start launches the cron loop.
func (s *Scheduler) Start() {
	s.cron.Start()
	logrus.Info("Reminder scheduler started")
}

// Stop halts scheduling and waits for any in-flight scan to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logrus.Info("Reminder scheduler stopped")
}
