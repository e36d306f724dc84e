package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalScanner is the slice of the goal repository the reminder scan needs.
type GoalScanner interface {
	ActiveGoals(ctx context.Context, now time.Time) ([]models.NutritionGoal, error)
	DeactivateExpiredGoals(ctx context.Context, now time.Time) (int64, error)
}

// MealLogChecker answers "did the user log this meal today".
type MealLogChecker interface {
	HasMealLog(ctx context.Context, userID primitive.ObjectID, date, mealType string) (bool, error)
}

// MealNotifier inserts a scheduler notification, reporting created=false
// when one already exists for the same key.
type MealNotifier interface {
	CreateMealNotification(ctx context.Context, notif *models.Notification) (bool, error)
}

// reminderHours maps the wall-clock hours the cron fires at to the meal
// being reminded about.
var reminderHours = map[int]string{
	8:  models.MealBreakfast,
	13: models.MealLunch,
	17: models.MealSnack,
	20: models.MealDinner,
}

// defaultMealTimes are used in reminder messages.
var defaultMealTimes = map[string]string{
	models.MealBreakfast: "08:00",
	models.MealLunch:     "13:00",
	models.MealSnack:     "17:00",
	models.MealDinner:    "20:00",
}

// skipDeadlines is the hour after which an unlogged meal counts as skipped.
var skipDeadlines = map[string]int{
	models.MealBreakfast: 10,
	models.MealLunch:     15,
	models.MealSnack:     19,
	models.MealDinner:    22,
}

// ReminderService drives the reminder/skipped-meal notification pipeline.
// The clock is injected so scans are deterministic under test.
type ReminderService struct {
	goals    GoalScanner
	logs     MealLogChecker
	notifier MealNotifier
	clock    clockwork.Clock
}

func NewReminderService(goals GoalScanner, logs MealLogChecker, notifier MealNotifier, clock clockwork.Clock) *ReminderService {
	return &ReminderService{
		goals:    goals,
		logs:     logs,
		notifier: notifier,
		clock:    clock,
	}
}

// SendDueReminders sends the reminder for whichever meal the current hour
// maps to. Hours outside the reminder schedule are a no-op, so the cron
// entry can simply fire at every scheduled hour.
func (s *ReminderService) SendDueReminders(ctx context.Context) error {
	mealType, ok := reminderHours[s.clock.Now().Hour()]
	if !ok {
		return nil
	}
	return s.RemindMeal(ctx, mealType)
}

// RemindMeal creates at most one reminder notification per active goal
// owner who has not yet logged the given meal today. Per-goal failures are
// logged and do not abort the scan.
func (s *ReminderService) RemindMeal(ctx context.Context, mealType string) error {
	now := s.clock.Now()
	today := now.Format(models.DateLayout)

	goals, err := s.goals.ActiveGoals(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to fetch active goals: %w", err)
	}

	for _, goal := range goals {
		if err := s.remindGoal(ctx, &goal, today, mealType); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id": goal.UserID.Hex(),
				"meal":    mealType,
			}).Warn("Reminder failed for goal, continuing scan")
		}
	}
	return nil
}

func (s *ReminderService) remindGoal(ctx context.Context, goal *models.NutritionGoal, today, mealType string) error {
	logged, err := s.logs.HasMealLog(ctx, goal.UserID, today, mealType)
	if err != nil {
		return err
	}
	if logged {
		return nil
	}

	mealTime := defaultMealTimes[mealType]
	notif := &models.Notification{
		UserID:   goal.UserID,
		Type:     models.NotificationReminder,
		Date:     today,
		MealType: mealType,
		Title:    fmt.Sprintf("Time for %s!", mealType),
		Message:  fmt.Sprintf("It's %s, your usual %s time. Don't forget to log your meal.", mealTime, mealType),
	}

	created, err := s.notifier.CreateMealNotification(ctx, notif)
	if err != nil {
		return err
	}
	if created {
		logrus.WithFields(logrus.Fields{
			"user_id": goal.UserID.Hex(),
			"meal":    mealType,
			"date":    today,
		}).Info("Meal reminder sent")
	}
	return nil
}

// CheckSkippedMeals runs hourly and creates a skipped-meal notification for
// every meal whose deadline has passed without a log entry.
func (s *ReminderService) CheckSkippedMeals(ctx context.Context) error {
	now := s.clock.Now()
	today := now.Format(models.DateLayout)
	hour := now.Hour()

	goals, err := s.goals.ActiveGoals(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to fetch active goals: %w", err)
	}

	for _, goal := range goals {
		for mealType, deadline := range skipDeadlines {
			if hour < deadline {
				continue
			}
			if err := s.markSkipped(ctx, &goal, today, mealType); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"user_id": goal.UserID.Hex(),
					"meal":    mealType,
				}).Warn("Skip check failed for goal, continuing scan")
			}
		}
	}
	return nil
}

func (s *ReminderService) markSkipped(ctx context.Context, goal *models.NutritionGoal, today, mealType string) error {
	logged, err := s.logs.HasMealLog(ctx, goal.UserID, today, mealType)
	if err != nil {
		return err
	}
	if logged {
		return nil
	}

	notif := &models.Notification{
		UserID:   goal.UserID,
		Type:     models.NotificationSkipped,
		Date:     today,
		MealType: mealType,
		Title:    fmt.Sprintf("You skipped %s", mealType),
		Message:  fmt.Sprintf("Looks like you didn't log %s today. Skipping meals makes it harder to hit your nutrition goal.", mealType),
	}

	created, err := s.notifier.CreateMealNotification(ctx, notif)
	if err != nil {
		return err
	}
	if created {
		logrus.WithFields(logrus.Fields{
			"user_id": goal.UserID.Hex(),
			"meal":    mealType,
			"date":    today,
		}).Info("Skipped meal notification sent")
	}
	return nil
}

// ExpireGoals deactivates goals whose end date has passed. Runs at
// midnight.
func (s *ReminderService) ExpireGoals(ctx context.Context) error {
	_, err := s.goals.DeactivateExpiredGoals(ctx, s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to expire goals: %w", err)
	}
	return nil
}
