package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeGoalStore struct {
	goals   []models.NutritionGoal
	scanErr error
}

func (f *fakeGoalStore) ActiveGoals(ctx context.Context, now time.Time) ([]models.NutritionGoal, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	var active []models.NutritionGoal
	for _, g := range f.goals {
		if !g.IsActive || g.StartDate.After(now) {
			continue
		}
		if g.EndDate != nil && g.EndDate.Before(now) {
			continue
		}
		active = append(active, g)
	}
	return active, nil
}

func (f *fakeGoalStore) DeactivateExpiredGoals(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	for i := range f.goals {
		g := &f.goals[i]
		if g.IsActive && g.EndDate != nil && g.EndDate.Before(now) {
			g.IsActive = false
			count++
		}
	}
	return count, nil
}

type logKey struct {
	user, date, meal string
}

type fakeLogStore struct {
	logged map[logKey]bool
	err    error
}

func (f *fakeLogStore) HasMealLog(ctx context.Context, userID primitive.ObjectID, date, mealType string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.logged[logKey{userID.Hex(), date, mealType}], nil
}

type notifKey struct {
	user, date, meal, typ string
}

// fakeNotifier mimics the unique-index behavior: inserting the same key
// twice reports created=false.
type fakeNotifier struct {
	sent map[notifKey]*models.Notification
	errs map[string]error // per userID hex
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(map[notifKey]*models.Notification)}
}

func (f *fakeNotifier) CreateMealNotification(ctx context.Context, n *models.Notification) (bool, error) {
	if err := f.errs[n.UserID.Hex()]; err != nil {
		return false, err
	}
	key := notifKey{n.UserID.Hex(), n.Date, n.MealType, n.Type}
	if _, ok := f.sent[key]; ok {
		return false, nil
	}
	f.sent[key] = n
	return true, nil
}

func (f *fakeNotifier) countByType(typ string) int {
	count := 0
	for key := range f.sent {
		if key.typ == typ {
			count++
		}
	}
	return count
}

func activeGoal(userID primitive.ObjectID, now time.Time) models.NutritionGoal {
	end := now.AddDate(0, 0, 7)
	return models.NutritionGoal{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   &end,
		IsActive:  true,
	}
}

func atHour(hour int) clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(2025, 6, 10, hour, 0, 0, 0, time.UTC))
}

func TestSendDueRemindersCreatesReminder(t *testing.T) {
	clock := atHour(8)
	userID := primitive.NewObjectID()

	goals := &fakeGoalStore{goals: []models.NutritionGoal{activeGoal(userID, clock.Now())}}
	logs := &fakeLogStore{logged: map[logKey]bool{}}
	notifier := newFakeNotifier()

	svc := NewReminderService(goals, logs, notifier, clock)
	require.NoError(t, svc.SendDueReminders(context.Background()))

	key := notifKey{userID.Hex(), "2025-06-10", models.MealBreakfast, models.NotificationReminder}
	notif, ok := notifier.sent[key]
	require.True(t, ok, "expected a breakfast reminder")
	assert.Contains(t, notif.Message, "08:00")
	assert.Equal(t, 1, notifier.countByType(models.NotificationReminder))
}

func TestSendDueRemindersIdempotent(t *testing.T) {
	clock := atHour(13)
	userID := primitive.NewObjectID()

	goals := &fakeGoalStore{goals: []models.NutritionGoal{activeGoal(userID, clock.Now())}}
	logs := &fakeLogStore{logged: map[logKey]bool{}}
	notifier := newFakeNotifier()

	svc := NewReminderService(goals, logs, notifier, clock)

	// Firing twice in succession yields exactly one notification.
	require.NoError(t, svc.SendDueReminders(context.Background()))
	require.NoError(t, svc.SendDueReminders(context.Background()))

	assert.Equal(t, 1, notifier.countByType(models.NotificationReminder))
}

func TestSendDueRemindersSkipsLoggedMeal(t *testing.T) {
	clock := atHour(8)
	userID := primitive.NewObjectID()

	goals := &fakeGoalStore{goals: []models.NutritionGoal{activeGoal(userID, clock.Now())}}
	logs := &fakeLogStore{logged: map[logKey]bool{
		{userID.Hex(), "2025-06-10", models.MealBreakfast}: true,
	}}
	notifier := newFakeNotifier()

	svc := NewReminderService(goals, logs, notifier, clock)
	require.NoError(t, svc.SendDueReminders(context.Background()))

	assert.Empty(t, notifier.sent)
}

func TestSendDueRemindersOffScheduleHourIsNoop(t *testing.T) {
	clock := atHour(11)
	userID := primitive.NewObjectID()

	goals := &fakeGoalStore{goals: []models.NutritionGoal{activeGoal(userID, clock.Now())}}
	notifier := newFakeNotifier()

	svc := NewReminderService(goals, &fakeLogStore{}, notifier, clock)
	require.NoError(t, svc.SendDueReminders(context.Background()))

	assert.Empty(t, notifier.sent)
}

func TestRemindMealContinuesAfterPerGoalFailure(t *testing.T) {
	clock := atHour(8)
	badUser := primitive.NewObjectID()
	goodUser := primitive.NewObjectID()

	goals := &fakeGoalStore{goals: []models.NutritionGoal{
		activeGoal(badUser, clock.Now()),
		activeGoal(goodUser, clock.Now()),
	}}
	logs := &fakeLogStore{logged: map[logKey]bool{}}
	notifier := newFakeNotifier()
	notifier.errs = map[string]error{badUser.Hex(): errors.New("insert failed")}

	svc := NewReminderService(goals, logs, notifier, clock)
	require.NoError(t, svc.RemindMeal(context.Background(), models.MealBreakfast))

	// The failing goal did not abort the scan; the other user still got
	// their reminder.
	key := notifKey{goodUser.Hex(), "2025-06-10", models.MealBreakfast, models.NotificationReminder}
	_, ok := notifier.sent[key]
	assert.True(t, ok)
}

func TestCheckSkippedMealsRespectsDeadlines(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		hour        int
		wantSkipped []string
	}{
		{9, nil},
		{10, []string{models.MealBreakfast}},
		{15, []string{models.MealBreakfast, models.MealLunch}},
		{19, []string{models.MealBreakfast, models.MealLunch, models.MealSnack}},
		{23, []string{models.MealBreakfast, models.MealLunch, models.MealSnack, models.MealDinner}},
	}

	for _, tt := range tests {
		clock := atHour(tt.hour)
		goals := &fakeGoalStore{goals: []models.NutritionGoal{activeGoal(userID, clock.Now())}}
		logs := &fakeLogStore{logged: map[logKey]bool{}}
		notifier := newFakeNotifier()

		svc := NewReminderService(goals, logs, notifier, clock)
		require.NoError(t, svc.CheckSkippedMeals(context.Background()))

		assert.Equal(t, len(tt.wantSkipped), notifier.countByType(models.NotificationSkipped), "hour %d", tt.hour)
		for _, meal := range tt.wantSkipped {
			key := notifKey{userID.Hex(), "2025-06-10", meal, models.NotificationSkipped}
			_, ok := notifier.sent[key]
			assert.True(t, ok, "hour %d expected skipped %s", tt.hour, meal)
		}
	}
}

func TestCheckSkippedMealsIgnoresLoggedMeals(t *testing.T) {
	clock := atHour(16)
	userID := primitive.NewObjectID()

	goals := &fakeGoalStore{goals: []models.NutritionGoal{activeGoal(userID, clock.Now())}}
	logs := &fakeLogStore{logged: map[logKey]bool{
		{userID.Hex(), "2025-06-10", models.MealBreakfast}: true,
		{userID.Hex(), "2025-06-10", models.MealLunch}:     true,
	}}
	notifier := newFakeNotifier()

	svc := NewReminderService(goals, logs, notifier, clock)
	require.NoError(t, svc.CheckSkippedMeals(context.Background()))

	assert.Equal(t, 0, notifier.countByType(models.NotificationSkipped))
}

func TestCheckSkippedMealsIdempotent(t *testing.T) {
	clock := atHour(12)
	userID := primitive.NewObjectID()

	goals := &fakeGoalStore{goals: []models.NutritionGoal{activeGoal(userID, clock.Now())}}
	logs := &fakeLogStore{logged: map[logKey]bool{}}
	notifier := newFakeNotifier()

	svc := NewReminderService(goals, logs, notifier, clock)
	require.NoError(t, svc.CheckSkippedMeals(context.Background()))
	require.NoError(t, svc.CheckSkippedMeals(context.Background()))

	assert.Equal(t, 1, notifier.countByType(models.NotificationSkipped))
}

func TestExpireGoals(t *testing.T) {
	clock := atHour(0)
	userID := primitive.NewObjectID()

	past := clock.Now().AddDate(0, 0, -1)
	expired := models.NutritionGoal{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		StartDate: clock.Now().AddDate(0, 0, -10),
		EndDate:   &past,
		IsActive:  true,
	}
	current := activeGoal(userID, clock.Now())

	goals := &fakeGoalStore{goals: []models.NutritionGoal{expired, current}}
	svc := NewReminderService(goals, &fakeLogStore{}, newFakeNotifier(), clock)

	require.NoError(t, svc.ExpireGoals(context.Background()))
	assert.False(t, goals.goals[0].IsActive)
	assert.True(t, goals.goals[1].IsActive)

	// Running again must not touch anything further.
	require.NoError(t, svc.ExpireGoals(context.Background()))
	assert.False(t, goals.goals[0].IsActive)
	assert.True(t, goals.goals[1].IsActive)
}

func TestRemindMealReturnsErrorWhenScanFails(t *testing.T) {
	clock := atHour(8)
	goals := &fakeGoalStore{scanErr: errors.New("db down")}

	svc := NewReminderService(goals, &fakeLogStore{}, newFakeNotifier(), clock)
	err := svc.RemindMeal(context.Background(), models.MealBreakfast)
	require.Error(t, err)
}

func TestExpiredGoalGetsNoReminders(t *testing.T) {
	clock := atHour(8)
	userID := primitive.NewObjectID()

	past := clock.Now().AddDate(0, 0, -1)
	goal := models.NutritionGoal{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		StartDate: clock.Now().AddDate(0, 0, -10),
		EndDate:   &past,
		IsActive:  true,
	}

	goals := &fakeGoalStore{goals: []models.NutritionGoal{goal}}
	notifier := newFakeNotifier()

	svc := NewReminderService(goals, &fakeLogStore{logged: map[logKey]bool{}}, notifier, clock)
	require.NoError(t, svc.SendDueReminders(context.Background()))

	assert.Empty(t, notifier.sent)
}
