package services

import (
	"context"
	"fmt"

	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/models"
	"github.com/ksabhilash-bot/Mdplanner-sub000/internal/repository"
	"github.com/ksabhilash-bot/Mdplanner-sub000/pkg/email"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService manages user notifications and, when SMTP is
// configured, mirrors scheduler reminders to email.
type NotificationService struct {
	repo     *repository.NotificationRepository
	userRepo *repository.UserRepository
	mailer   *email.Sender
}

func NewNotificationService(repo *repository.NotificationRepository, userRepo *repository.UserRepository, mailer *email.Sender) *NotificationService {
	return &NotificationService{
		repo:     repo,
		userRepo: userRepo,
		mailer:   mailer,
	}
}

// CreateMealNotification inserts a scheduler notification. Reports
// created=false when one already exists for the same (user, date, meal,
// type) key. On a fresh insert the message is also mailed if SMTP is
// configured; email failure never fails the notification.
func (s *NotificationService) CreateMealNotification(ctx context.Context, notif *models.Notification) (bool, error) {
	created, err := s.repo.CreateMealNotification(ctx, notif)
	if err != nil || !created {
		return created, err
	}

	if s.mailer.Enabled() {
		user, err := s.userRepo.GetUserByID(ctx, notif.UserID)
		if err == nil {
			if err := s.mailer.Send(user.Email, notif.Title, notif.Message); err != nil {
				logrus.WithError(err).Warn("Failed to mail notification")
			}
		}
	}
	return true, nil
}

// NotifyPlanGenerated records a plan-ready notification for the user.
// Unlike scheduler notifications these carry no meal key, so every
// generation produces a fresh one.
func (s *NotificationService) NotifyPlanGenerated(ctx context.Context, userID primitive.ObjectID, days int) error {
	notif := &models.Notification{
		UserID:  userID,
		Type:    models.NotificationPlan,
		Title:   "Your meal plan is ready",
		Message: fmt.Sprintf("A new %d-day meal plan has been generated for you.", days),
	}
	return s.repo.CreateNotification(ctx, notif)
}

// GetUserNotifications returns all notifications for a user.
func (s *NotificationService) GetUserNotifications(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	return s.repo.GetUserNotifications(ctx, userID)
}

// MarkNotificationAsRead sets the "read" status of a notification to true.
func (s *NotificationService) MarkNotificationAsRead(ctx context.Context, notifID primitive.ObjectID) error {
	return s.repo.MarkAsRead(ctx, notifID)
}

// DeleteNotification deletes a specific notification.
func (s *NotificationService) DeleteNotification(ctx context.Context, notifID primitive.ObjectID) error {
	return s.repo.DeleteNotification(ctx, notifID)
}

// CleanupExpiredNotifications is called by the midnight cron pass.
func (s *NotificationService) CleanupExpiredNotifications(ctx context.Context) error {
	return s.repo.DeleteExpiredNotifications(ctx)
}
