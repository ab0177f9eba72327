package service

import (
	"errors"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/repository"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"gorm.io/gorm"
)

type NotificationService struct {
	Notifications *repository.NotificationRepository
}

func NewNotificationService(notifications *repository.NotificationRepository) *NotificationService {
	return &NotificationService{Notifications: notifications}
}

func (s *NotificationService) ListUnread(actorID uint) ([]model.Notification, error) {
	return s.Notifications.FindUnreadByUser(actorID)
}

// MarkRead flips the actor's own notification to read.
func (s *NotificationService) MarkRead(actorID, notificationID uint) error {
	notification, err := s.Notifications.FindByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotificationNotFound
		}
		return err
	}
	if notification.UserID != actorID {
		return util.ErrPermissionDenied
	}
	return s.Notifications.MarkRead(notificationID)
}
