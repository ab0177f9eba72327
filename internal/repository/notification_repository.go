package repository

import (
	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) CreateBatch(notifications []model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.DB.Create(&notifications).Error
}

func (r *NotificationRepository) FindByID(notificationID uint) (*model.Notification, error) {
	var notification model.Notification
	err := r.DB.First(&notification, notificationID).Error
	return &notification, err
}

func (r *NotificationRepository) FindUnreadByUser(userID uint) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.DB.Where("user_id = ? AND status = ?", userID, model.NotificationUnread).
		Order("notification_id").
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) MarkRead(notificationID uint) error {
	return r.DB.Model(&model.Notification{}).
		Where("notification_id = ?", notificationID).
		Update("status", model.NotificationRead).Error
}
