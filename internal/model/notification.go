package model

const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)

type Notification struct {
	NotificationID uint   `gorm:"primaryKey;autoIncrement" json:"notification_id"`
	Status         string `gorm:"not null;default:unread" json:"status"`
	DateTime       string `gorm:"not null" json:"date_time"`
	Text           string `gorm:"not null" json:"text"`
	CompanyID      uint   `gorm:"not null" json:"company_id"`
	UserID         uint   `gorm:"not null;index" json:"user_id"`
	QuizRecordID   uint   `gorm:"not null" json:"quiz_record_id"`
}

func (Notification) TableName() string {
	return "notifications"
}
