package model

type Request struct {
	RequestID      uint   `gorm:"primaryKey;autoIncrement" json:"request_id"`
	FromUserID     uint   `gorm:"not null;index" json:"from_user_id"`
	ToCompanyID    uint   `gorm:"not null;index" json:"to_company_id"`
	RequestMessage string `json:"request_message"`
	Status         string `gorm:"not null;default:NEW" json:"status"`
	CreatedOn      string `gorm:"not null" json:"created_on"`
	UpdatedOn      string `gorm:"not null" json:"updated_on"`
}

func (Request) TableName() string {
	return "requests"
}
