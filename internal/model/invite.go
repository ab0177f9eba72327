package model

const (
	StatusNew      = "NEW"
	StatusAccepted = "ACCEPTED"
	StatusDeclined = "DECLINED"
)

type Invite struct {
	InviteID      uint   `gorm:"primaryKey;autoIncrement" json:"invite_id"`
	ToUserID      uint   `gorm:"not null;index" json:"to_user_id"`
	FromCompanyID uint   `gorm:"not null;index" json:"from_company_id"`
	InviteMessage string `json:"invite_message"`
	Status        string `gorm:"not null;default:NEW" json:"status"`
	CreatedOn     string `gorm:"not null" json:"created_on"`
	UpdatedOn     string `gorm:"not null" json:"updated_on"`
}

func (Invite) TableName() string {
	return "invites"
}
