package model

type Company struct {
	CompanyID          uint   `gorm:"primaryKey;autoIncrement" json:"company_id"`
	CompanyName        string `gorm:"not null" json:"company_name"`
	CompanyDescription string `json:"company_description"`
	CompanyVisible     bool   `gorm:"default:true" json:"company_visible"`
	CompanyOwnerID     uint   `gorm:"index;not null" json:"company_owner_id"`
	CreatedOn          string `gorm:"not null" json:"created_on"`
	UpdatedOn          string `gorm:"not null" json:"updated_on"`
}

func (Company) TableName() string {
	return "companies"
}
