package model

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// MemberRecord ties a user to a company. CompanyMemberID is the
// per-company sequential identity exposed on the API, distinct from the
// global user id.
type MemberRecord struct {
	MemberRecordID  uint   `gorm:"primaryKey;autoIncrement" json:"member_record_id"`
	CompanyMemberID uint   `gorm:"not null;index:idx_company_member,unique" json:"company_member_id"`
	CompanyID       uint   `gorm:"not null;index:idx_company_member,unique;index:idx_company_user" json:"company_id"`
	UserID          uint   `gorm:"not null;index:idx_company_user" json:"user_id"`
	Role            string `gorm:"not null;default:member" json:"role"`
	CreatedOn       string `gorm:"not null" json:"created_on"`
	UpdatedOn       string `gorm:"not null" json:"updated_on"`
}

func (MemberRecord) TableName() string {
	return "member_records"
}

// IsElevated reports whether the role may see and export other members'
// results.
func (m *MemberRecord) IsElevated() bool {
	return m.Role == RoleOwner || m.Role == RoleAdmin
}
