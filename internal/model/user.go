package model

// TimeLayout is the timestamp form stored in every *_on and pass_date
// column, kept as text exactly as the rest of the system expects it.
const TimeLayout = "2006-01-02 15:04:05"

type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Email     string `gorm:"not null;uniqueIndex" json:"email"`
	Status    string `json:"status"`
	Password  string `gorm:"not null" json:"-"`
	CreatedOn string `gorm:"not null" json:"created_on"`
	UpdatedOn string `gorm:"not null" json:"updated_on"`
}

func (User) TableName() string {
	return "users"
}
