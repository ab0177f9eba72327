package model

// Quiz is identified two ways: QuizRecordID is the global primary key,
// QuizIDInCompany is the sequential display id members see inside one
// company.
type Quiz struct {
	QuizRecordID          uint       `gorm:"primaryKey;autoIncrement" json:"quiz_record_id"`
	CompanyID             uint       `gorm:"not null;index:idx_company_quiz,unique" json:"company_id"`
	QuizIDInCompany       uint       `gorm:"not null;index:idx_company_quiz,unique" json:"quiz_id_in_company"`
	QuizName              string     `gorm:"not null" json:"quiz_name"`
	Description           string     `json:"description"`
	QuizToBePassedInHours int        `json:"quiz_to_be_passed_in_hours"`
	Questions             []Question `gorm:"foreignKey:QuizRecordID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
