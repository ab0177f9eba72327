package model

// QuizResult is one append-only attempt summary. Counters are
// cumulative: each new attempt adds its counts to the highest-numbered
// prior row for the same (user, company, quiz) triple, so AverageResult
// is a running average over all attempts, not a per-attempt score.
// Rows are never updated or deleted.
type QuizResult struct {
	ResultsID         uint    `gorm:"primaryKey;autoIncrement" json:"results_id"`
	PassDate          string  `gorm:"not null" json:"pass_date"`
	UserID            uint    `gorm:"not null;index:idx_results_triple" json:"user_id"`
	CompanyID         uint    `gorm:"not null;index:idx_results_triple" json:"company_id"`
	QuizRecordID      uint    `gorm:"not null;index:idx_results_triple" json:"quiz_record_id"`
	AverageResult     float64 `gorm:"not null" json:"average_result"`
	CorrectAnswers    int     `gorm:"not null" json:"correct_answers"`
	NumberOfQuestions int     `gorm:"not null" json:"number_of_questions"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
