package model

// Question belongs to one quiz and is addressed by its sequence number
// inside that quiz. The correct answer never leaves the server.
type Question struct {
	QuestionRecordID uint     `gorm:"primaryKey;autoIncrement" json:"question_record_id"`
	QuizRecordID     uint     `gorm:"not null;index:idx_quiz_question,unique" json:"quiz_record_id"`
	QuestionIDInQuiz int      `gorm:"not null;index:idx_quiz_question,unique" json:"question_id_in_quiz"`
	Question         string   `gorm:"not null" json:"question"`
	AnswerOptions    []string `gorm:"serializer:json" json:"answer_options"`
	CorrectAnswer    string   `gorm:"not null" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}
