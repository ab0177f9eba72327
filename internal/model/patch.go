package model

// Patch structs list exactly the fields eligible for partial update.
// A nil field is left untouched; everything else is applied
// field-by-field, so column names stay compile-time checked.

type UserPatch struct {
	FirstName *string
	LastName  *string
	Password  *string
	Status    *string
}

type CompanyPatch struct {
	CompanyName        *string
	CompanyDescription *string
	CompanyVisible     *bool
}

type QuizPatch struct {
	QuizName    *string
	Description *string
}

// QuestionPatch addresses one question by its sequence number inside
// the quiz.
type QuestionPatch struct {
	QuestionIDInQuiz int
	Question         *string
	AnswerOptions    []string
	CorrectAnswer    *string
}
