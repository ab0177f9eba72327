package service

import (
	"errors"
	"time"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/repository"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"gorm.io/gorm"
)

type QuestionInput struct {
	Question      string   `json:"question" binding:"required"`
	AnswerOptions []string `json:"answer_options" binding:"required"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
}

type CreateQuizRequest struct {
	QuizName              string          `json:"quiz_name" binding:"required"`
	Description           string          `json:"description"`
	QuizToBePassedInHours int             `json:"quiz_to_be_passed_in_hours"`
	Questions             []QuestionInput `json:"questions" binding:"required"`
}

type UpdateQuizRequest struct {
	QuizName    *string `json:"quiz_name"`
	Description *string `json:"description"`
}

type UpdateQuestionRequest struct {
	QuestionIDInQuiz int      `json:"question_id_in_quiz" binding:"required"`
	Question         *string  `json:"question"`
	AnswerOptions    []string `json:"answer_options"`
	CorrectAnswer    *string  `json:"correct_answer"`
}

// QuizWithQuestions is the read shape: the quiz plus its questions with
// correct answers stripped by serialization.
type QuizWithQuestions struct {
	model.Quiz
	Questions []model.Question `json:"questions"`
}

// newQuizNotificationText is the historical wording every company
// member receives when a quiz is published.
const newQuizNotificationText = "Please take the quiz at any time convenient for you"

// NotificationSink receives the batch a new quiz fans out to members.
type NotificationSink interface {
	CreateBatch(notifications []model.Notification) error
}

type QuizService struct {
	Quizzes       *repository.QuizRepository
	Members       *MemberService
	Roster        MemberLookup
	Notifications NotificationSink
}

func NewQuizService(quizzes *repository.QuizRepository, members *MemberService, roster MemberLookup, notifications NotificationSink) *QuizService {
	return &QuizService{Quizzes: quizzes, Members: members, Roster: roster, Notifications: notifications}
}

// Create adds a quiz with the next sequential display id in the company
// and notifies every member that a new quiz is available.
func (s *QuizService) Create(actorID, companyID uint, req CreateQuizRequest) (*model.Quiz, error) {
	if _, err := s.Members.RequireElevated(companyID, actorID); err != nil {
		return nil, err
	}
	if len(req.Questions) < 2 {
		return nil, util.ErrTooFewQuestions
	}

	questions := make([]model.Question, 0, len(req.Questions))
	for i, input := range req.Questions {
		question, err := buildQuestion(input, i+1)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *question)
	}

	lastID, err := s.Quizzes.LastQuizIDInCompany(companyID)
	if err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		CompanyID:             companyID,
		QuizIDInCompany:       lastID + 1,
		QuizName:              req.QuizName,
		Description:           req.Description,
		QuizToBePassedInHours: req.QuizToBePassedInHours,
	}
	if err := s.Quizzes.Create(quiz, questions); err != nil {
		return nil, err
	}

	if err := s.notifyMembers(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) notifyMembers(quiz *model.Quiz) error {
	members, err := s.Roster.FindAllByCompany(quiz.CompanyID)
	if err != nil {
		return err
	}

	now := time.Now().Format(model.TimeLayout)
	notifications := make([]model.Notification, 0, len(members))
	for _, member := range members {
		notifications = append(notifications, model.Notification{
			Status:       model.NotificationUnread,
			DateTime:     now,
			Text:         newQuizNotificationText,
			CompanyID:    quiz.CompanyID,
			UserID:       member.UserID,
			QuizRecordID: quiz.QuizRecordID,
		})
	}
	return s.Notifications.CreateBatch(notifications)
}

// List shows every quiz of the company to its members.
func (s *QuizService) List(actorID, companyID uint) ([]model.Quiz, error) {
	if _, err := s.Members.Membership(companyID, actorID); err != nil {
		return nil, err
	}
	return s.Quizzes.FindAllByCompany(companyID)
}

// Get returns the quiz with its questions. Correct answers never
// serialize out.
func (s *QuizService) Get(actorID, companyID, quizIDInCompany uint) (*QuizWithQuestions, error) {
	if _, err := s.Members.Membership(companyID, actorID); err != nil {
		return nil, err
	}

	quiz, err := s.find(companyID, quizIDInCompany)
	if err != nil {
		return nil, err
	}
	questions, err := s.Quizzes.QuestionsForQuiz(quiz.QuizRecordID)
	if err != nil {
		return nil, err
	}
	return &QuizWithQuestions{Quiz: *quiz, Questions: questions}, nil
}

func (s *QuizService) Update(actorID, companyID, quizIDInCompany uint, req UpdateQuizRequest) (*model.Quiz, error) {
	if _, err := s.Members.RequireElevated(companyID, actorID); err != nil {
		return nil, err
	}
	quiz, err := s.find(companyID, quizIDInCompany)
	if err != nil {
		return nil, err
	}

	patch := &model.QuizPatch{QuizName: req.QuizName, Description: req.Description}
	if err := s.Quizzes.ApplyQuizPatch(quiz.QuizRecordID, patch); err != nil {
		return nil, err
	}
	return s.find(companyID, quizIDInCompany)
}

// UpdateQuestion patches one question, addressed by its sequence number
// inside the quiz.
func (s *QuizService) UpdateQuestion(actorID, companyID, quizIDInCompany uint, req UpdateQuestionRequest) error {
	if _, err := s.Members.RequireElevated(companyID, actorID); err != nil {
		return err
	}
	quiz, err := s.find(companyID, quizIDInCompany)
	if err != nil {
		return err
	}
	if req.AnswerOptions != nil && len(req.AnswerOptions) < 2 {
		return util.ErrTooFewOptions
	}

	patch := &model.QuestionPatch{
		QuestionIDInQuiz: req.QuestionIDInQuiz,
		Question:         req.Question,
		AnswerOptions:    req.AnswerOptions,
		CorrectAnswer:    req.CorrectAnswer,
	}
	return s.Quizzes.ApplyQuestionPatch(quiz.QuizRecordID, patch)
}

// AddQuestions appends questions after the quiz's current highest
// sequence number.
func (s *QuizService) AddQuestions(actorID, companyID, quizIDInCompany uint, inputs []QuestionInput) error {
	if _, err := s.Members.RequireElevated(companyID, actorID); err != nil {
		return err
	}
	quiz, err := s.find(companyID, quizIDInCompany)
	if err != nil {
		return err
	}
	existing, err := s.Quizzes.QuestionsForQuiz(quiz.QuizRecordID)
	if err != nil {
		return err
	}

	next := 0
	for _, question := range existing {
		if question.QuestionIDInQuiz > next {
			next = question.QuestionIDInQuiz
		}
	}

	questions := make([]model.Question, 0, len(inputs))
	for i, input := range inputs {
		question, err := buildQuestion(input, next+i+1)
		if err != nil {
			return err
		}
		question.QuizRecordID = quiz.QuizRecordID
		questions = append(questions, *question)
	}
	return s.Quizzes.AddQuestions(questions)
}

// DeleteQuestions removes questions by sequence number, refusing to
// shrink the quiz below two.
func (s *QuizService) DeleteQuestions(actorID, companyID, quizIDInCompany uint, questionIDsInQuiz []int) error {
	if _, err := s.Members.RequireElevated(companyID, actorID); err != nil {
		return err
	}
	quiz, err := s.find(companyID, quizIDInCompany)
	if err != nil {
		return err
	}
	existing, err := s.Quizzes.QuestionsForQuiz(quiz.QuizRecordID)
	if err != nil {
		return err
	}
	if len(existing)-len(questionIDsInQuiz) < 2 {
		return util.ErrTooFewQuestions
	}
	return s.Quizzes.DeleteQuestions(quiz.QuizRecordID, questionIDsInQuiz)
}

func (s *QuizService) Delete(actorID, companyID, quizIDInCompany uint) error {
	if _, err := s.Members.RequireElevated(companyID, actorID); err != nil {
		return err
	}
	quiz, err := s.find(companyID, quizIDInCompany)
	if err != nil {
		return err
	}
	return s.Quizzes.Delete(quiz.QuizRecordID)
}

func (s *QuizService) find(companyID, quizIDInCompany uint) (*model.Quiz, error) {
	quiz, err := s.Quizzes.FindByCompanyAndDisplayID(companyID, quizIDInCompany)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

func buildQuestion(input QuestionInput, sequence int) (*model.Question, error) {
	if len(input.AnswerOptions) < 2 {
		return nil, util.ErrTooFewOptions
	}
	found := false
	for _, option := range input.AnswerOptions {
		if option == input.CorrectAnswer {
			found = true
			break
		}
	}
	if !found {
		return nil, util.ErrAnswerNotInOptions
	}
	return &model.Question{
		QuestionIDInQuiz: sequence,
		Question:         input.Question,
		AnswerOptions:    input.AnswerOptions,
		CorrectAnswer:    input.CorrectAnswer,
	}, nil
}
