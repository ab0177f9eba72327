package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/repository"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/DmytroRudikov/Meduzzen-internship/pkg/logger"
	"github.com/DmytroRudikov/Meduzzen-internship/pkg/monitoring"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AnswerQuiz is a submission: question sequence number (as text) to the
// chosen answer. Every question of the quiz must be answered.
type AnswerQuiz struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// QuizStore is the slice of the quiz repository the aggregator needs.
type QuizStore interface {
	FindByCompanyAndDisplayID(companyID, quizIDInCompany uint) (*model.Quiz, error)
	QuestionsForQuiz(quizRecordID uint) ([]model.Question, error)
}

// ResultsStore is the durable, append-only side of attempt recording.
type ResultsStore interface {
	Append(result *model.QuizResult) error
	FindLatest(userID, companyID, quizRecordID uint) (*model.QuizResult, error)
	FindAll(filter repository.ResultsFilter) ([]model.QuizResult, error)
	Average(filter repository.ResultsFilter) (float64, bool, error)
}

// AuditWriter receives the per-question detail of a recorded attempt.
type AuditWriter interface {
	Write(ctx context.Context, entries []AuditEntry, passDate time.Time) error
}

// tripleLock serializes attempt recording per (user, company, quiz)
// triple so two concurrent submissions cannot both read the same prior
// summary and blend independently, silently dropping one contribution.
type tripleLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (t *tripleLock) get(userID, companyID, quizRecordID uint) *sync.Mutex {
	key := fmt.Sprintf("%d:%d:%d", userID, companyID, quizRecordID)
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.locks == nil {
		t.locks = make(map[string]*sync.Mutex)
	}
	m, ok := t.locks[key]
	if !ok {
		m = &sync.Mutex{}
		t.locks[key] = m
	}
	return m
}

type ResultsService struct {
	Quizzes QuizStore
	Results ResultsStore
	Audit   AuditWriter

	recording tripleLock
}

func NewResultsService(quizzes QuizStore, results ResultsStore, audit AuditWriter) *ResultsService {
	return &ResultsService{
		Quizzes: quizzes,
		Results: results,
		Audit:   audit,
	}
}

// RecordResults scores a submission, blends it into the user's running
// totals for the quiz, appends the durable summary row and hands the
// per-question detail to the audit cache. The cache write is
// best-effort: the summary is the source of truth and a cache failure
// must not fail the attempt.
func (s *ResultsService) RecordResults(ctx context.Context, answers AnswerQuiz, companyID, quizIDInCompany, userID uint) (*model.QuizResult, error) {
	quiz, err := s.Quizzes.FindByCompanyAndDisplayID(companyID, quizIDInCompany)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	questions, err := s.Quizzes.QuestionsForQuiz(quiz.QuizRecordID)
	if err != nil {
		return nil, err
	}

	if err := validateSubmission(answers, len(questions)); err != nil {
		return nil, err
	}

	resultCount, entries := scoreSubmission(answers, questions, quiz, userID)

	lock := s.recording.get(userID, companyID, quiz.QuizRecordID)
	lock.Lock()
	defer lock.Unlock()

	prior, err := s.Results.FindLatest(userID, companyID, quiz.QuizRecordID)
	if err != nil {
		return nil, err
	}

	passDate := time.Now()
	summary := blendWithHistory(prior, resultCount, len(questions))
	summary.PassDate = passDate.Format(model.TimeLayout)
	summary.UserID = userID
	summary.CompanyID = companyID
	summary.QuizRecordID = quiz.QuizRecordID

	if err := s.Results.Append(summary); err != nil {
		return nil, err
	}

	if err := s.Audit.Write(ctx, entries, passDate); err != nil {
		logger.Log.Warn("audit cache write dropped",
			zap.Uint("user_id", userID),
			zap.Uint("company_id", companyID),
			zap.Uint("quiz_record_id", quiz.QuizRecordID),
			zap.Error(err))
		monitoring.AttemptCacheWriteFailures.Inc()
	}

	return summary, nil
}

// validateSubmission rejects submissions with empty answers or fewer
// answers than the quiz has questions. Unknown extra keys are accepted
// and simply never match a question.
func validateSubmission(answers AnswerQuiz, questionCount int) error {
	for _, answer := range answers.Answers {
		if answer == "" {
			return util.ErrNotAllAnswered
		}
	}
	if len(answers.Answers) < questionCount {
		return util.ErrNotAllAnswered
	}
	return nil
}

// scoreSubmission counts exact, case-sensitive matches against each
// question's stored correct answer and builds one audit entry per
// answered question, in question order. Submitted keys that match no
// question are ignored.
func scoreSubmission(answers AnswerQuiz, questions []model.Question, quiz *model.Quiz, userID uint) (int, []AuditEntry) {
	resultCount := 0
	entries := make([]AuditEntry, 0, len(questions))
	for _, question := range questions {
		answer, ok := answers.Answers[strconv.Itoa(question.QuestionIDInQuiz)]
		if !ok {
			continue
		}
		if question.CorrectAnswer == answer {
			resultCount++
		}
		entries = append(entries, AuditEntry{
			CompanyID:        quiz.CompanyID,
			UserID:           userID,
			QuizIDInCompany:  quiz.QuizIDInCompany,
			QuestionIDInQuiz: question.QuestionIDInQuiz,
			Question:         question.Question,
			UserAnswer:       answer,
			CorrectAnswer:    question.CorrectAnswer,
		})
	}
	return resultCount, entries
}

// blendWithHistory folds this attempt into the latest prior summary.
func blendWithHistory(prior *model.QuizResult, resultCount, attemptQuestions int) *model.QuizResult {
	if prior == nil {
		// First attempt: the raw correct count doubles as the stored
		// average, deliberately unrounded.
		return &model.QuizResult{
			AverageResult:     float64(resultCount),
			CorrectAnswers:    resultCount,
			NumberOfQuestions: attemptQuestions,
		}
	}

	numberOfQuestions := prior.NumberOfQuestions + attemptQuestions
	correctAnswers := prior.CorrectAnswers + resultCount
	// The blend weighs the cumulative ratio by this attempt's question
	// count instead of taking a plain mean. Whether that weighting was
	// intentional has never been established; it is kept exactly as the
	// historical rows were produced so old and new averages stay
	// comparable.
	average := correctRounding(roundTwo(float64(correctAnswers) / float64(numberOfQuestions) * float64(attemptQuestions)))

	return &model.QuizResult{
		AverageResult:     average,
		CorrectAnswers:    correctAnswers,
		NumberOfQuestions: numberOfQuestions,
	}
}

// UserResults lists every summary row the user produced anywhere.
func (s *ResultsService) UserResults(userID uint) ([]model.QuizResult, error) {
	return s.Results.FindAll(repository.ResultsFilter{UserID: userID})
}

// MemberResults lists a member's rows inside one company.
func (s *ResultsService) MemberResults(userID, companyID uint) ([]model.QuizResult, error) {
	return s.Results.FindAll(repository.ResultsFilter{UserID: userID, CompanyID: companyID})
}

// MemberResultsByQuiz narrows a member's rows to one quiz, addressed by
// display id.
func (s *ResultsService) MemberResultsByQuiz(userID, companyID, quizIDInCompany uint) ([]model.QuizResult, error) {
	quiz, err := s.Quizzes.FindByCompanyAndDisplayID(companyID, quizIDInCompany)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return s.Results.FindAll(repository.ResultsFilter{UserID: userID, CompanyID: companyID, QuizRecordID: quiz.QuizRecordID})
}

// CompanyResults lists every summary row recorded inside a company.
func (s *ResultsService) CompanyResults(companyID uint) ([]model.QuizResult, error) {
	return s.Results.FindAll(repository.ResultsFilter{CompanyID: companyID})
}

// CompanyResultsByQuiz lists a company's rows for one quiz.
func (s *ResultsService) CompanyResultsByQuiz(companyID, quizIDInCompany uint) ([]model.QuizResult, error) {
	quiz, err := s.Quizzes.FindByCompanyAndDisplayID(companyID, quizIDInCompany)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return s.Results.FindAll(repository.ResultsFilter{CompanyID: companyID, QuizRecordID: quiz.QuizRecordID})
}

// MemberAverage is the member's mean stored average inside one company,
// re-rounded with the legacy correction.
func (s *ResultsService) MemberAverage(userID, companyID uint) (float64, error) {
	return s.roundedAverage(repository.ResultsFilter{UserID: userID, CompanyID: companyID})
}

// UserAverage is the user's system-wide mean stored average.
func (s *ResultsService) UserAverage(userID uint) (float64, error) {
	return s.roundedAverage(repository.ResultsFilter{UserID: userID})
}

func (s *ResultsService) roundedAverage(filter repository.ResultsFilter) (float64, error) {
	average, found, err := s.Results.Average(filter)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, util.ErrNoResults
	}
	return correctRounding(roundTwo(average)), nil
}
