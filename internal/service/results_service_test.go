package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/repository"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeQuizStore struct {
	quiz      *model.Quiz
	questions []model.Question
}

func (f *fakeQuizStore) FindByCompanyAndDisplayID(companyID, quizIDInCompany uint) (*model.Quiz, error) {
	if f.quiz == nil || f.quiz.CompanyID != companyID || f.quiz.QuizIDInCompany != quizIDInCompany {
		return nil, gorm.ErrRecordNotFound
	}
	return f.quiz, nil
}

func (f *fakeQuizStore) QuestionsForQuiz(quizRecordID uint) ([]model.Question, error) {
	return f.questions, nil
}

type fakeResultsStore struct {
	rows []model.QuizResult
}

func (f *fakeResultsStore) Append(result *model.QuizResult) error {
	f.rows = append(f.rows, *result)
	return nil
}

func (f *fakeResultsStore) FindLatest(userID, companyID, quizRecordID uint) (*model.QuizResult, error) {
	var latest *model.QuizResult
	for i := range f.rows {
		row := &f.rows[i]
		if row.UserID != userID || row.CompanyID != companyID || row.QuizRecordID != quizRecordID {
			continue
		}
		if latest == nil || row.NumberOfQuestions > latest.NumberOfQuestions {
			latest = row
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeResultsStore) FindAll(filter repository.ResultsFilter) ([]model.QuizResult, error) {
	var matched []model.QuizResult
	for _, row := range f.rows {
		if filter.UserID != 0 && row.UserID != filter.UserID {
			continue
		}
		if filter.CompanyID != 0 && row.CompanyID != filter.CompanyID {
			continue
		}
		if filter.QuizRecordID != 0 && row.QuizRecordID != filter.QuizRecordID {
			continue
		}
		matched = append(matched, row)
	}
	return matched, nil
}

func (f *fakeResultsStore) Average(filter repository.ResultsFilter) (float64, bool, error) {
	rows, _ := f.FindAll(filter)
	if len(rows) == 0 {
		return 0, false, nil
	}
	sum := 0.0
	for _, row := range rows {
		sum += row.AverageResult
	}
	return sum / float64(len(rows)), true, nil
}

type fakeAuditWriter struct {
	batches [][]AuditEntry
	err     error
}

func (f *fakeAuditWriter) Write(ctx context.Context, entries []AuditEntry, passDate time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, entries)
	return nil
}

func newTestQuiz() (*fakeQuizStore, *fakeResultsStore, *fakeAuditWriter, *ResultsService) {
	quizzes := &fakeQuizStore{
		quiz: &model.Quiz{QuizRecordID: 7, CompanyID: 4, QuizIDInCompany: 1, QuizName: "Onboarding"},
		questions: []model.Question{
			{QuestionIDInQuiz: 1, Question: "2+2?", AnswerOptions: []string{"3", "4"}, CorrectAnswer: "4"},
			{QuestionIDInQuiz: 2, Question: "Capital of Ukraine?", AnswerOptions: []string{"Kyiv", "Lviv"}, CorrectAnswer: "Kyiv"},
		},
	}
	results := &fakeResultsStore{}
	audit := &fakeAuditWriter{}
	svc := NewResultsService(quizzes, results, audit)
	return quizzes, results, audit, svc
}

func TestRecordResultsFirstAttempt(t *testing.T) {
	_, results, audit, svc := newTestQuiz()

	summary, err := svc.RecordResults(context.Background(), AnswerQuiz{
		Answers: map[string]string{"1": "4", "2": "Lviv"},
	}, 4, 1, 11)
	require.NoError(t, err)

	// First attempt stores the raw correct count as the average.
	assert.Equal(t, 1, summary.CorrectAnswers)
	assert.Equal(t, 2, summary.NumberOfQuestions)
	assert.Equal(t, 1.0, summary.AverageResult)
	assert.Equal(t, uint(11), summary.UserID)
	assert.Equal(t, uint(4), summary.CompanyID)
	assert.Equal(t, uint(7), summary.QuizRecordID)
	assert.NotEmpty(t, summary.PassDate)

	require.Len(t, results.rows, 1)
	require.Len(t, audit.batches, 1)
	require.Len(t, audit.batches[0], 2)
	assert.Equal(t, "4", audit.batches[0][0].UserAnswer)
	assert.Equal(t, "4", audit.batches[0][0].CorrectAnswer)
	assert.Equal(t, "Lviv", audit.batches[0][1].UserAnswer)
	assert.Equal(t, "Kyiv", audit.batches[0][1].CorrectAnswer)
}

func TestRecordResultsBlendsWithHistory(t *testing.T) {
	_, results, _, svc := newTestQuiz()
	ctx := context.Background()

	_, err := svc.RecordResults(ctx, AnswerQuiz{Answers: map[string]string{"1": "4", "2": "Lviv"}}, 4, 1, 11)
	require.NoError(t, err)

	summary, err := svc.RecordResults(ctx, AnswerQuiz{Answers: map[string]string{"1": "4", "2": "Lviv"}}, 4, 1, 11)
	require.NoError(t, err)

	// Counters accumulate; the running average blends prior totals with
	// this attempt weighted by its question count.
	assert.Equal(t, 2, summary.CorrectAnswers)
	assert.Equal(t, 4, summary.NumberOfQuestions)
	assert.Equal(t, 1.0, summary.AverageResult)
	assert.Len(t, results.rows, 2)

	// The first row is untouched: the store is append-only.
	assert.Equal(t, 2, results.rows[0].NumberOfQuestions)
}

func TestRecordResultsCumulativeCounters(t *testing.T) {
	_, results, _, svc := newTestQuiz()
	ctx := context.Background()
	answers := AnswerQuiz{Answers: map[string]string{"1": "4", "2": "Kyiv"}}

	for i := 0; i < 3; i++ {
		_, err := svc.RecordResults(ctx, answers, 4, 1, 11)
		require.NoError(t, err)
	}

	// number_of_questions grows strictly, so the highest row is always
	// the latest.
	require.Len(t, results.rows, 3)
	assert.Equal(t, 2, results.rows[0].NumberOfQuestions)
	assert.Equal(t, 4, results.rows[1].NumberOfQuestions)
	assert.Equal(t, 6, results.rows[2].NumberOfQuestions)
	assert.Equal(t, 6, results.rows[2].CorrectAnswers)
	assert.Equal(t, 2.0, results.rows[2].AverageResult)
}

func TestRecordResultsConcurrentSameTriple(t *testing.T) {
	_, results, _, svc := newTestQuiz()
	answers := AnswerQuiz{Answers: map[string]string{"1": "4", "2": "Kyiv"}}

	const attempts = 25
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordResults(context.Background(), answers, 4, 1, 11)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Recording for one (user, company, quiz) triple is serialized, so
	// no attempt can read a stale prior summary and drop another's
	// contribution: the latest counters equal the sum over all attempts.
	require.Len(t, results.rows, attempts)
	latest, err := results.FindLatest(11, 4, 7)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, attempts*2, latest.NumberOfQuestions)
	assert.Equal(t, attempts*2, latest.CorrectAnswers)
}

func TestRecordResultsValidation(t *testing.T) {
	_, _, _, svc := newTestQuiz()
	ctx := context.Background()

	_, err := svc.RecordResults(ctx, AnswerQuiz{Answers: map[string]string{"1": "4"}}, 4, 1, 11)
	assert.ErrorIs(t, err, util.ErrNotAllAnswered)

	_, err = svc.RecordResults(ctx, AnswerQuiz{Answers: map[string]string{"1": "4", "2": ""}}, 4, 1, 11)
	assert.ErrorIs(t, err, util.ErrNotAllAnswered)

	_, err = svc.RecordResults(ctx, AnswerQuiz{Answers: map[string]string{"1": "4", "2": "Kyiv"}}, 4, 99, 11)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestRecordResultsIgnoresUnknownKeys(t *testing.T) {
	_, _, audit, svc := newTestQuiz()

	summary, err := svc.RecordResults(context.Background(), AnswerQuiz{
		Answers: map[string]string{"1": "4", "2": "Kyiv", "99": "x", "abc": "y"},
	}, 4, 1, 11)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.CorrectAnswers)
	assert.Equal(t, 2, summary.NumberOfQuestions)
	// Only answers matching a real question produce audit entries.
	require.Len(t, audit.batches, 1)
	assert.Len(t, audit.batches[0], 2)
}

func TestRecordResultsCaseSensitiveMatch(t *testing.T) {
	_, _, _, svc := newTestQuiz()

	summary, err := svc.RecordResults(context.Background(), AnswerQuiz{
		Answers: map[string]string{"1": "4", "2": "kyiv"},
	}, 4, 1, 11)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.CorrectAnswers)
}

func TestRecordResultsSurvivesAuditFailure(t *testing.T) {
	_, results, audit, svc := newTestQuiz()
	audit.err = errors.New("redis down")

	summary, err := svc.RecordResults(context.Background(), AnswerQuiz{
		Answers: map[string]string{"1": "4", "2": "Kyiv"},
	}, 4, 1, 11)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.CorrectAnswers)
	assert.Len(t, results.rows, 1)
}

func TestAveragesUseLegacyRounding(t *testing.T) {
	_, results, _, svc := newTestQuiz()
	results.rows = []model.QuizResult{
		{UserID: 11, CompanyID: 4, QuizRecordID: 7, AverageResult: 0.4},
		{UserID: 11, CompanyID: 4, QuizRecordID: 7, AverageResult: 0.54},
	}

	// Mean 0.47 keeps two fractional digits, so the legacy correction
	// folds the second digit up.
	average, err := svc.MemberAverage(11, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.5, average)

	average, err = svc.UserAverage(11)
	require.NoError(t, err)
	assert.Equal(t, 0.5, average)
}

func TestAveragesWithNoRows(t *testing.T) {
	_, _, _, svc := newTestQuiz()

	_, err := svc.UserAverage(42)
	assert.ErrorIs(t, err, util.ErrNoResults)

	_, err = svc.MemberAverage(42, 4)
	assert.ErrorIs(t, err, util.ErrNoResults)
}
