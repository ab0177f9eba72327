package repository

import (
	"errors"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"gorm.io/gorm"
)

// ResultsFilter narrows quiz_results queries. Zero fields are ignored;
// the supported combinations are user, user+company, user+company+quiz,
// company, and company+quiz.
type ResultsFilter struct {
	UserID       uint
	CompanyID    uint
	QuizRecordID uint
}

// ResultsRepository is the durable side of attempt recording: an
// append-only table of cumulative attempt summaries.
type ResultsRepository struct {
	DB *gorm.DB
}

func NewResultsRepository(db *gorm.DB) *ResultsRepository {
	return &ResultsRepository{DB: db}
}

func (r *ResultsRepository) Append(result *model.QuizResult) error {
	return r.DB.Create(result).Error
}

// FindLatest returns the summary with the highest number_of_questions
// for the triple, or nil when the user never attempted the quiz. The
// counter is cumulative and strictly increasing, so it doubles as the
// attempt ordering.
func (r *ResultsRepository) FindLatest(userID, companyID, quizRecordID uint) (*model.QuizResult, error) {
	var result model.QuizResult
	err := r.DB.Where("user_id = ? AND company_id = ? AND quiz_record_id = ?", userID, companyID, quizRecordID).
		Order("number_of_questions DESC").
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultsRepository) FindAll(filter ResultsFilter) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.scoped(filter).Order("results_id").Find(&results).Error
	return results, err
}

// Average is the server-side mean of average_result over the filter.
// The second return value is false when no rows match.
func (r *ResultsRepository) Average(filter ResultsFilter) (float64, bool, error) {
	var avg *float64
	err := r.scoped(filter).Select("AVG(average_result)").Scan(&avg).Error
	if err != nil {
		return 0, false, err
	}
	if avg == nil {
		return 0, false, nil
	}
	return *avg, true, nil
}

func (r *ResultsRepository) scoped(filter ResultsFilter) *gorm.DB {
	tx := r.DB.Model(&model.QuizResult{})
	if filter.UserID != 0 {
		tx = tx.Where("user_id = ?", filter.UserID)
	}
	if filter.CompanyID != 0 {
		tx = tx.Where("company_id = ?", filter.CompanyID)
	}
	if filter.QuizRecordID != 0 {
		tx = tx.Where("quiz_record_id = ?", filter.QuizRecordID)
	}
	return tx
}
