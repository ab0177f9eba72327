package repository

import (
	"encoding/json"
	"errors"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// LastQuizIDInCompany returns the highest display id handed out in the
// company so far, 0 when the company has no quizzes.
func (r *QuizRepository) LastQuizIDInCompany(companyID uint) (uint, error) {
	var quiz model.Quiz
	err := r.DB.Where("company_id = ?", companyID).
		Order("quiz_id_in_company DESC").
		First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return quiz.QuizIDInCompany, nil
}

// Create inserts the quiz and its questions in one transaction.
func (r *QuizRepository) Create(quiz *model.Quiz, questions []model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuizRecordID = quiz.QuizRecordID
		}
		return tx.Create(&questions).Error
	})
}

func (r *QuizRepository) FindByCompanyAndDisplayID(companyID, quizIDInCompany uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("company_id = ? AND quiz_id_in_company = ?", companyID, quizIDInCompany).
		First(&quiz).Error
	return &quiz, err
}

func (r *QuizRepository) FindAllByCompany(companyID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("company_id = ?", companyID).Order("quiz_id_in_company").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) FindByRecordID(quizRecordID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, quizRecordID).Error
	return &quiz, err
}

func (r *QuizRepository) FindByRecordIDs(quizRecordIDs []uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if len(quizRecordIDs) == 0 {
		return quizzes, nil
	}
	err := r.DB.Where("quiz_record_id IN ?", quizRecordIDs).Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) QuestionsForQuiz(quizRecordID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("quiz_record_id = ?", quizRecordID).
		Order("question_id_in_quiz").
		Find(&questions).Error
	return questions, err
}

func (r *QuizRepository) ApplyQuizPatch(quizRecordID uint, patch *model.QuizPatch) error {
	updates := map[string]interface{}{}
	if patch.QuizName != nil {
		updates["quiz_name"] = *patch.QuizName
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&model.Quiz{}).Where("quiz_record_id = ?", quizRecordID).Updates(updates).Error
}

func (r *QuizRepository) ApplyQuestionPatch(quizRecordID uint, patch *model.QuestionPatch) error {
	updates := map[string]interface{}{}
	if patch.Question != nil {
		updates["question"] = *patch.Question
	}
	if patch.AnswerOptions != nil {
		// The column is JSON-serialized; map-based updates bypass the
		// serializer, so encode here.
		encoded, err := json.Marshal(patch.AnswerOptions)
		if err != nil {
			return err
		}
		updates["answer_options"] = string(encoded)
	}
	if patch.CorrectAnswer != nil {
		updates["correct_answer"] = *patch.CorrectAnswer
	}
	if len(updates) == 0 {
		return nil
	}
	return r.DB.Model(&model.Question{}).
		Where("quiz_record_id = ? AND question_id_in_quiz = ?", quizRecordID, patch.QuestionIDInQuiz).
		Updates(updates).Error
}

func (r *QuizRepository) AddQuestions(questions []model.Question) error {
	return r.DB.Create(&questions).Error
}

func (r *QuizRepository) DeleteQuestions(quizRecordID uint, questionIDsInQuiz []int) error {
	return r.DB.Where("quiz_record_id = ? AND question_id_in_quiz IN ?", quizRecordID, questionIDsInQuiz).
		Delete(&model.Question{}).Error
}

// Delete removes the quiz; questions go with it via the FK cascade.
func (r *QuizRepository) Delete(quizRecordID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_record_id = ?", quizRecordID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, quizRecordID).Error
	})
}
