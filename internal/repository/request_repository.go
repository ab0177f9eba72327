package repository

import (
	"time"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"gorm.io/gorm"
)

type RequestRepository struct {
	DB *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{DB: db}
}

func (r *RequestRepository) Create(request *model.Request) error {
	now := time.Now().Format(model.TimeLayout)
	request.Status = model.StatusNew
	request.CreatedOn = now
	request.UpdatedOn = now
	return r.DB.Create(request).Error
}

func (r *RequestRepository) FindByID(requestID uint) (*model.Request, error) {
	var request model.Request
	err := r.DB.First(&request, requestID).Error
	return &request, err
}

func (r *RequestRepository) FindAllByUser(userID uint) ([]model.Request, error) {
	var requests []model.Request
	err := r.DB.Where("from_user_id = ?", userID).Order("request_id").Find(&requests).Error
	return requests, err
}

func (r *RequestRepository) FindAllByCompany(companyID uint) ([]model.Request, error) {
	var requests []model.Request
	err := r.DB.Where("to_company_id = ?", companyID).Order("request_id").Find(&requests).Error
	return requests, err
}

func (r *RequestRepository) UpdateStatus(requestID uint, status string) error {
	return r.DB.Model(&model.Request{}).
		Where("request_id = ?", requestID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_on": time.Now().Format(model.TimeLayout),
		}).Error
}

func (r *RequestRepository) Delete(requestID uint) error {
	return r.DB.Delete(&model.Request{}, requestID).Error
}
