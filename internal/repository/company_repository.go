package repository

import (
	"time"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	DB *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

func (r *CompanyRepository) Create(company *model.Company) error {
	now := time.Now().Format(model.TimeLayout)
	company.CreatedOn = now
	company.UpdatedOn = now
	return r.DB.Create(company).Error
}

func (r *CompanyRepository) FindByID(companyID uint) (*model.Company, error) {
	var company model.Company
	err := r.DB.First(&company, companyID).Error
	return &company, err
}

func (r *CompanyRepository) FindAllVisible() ([]model.Company, error) {
	var companies []model.Company
	err := r.DB.Where("company_visible = ?", true).Order("company_id").Find(&companies).Error
	return companies, err
}

func (r *CompanyRepository) ApplyPatch(companyID uint, patch *model.CompanyPatch) error {
	updates := map[string]interface{}{}
	if patch.CompanyName != nil {
		updates["company_name"] = *patch.CompanyName
	}
	if patch.CompanyDescription != nil {
		updates["company_description"] = *patch.CompanyDescription
	}
	if patch.CompanyVisible != nil {
		updates["company_visible"] = *patch.CompanyVisible
	}
	if len(updates) == 0 {
		return nil
	}
	updates["updated_on"] = time.Now().Format(model.TimeLayout)
	return r.DB.Model(&model.Company{}).Where("company_id = ?", companyID).Updates(updates).Error
}

func (r *CompanyRepository) Delete(companyID uint) error {
	return r.DB.Delete(&model.Company{}, companyID).Error
}
