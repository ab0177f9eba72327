package repository

import (
	"errors"
	"time"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"gorm.io/gorm"
)

type MemberRepository struct {
	DB *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

// LastCompanyMemberID returns the highest per-company member id handed
// out so far, 0 when the company has no members yet.
func (r *MemberRepository) LastCompanyMemberID(companyID uint) (uint, error) {
	var member model.MemberRecord
	err := r.DB.Where("company_id = ?", companyID).
		Order("company_member_id DESC").
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return member.CompanyMemberID, nil
}

func (r *MemberRepository) Create(userID, companyID uint, role string) (*model.MemberRecord, error) {
	lastID, err := r.LastCompanyMemberID(companyID)
	if err != nil {
		return nil, err
	}
	now := time.Now().Format(model.TimeLayout)
	member := &model.MemberRecord{
		CompanyMemberID: lastID + 1,
		CompanyID:       companyID,
		UserID:          userID,
		Role:            role,
		CreatedOn:       now,
		UpdatedOn:       now,
	}
	return member, r.DB.Create(member).Error
}

func (r *MemberRepository) FindByCompanyAndUser(companyID, userID uint) (*model.MemberRecord, error) {
	var member model.MemberRecord
	err := r.DB.Where("company_id = ? AND user_id = ?", companyID, userID).First(&member).Error
	return &member, err
}

func (r *MemberRepository) FindByCompanyAndMemberID(companyID, companyMemberID uint) (*model.MemberRecord, error) {
	var member model.MemberRecord
	err := r.DB.Where("company_id = ? AND company_member_id = ?", companyID, companyMemberID).First(&member).Error
	return &member, err
}

func (r *MemberRepository) FindAllByCompany(companyID uint) ([]model.MemberRecord, error) {
	var members []model.MemberRecord
	err := r.DB.Where("company_id = ?", companyID).Order("company_member_id").Find(&members).Error
	return members, err
}

func (r *MemberRepository) UpdateRole(companyID, companyMemberID uint, role string) error {
	return r.DB.Model(&model.MemberRecord{}).
		Where("company_id = ? AND company_member_id = ?", companyID, companyMemberID).
		Updates(map[string]interface{}{
			"role":       role,
			"updated_on": time.Now().Format(model.TimeLayout),
		}).Error
}

func (r *MemberRepository) DeleteByMemberID(companyID, companyMemberID uint) error {
	return r.DB.Where("company_id = ? AND company_member_id = ?", companyID, companyMemberID).
		Delete(&model.MemberRecord{}).Error
}

func (r *MemberRepository) DeleteByUserID(companyID, userID uint) error {
	return r.DB.Where("company_id = ? AND user_id = ?", companyID, userID).
		Delete(&model.MemberRecord{}).Error
}
