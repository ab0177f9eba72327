package repository

import (
	"time"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"gorm.io/gorm"
)

type InviteRepository struct {
	DB *gorm.DB
}

func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{DB: db}
}

func (r *InviteRepository) Create(invite *model.Invite) error {
	now := time.Now().Format(model.TimeLayout)
	invite.Status = model.StatusNew
	invite.CreatedOn = now
	invite.UpdatedOn = now
	return r.DB.Create(invite).Error
}

func (r *InviteRepository) FindByID(inviteID uint) (*model.Invite, error) {
	var invite model.Invite
	err := r.DB.First(&invite, inviteID).Error
	return &invite, err
}

func (r *InviteRepository) FindAllByUser(userID uint) ([]model.Invite, error) {
	var invites []model.Invite
	err := r.DB.Where("to_user_id = ?", userID).Order("invite_id").Find(&invites).Error
	return invites, err
}

func (r *InviteRepository) FindAllByCompany(companyID uint) ([]model.Invite, error) {
	var invites []model.Invite
	err := r.DB.Where("from_company_id = ?", companyID).Order("invite_id").Find(&invites).Error
	return invites, err
}

func (r *InviteRepository) UpdateStatus(inviteID uint, status string) error {
	return r.DB.Model(&model.Invite{}).
		Where("invite_id = ?", inviteID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_on": time.Now().Format(model.TimeLayout),
		}).Error
}

func (r *InviteRepository) Delete(inviteID uint) error {
	return r.DB.Delete(&model.Invite{}, inviteID).Error
}
