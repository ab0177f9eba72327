package service

import (
	"errors"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/repository"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"gorm.io/gorm"
)

type CreateInviteRequest struct {
	ToUserID      uint   `json:"to_user_id" binding:"required"`
	InviteMessage string `json:"invite_message"`
}

type InviteService struct {
	Invites *repository.InviteRepository
	Users   *repository.UserRepository
	Members *MemberService
}

func NewInviteService(invites *repository.InviteRepository, users *repository.UserRepository, members *MemberService) *InviteService {
	return &InviteService{Invites: invites, Users: users, Members: members}
}

// Create sends an invite on behalf of the company. Only owners and
// admins invite, and not someone already enrolled.
func (s *InviteService) Create(actorID, companyID uint, req CreateInviteRequest) (*model.Invite, error) {
	if _, err := s.Members.RequireElevated(companyID, actorID); err != nil {
		return nil, err
	}
	if _, err := s.Users.FindByID(req.ToUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.Members.Membership(companyID, req.ToUserID); err == nil {
		return nil, util.ErrPermissionDenied
	} else if !errors.Is(err, util.ErrMemberNotFound) {
		return nil, err
	}

	invite := &model.Invite{
		ToUserID:      req.ToUserID,
		FromCompanyID: companyID,
		InviteMessage: req.InviteMessage,
	}
	return invite, s.Invites.Create(invite)
}

// ListForUser shows the actor's own incoming invites.
func (s *InviteService) ListForUser(actorID uint) ([]model.Invite, error) {
	return s.Invites.FindAllByUser(actorID)
}

// ListForCompany shows a company's outgoing invites to its owner and
// admins.
func (s *InviteService) ListForCompany(actorID, companyID uint) ([]model.Invite, error) {
	if _, err := s.Members.RequireElevated(companyID, actorID); err != nil {
		return nil, err
	}
	return s.Invites.FindAllByCompany(companyID)
}

// Accept resolves the invite and enrolls the user as a plain member.
func (s *InviteService) Accept(actorID, inviteID uint) error {
	invite, err := s.pending(actorID, inviteID)
	if err != nil {
		return err
	}
	if _, err := s.Members.Members.Create(actorID, invite.FromCompanyID, model.RoleMember); err != nil {
		return err
	}
	return s.Invites.UpdateStatus(inviteID, model.StatusAccepted)
}

func (s *InviteService) Decline(actorID, inviteID uint) error {
	if _, err := s.pending(actorID, inviteID); err != nil {
		return err
	}
	return s.Invites.UpdateStatus(inviteID, model.StatusDeclined)
}

// Cancel withdraws a still-pending invite on the company side.
func (s *InviteService) Cancel(actorID, inviteID uint) error {
	invite, err := s.Invites.FindByID(inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrInviteNotFound
		}
		return err
	}
	if _, err := s.Members.RequireElevated(invite.FromCompanyID, actorID); err != nil {
		return err
	}
	if invite.Status != model.StatusNew {
		return util.ErrStatusResolved
	}
	return s.Invites.Delete(inviteID)
}

// pending loads the invite and checks the actor is its addressee and
// the status is still open.
func (s *InviteService) pending(actorID, inviteID uint) (*model.Invite, error) {
	invite, err := s.Invites.FindByID(inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInviteNotFound
		}
		return nil, err
	}
	if invite.ToUserID != actorID {
		return nil, util.ErrPermissionDenied
	}
	if invite.Status != model.StatusNew {
		return nil, util.ErrStatusResolved
	}
	return invite, nil
}
