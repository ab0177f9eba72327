package service

import (
	"errors"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/repository"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"gorm.io/gorm"
)

type MemberService struct {
	Members *repository.MemberRepository
}

func NewMemberService(members *repository.MemberRepository) *MemberService {
	return &MemberService{Members: members}
}

func (s *MemberService) List(actorID, companyID uint) ([]model.MemberRecord, error) {
	if _, err := s.Membership(companyID, actorID); err != nil {
		return nil, err
	}
	return s.Members.FindAllByCompany(companyID)
}

// Membership resolves the actor's member record, ErrMemberNotFound when
// the user is not in the company.
func (s *MemberService) Membership(companyID, userID uint) (*model.MemberRecord, error) {
	member, err := s.Members.FindByCompanyAndUser(companyID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// RequireElevated gates owner/admin-only operations.
func (s *MemberService) RequireElevated(companyID, userID uint) (*model.MemberRecord, error) {
	member, err := s.Membership(companyID, userID)
	if err != nil {
		if errors.Is(err, util.ErrMemberNotFound) {
			return nil, util.ErrPermissionDenied
		}
		return nil, err
	}
	if !member.IsElevated() {
		return nil, util.ErrPermissionDenied
	}
	return member, nil
}

// AppointAdmin promotes a plain member. Only the owner appoints.
func (s *MemberService) AppointAdmin(actorID, companyID, companyMemberID uint) error {
	return s.changeRole(actorID, companyID, companyMemberID, model.RoleMember, model.RoleAdmin)
}

// RemoveAdmin demotes an admin back to plain member.
func (s *MemberService) RemoveAdmin(actorID, companyID, companyMemberID uint) error {
	return s.changeRole(actorID, companyID, companyMemberID, model.RoleAdmin, model.RoleMember)
}

func (s *MemberService) changeRole(actorID, companyID, companyMemberID uint, fromRole, toRole string) error {
	actor, err := s.Membership(companyID, actorID)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleOwner {
		return util.ErrPermissionDenied
	}

	target, err := s.GetByMemberID(companyID, companyMemberID)
	if err != nil {
		return err
	}
	if target.Role != fromRole {
		return util.ErrPermissionDenied
	}
	return s.Members.UpdateRole(companyID, companyMemberID, toRole)
}

// Kick removes a member. Owners and admins may kick, the owner is
// untouchable and admins cannot kick each other.
func (s *MemberService) Kick(actorID, companyID, companyMemberID uint) error {
	actor, err := s.RequireElevated(companyID, actorID)
	if err != nil {
		return err
	}

	target, err := s.GetByMemberID(companyID, companyMemberID)
	if err != nil {
		return err
	}
	if target.Role == model.RoleOwner {
		return util.ErrPermissionDenied
	}
	if target.Role == model.RoleAdmin && actor.Role != model.RoleOwner {
		return util.ErrPermissionDenied
	}
	return s.Members.DeleteByMemberID(companyID, companyMemberID)
}

// Leave removes the actor's own membership. The owner cannot leave the
// company they own.
func (s *MemberService) Leave(actorID, companyID uint) error {
	member, err := s.Membership(companyID, actorID)
	if err != nil {
		return err
	}
	if member.Role == model.RoleOwner {
		return util.ErrPermissionDenied
	}
	return s.Members.DeleteByUserID(companyID, actorID)
}

func (s *MemberService) GetByMemberID(companyID, companyMemberID uint) (*model.MemberRecord, error) {
	member, err := s.Members.FindByCompanyAndMemberID(companyID, companyMemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}
