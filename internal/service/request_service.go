package service

import (
	"errors"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/repository"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"gorm.io/gorm"
)

type CreateRequestRequest struct {
	ToCompanyID    uint   `json:"to_company_id" binding:"required"`
	RequestMessage string `json:"request_message"`
}

type RequestService struct {
	Requests  *repository.RequestRepository
	Companies *repository.CompanyRepository
	Members   *MemberService
}

func NewRequestService(requests *repository.RequestRepository, companies *repository.CompanyRepository, members *MemberService) *RequestService {
	return &RequestService{Requests: requests, Companies: companies, Members: members}
}

// Create files a join request, unless the user already belongs to the
// company.
func (s *RequestService) Create(actorID uint, req CreateRequestRequest) (*model.Request, error) {
	if _, err := s.Companies.FindByID(req.ToCompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCompanyNotFound
		}
		return nil, err
	}
	if _, err := s.Members.Membership(req.ToCompanyID, actorID); err == nil {
		return nil, util.ErrPermissionDenied
	} else if !errors.Is(err, util.ErrMemberNotFound) {
		return nil, err
	}

	request := &model.Request{
		FromUserID:     actorID,
		ToCompanyID:    req.ToCompanyID,
		RequestMessage: req.RequestMessage,
	}
	return request, s.Requests.Create(request)
}

// ListForUser shows the actor's own outgoing requests.
func (s *RequestService) ListForUser(actorID uint) ([]model.Request, error) {
	return s.Requests.FindAllByUser(actorID)
}

// ListForCompany shows incoming requests to the company's owner and
// admins.
func (s *RequestService) ListForCompany(actorID, companyID uint) ([]model.Request, error) {
	if _, err := s.Members.RequireElevated(companyID, actorID); err != nil {
		return nil, err
	}
	return s.Requests.FindAllByCompany(companyID)
}

// Accept resolves the request on the company side and enrolls the
// requester as a plain member.
func (s *RequestService) Accept(actorID, requestID uint) error {
	request, err := s.pendingForCompany(actorID, requestID)
	if err != nil {
		return err
	}
	if _, err := s.Members.Members.Create(request.FromUserID, request.ToCompanyID, model.RoleMember); err != nil {
		return err
	}
	return s.Requests.UpdateStatus(requestID, model.StatusAccepted)
}

func (s *RequestService) Decline(actorID, requestID uint) error {
	if _, err := s.pendingForCompany(actorID, requestID); err != nil {
		return err
	}
	return s.Requests.UpdateStatus(requestID, model.StatusDeclined)
}

// Cancel withdraws the actor's own still-pending request.
func (s *RequestService) Cancel(actorID, requestID uint) error {
	request, err := s.Requests.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRequestNotFound
		}
		return err
	}
	if request.FromUserID != actorID {
		return util.ErrPermissionDenied
	}
	if request.Status != model.StatusNew {
		return util.ErrStatusResolved
	}
	return s.Requests.Delete(requestID)
}

func (s *RequestService) pendingForCompany(actorID, requestID uint) (*model.Request, error) {
	request, err := s.Requests.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRequestNotFound
		}
		return nil, err
	}
	if _, err := s.Members.RequireElevated(request.ToCompanyID, actorID); err != nil {
		return nil, err
	}
	if request.Status != model.StatusNew {
		return nil, util.ErrStatusResolved
	}
	return request, nil
}
