package service

import (
	"errors"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/repository"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"gorm.io/gorm"
)

type CreateCompanyRequest struct {
	CompanyName        string `json:"company_name" binding:"required"`
	CompanyDescription string `json:"company_description"`
}

type UpdateCompanyRequest struct {
	CompanyName        *string `json:"company_name"`
	CompanyDescription *string `json:"company_description"`
	CompanyVisible     *bool   `json:"company_visible"`
}

type CompanyService struct {
	Companies *repository.CompanyRepository
	Members   *repository.MemberRepository
}

func NewCompanyService(companies *repository.CompanyRepository, members *repository.MemberRepository) *CompanyService {
	return &CompanyService{Companies: companies, Members: members}
}

// Create registers the company and enrolls the creator as its owner
// member in the same breath.
func (s *CompanyService) Create(ownerID uint, req CreateCompanyRequest) (*model.Company, error) {
	company := &model.Company{
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		CompanyVisible:     true,
		CompanyOwnerID:     ownerID,
	}
	if err := s.Companies.Create(company); err != nil {
		return nil, err
	}
	if _, err := s.Members.Create(ownerID, company.CompanyID, model.RoleOwner); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) ListVisible() ([]model.Company, error) {
	return s.Companies.FindAllVisible()
}

// Get returns the company. Hidden companies are only visible to their
// own members.
func (s *CompanyService) Get(actorID, companyID uint) (*model.Company, error) {
	company, err := s.Companies.FindByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCompanyNotFound
		}
		return nil, err
	}
	if !company.CompanyVisible {
		if _, err := s.Members.FindByCompanyAndUser(companyID, actorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrCompanyNotFound
			}
			return nil, err
		}
	}
	return company, nil
}

func (s *CompanyService) Update(actorID, companyID uint, req UpdateCompanyRequest) (*model.Company, error) {
	company, err := s.ownedBy(actorID, companyID)
	if err != nil {
		return nil, err
	}

	patch := &model.CompanyPatch{
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		CompanyVisible:     req.CompanyVisible,
	}
	if err := s.Companies.ApplyPatch(company.CompanyID, patch); err != nil {
		return nil, err
	}
	return s.Companies.FindByID(companyID)
}

func (s *CompanyService) Delete(actorID, companyID uint) error {
	if _, err := s.ownedBy(actorID, companyID); err != nil {
		return err
	}
	return s.Companies.Delete(companyID)
}

func (s *CompanyService) ownedBy(actorID, companyID uint) (*model.Company, error) {
	company, err := s.Companies.FindByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCompanyNotFound
		}
		return nil, err
	}
	if company.CompanyOwnerID != actorID {
		return nil, util.ErrPermissionDenied
	}
	return company, nil
}
