package service

import (
	"errors"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/repository"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	Status    *string `json:"status"`
}

type UserService struct {
	Users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) List() ([]model.User, error) {
	return s.Users.FindAll()
}

func (s *UserService) Get(userID uint) (*model.User, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update applies a partial profile edit. Users may only edit
// themselves; a new password is stored hashed.
func (s *UserService) Update(actorID, userID uint, req UpdateUserRequest) (*model.User, error) {
	if actorID != userID {
		return nil, util.ErrPermissionDenied
	}

	patch := &model.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Status:    req.Status,
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		patch.Password = &hashed
	}

	if err := s.Users.ApplyPatch(userID, patch); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *UserService) Delete(actorID, userID uint) error {
	if actorID != userID {
		return util.ErrPermissionDenied
	}
	if _, err := s.Get(userID); err != nil {
		return err
	}
	return s.Users.Delete(userID)
}
