package service

import (
	"errors"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/config"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/repository"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignUpRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"user_email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type SignInRequest struct {
	Email    string `json:"user_email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthService struct {
	Users *repository.UserRepository
	cfg   *config.Config
}

func NewAuthService(users *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{Users: users, cfg: cfg}
}

func (s *AuthService) SignUp(req SignUpRequest) (*model.User, error) {
	if _, err := s.Users.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn verifies credentials and issues a signed access token.
func (s *AuthService) SignIn(req SignInRequest) (string, error) {
	user, err := s.Users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateJWT(user, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
}

// Me resolves the authenticated user's own profile.
func (s *AuthService) Me(userID uint) (*model.User, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
