package services

import (
	"errors"
	"time"

	"nc-news-api/config"
	"nc-news-api/models"
	"nc-news-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	Guest() (*models.AuthResponse, error)
	GetUserByUsername(username string) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if existing, err := s.userRepo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, models.InvalidField("Email already registered")
	}
	if exists, err := s.userRepo.Exists(req.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, models.InvalidField("Username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user.Username, config.JWTExpiration)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: *user, Token: token}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	token, err := s.generateToken(user.Username, config.JWTExpiration)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: *user, Token: token}, nil
}

// Guest issues a short-lived token for an anonymous identity without writing
// a row.
func (s *authService) Guest() (*models.AuthResponse, error) {
	guest := models.User{Username: "guest", Name: "Guest"}

	token, err := s.generateToken(guest.Username, config.GuestExpiration)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: guest, Token: token}, nil
}

func (s *authService) GetUserByUsername(username string) (*models.User, error) {
	return s.userRepo.GetByUsername(username)
}

func (s *authService) generateToken(username string, expiry time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"username": username,
		"exp":      now.Add(expiry).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}
