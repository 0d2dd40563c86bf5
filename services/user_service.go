package services

import (
	"errors"

	"nc-news-api/models"
	"nc-news-api/repositories"

	"gorm.io/gorm"
)

type UserService interface {
	GetUsers() ([]models.User, error)
	GetUserByUsername(username string) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUsers() ([]models.User, error) {
	return s.userRepo.List()
}

func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
