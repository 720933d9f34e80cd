package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mkurbatov/social-network-api/internal/models"
)

type userStore struct {
	db *gorm.DB
}

func (s *userStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *userStore) ByID(id int) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userStore) ByLogin(login string) (*models.User, error) {
	var user models.User
	err := s.db.Where("login = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userStore) ByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userStore) Update(user *models.User) error {
	return s.db.Save(user).Error
}
