package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mkurbatov/social-network-api/internal/models"
)

type likeStore struct {
	db *gorm.DB
}

func (s *likeStore) Create(like *models.Like) error {
	return s.db.Create(like).Error
}

func (s *likeStore) Find(userID, postID int) (*models.Like, error) {
	var like models.Like
	err := s.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (s *likeStore) Delete(id int) error {
	return s.db.Delete(&models.Like{}, id).Error
}

func (s *likeStore) UsersForPost(postID int) ([]models.User, error) {
	var users []models.User
	err := s.db.Model(&models.User{}).
		Joins("JOIN likes ON likes.user_id = users.id").
		Where("likes.post_id = ?", postID).
		Order("likes.id ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *likeStore) CountForPost(postID int) (int64, error) {
	var count int64
	err := s.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (s *likeStore) DeleteForPost(postID int) error {
	return s.db.Where("post_id = ?", postID).Delete(&models.Like{}).Error
}
