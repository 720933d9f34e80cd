package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mkurbatov/social-network-api/internal/models"
)

type followStore struct {
	db *gorm.DB
}

func (s *followStore) Create(follow *models.Follow) error {
	return s.db.Create(follow).Error
}

func (s *followStore) Find(userID, followerID int) (*models.Follow, error) {
	var follow models.Follow
	err := s.db.Where("user_id = ? AND follower_id = ?", userID, followerID).First(&follow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

func (s *followStore) Delete(id int) error {
	return s.db.Delete(&models.Follow{}, id).Error
}

func (s *followStore) FollowersOf(userID, limit int) ([]models.User, error) {
	q := s.db.Model(&models.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.user_id = ?", userID).
		Order("follows.id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *followStore) FollowedBy(followerID, limit int) ([]models.User, error) {
	q := s.db.Model(&models.User{}).
		Joins("JOIN follows ON follows.user_id = users.id").
		Where("follows.follower_id = ?", followerID).
		Order("follows.id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
