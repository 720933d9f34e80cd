package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mkurbatov/social-network-api/internal/models"
)

type postStore struct {
	db *gorm.DB
}

func (s *postStore) Create(post *models.Post) error {
	return s.db.Create(post).Error
}

func (s *postStore) ByID(id int) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Author").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *postStore) Update(post *models.Post) error {
	return s.db.Save(post).Error
}

func (s *postStore) Delete(id int) error {
	return s.db.Delete(&models.Post{}, id).Error
}

// feedQuery translates a filter into the equivalent predicate set. All
// conditional query composition for the feed lives here.
func (s *postStore) feedQuery(filter models.PostFilter) *gorm.DB {
	q := s.db.Model(&models.Post{})
	if filter.Author != 0 {
		q = q.Where("author_id = ?", filter.Author)
	}
	if filter.NoAuthor != 0 {
		q = q.Where("author_id <> ?", filter.NoAuthor)
	}
	if filter.Followed != 0 {
		followed := s.db.Model(&models.Follow{}).
			Select("user_id").
			Where("follower_id = ?", filter.Followed)
		q = q.Where("author_id IN (?)", followed)
	}
	if filter.Liked != 0 {
		liked := s.db.Model(&models.Like{}).
			Select("post_id").
			Where("user_id = ?", filter.Liked)
		q = q.Where("id IN (?)", liked)
	}
	return q
}

func (s *postStore) Feed(filter models.PostFilter, offset, limit int) ([]models.Post, int64, error) {
	var total int64
	if err := s.feedQuery(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := s.feedQuery(filter).
		Preload("Author").
		Order("updated_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
