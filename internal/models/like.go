package models

import "time"

// Like is an edge meaning "user likes post". At most one edge exists per
// (user, post) pair, enforced by the composite unique index. Likes are
// removed on unlike and when the liked post is deleted.
type Like struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    int       `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"post_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Post      Post      `gorm:"foreignKey:PostID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
