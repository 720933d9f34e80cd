package models

import "time"

// Follow is a directed edge meaning "follower follows user". The composite
// unique index is the authoritative guard against duplicate edges; the
// service-level existence check only exists to produce a friendly error.
type Follow struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	UserID     int       `gorm:"not null;uniqueIndex:idx_follows_user_follower" json:"user_id"`
	FollowerID int       `gorm:"not null;uniqueIndex:idx_follows_user_follower" json:"follower_id"`
	User       User      `gorm:"foreignKey:UserID" json:"-"`
	Follower   User      `gorm:"foreignKey:FollowerID" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
