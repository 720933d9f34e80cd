// Package store provides persistence for users, posts and the social
// edges between them. Lookup methods return (nil, nil) when the record
// does not exist; errors are reserved for store failures.
package store

import (
	"gorm.io/gorm"

	"github.com/mkurbatov/social-network-api/internal/models"
)

type UserStore interface {
	Create(user *models.User) error
	ByID(id int) (*models.User, error)
	ByLogin(login string) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

type PostStore interface {
	Create(post *models.Post) error
	// ByID loads a post with its author attached.
	ByID(id int) (*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
	// Feed returns the page of posts matching the filter, newest update
	// first, along with the total number of matching rows.
	Feed(filter models.PostFilter, offset, limit int) ([]models.Post, int64, error)
}

type FollowStore interface {
	Create(follow *models.Follow) error
	Find(userID, followerID int) (*models.Follow, error)
	Delete(id int) error
	// FollowersOf lists the users following userID in edge-creation order.
	// A non-positive limit means unbounded.
	FollowersOf(userID, limit int) ([]models.User, error)
	// FollowedBy lists the users that followerID follows, in edge-creation
	// order. A non-positive limit means unbounded.
	FollowedBy(followerID, limit int) ([]models.User, error)
}

type LikeStore interface {
	Create(like *models.Like) error
	Find(userID, postID int) (*models.Like, error)
	Delete(id int) error
	// UsersForPost lists the users who liked the post in edge-creation order.
	UsersForPost(postID int) ([]models.User, error)
	CountForPost(postID int) (int64, error)
	// DeleteForPost removes every like edge of the post. Used as the
	// application-level cascade before deleting a post.
	DeleteForPost(postID int) error
}

// Stores bundles the gorm-backed implementations over one connection.
type Stores struct {
	Users   UserStore
	Posts   PostStore
	Follows FollowStore
	Likes   LikeStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		Users:   &userStore{db: db},
		Posts:   &postStore{db: db},
		Follows: &followStore{db: db},
		Likes:   &likeStore{db: db},
	}
}
