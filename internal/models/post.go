package models

import "time"

type Post struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Text     string `gorm:"type:text;not null" json:"text"`
	AuthorID int    `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"-"`
	Views    int    `gorm:"default:0" json:"views"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePostRequest struct {
	Title string `json:"title" binding:"required,max=255"`
	Text  string `json:"text" binding:"required"`
}

// EditPostRequest carries a partial post update. As with user edits,
// empty fields mean "not supplied" and are silently ignored.
type EditPostRequest struct {
	Title string `json:"title" binding:"omitempty,min=3,max=255"`
	Text  string `json:"text" binding:"omitempty,min=3"`
}

// PostView is the enriched, response-ready form of a post: the author's
// public profile, the like count and the list of liking users attached.
type PostView struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	Author     User      `json:"author"`
	Views      int       `json:"views"`
	LikesCount int       `json:"likes_count"`
	Likes      []User    `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PostFilter is the set of optional feed dimensions, combined with AND
// semantics. A zero value means the dimension is not set.
type PostFilter struct {
	// Author keeps only posts written by this user.
	Author int
	// NoAuthor drops posts written by this user.
	NoAuthor int
	// Followed keeps only posts whose author is followed by this user.
	Followed int
	// Liked keeps only posts this user has liked.
	Liked int
	// Page is the 1-based page number. Values below 1 mean page 1.
	Page int
}

// FeedPageSize is the fixed feed page size. Not configurable.
const FeedPageSize = 15

// FeedPage is one page of the filtered, sorted feed.
type FeedPage struct {
	CurrentPage int        `json:"current_page"`
	Data        []PostView `json:"data"`
	PerPage     int        `json:"per_page"`
	Total       int64      `json:"total"`
	LastPage    int        `json:"last_page"`
}
