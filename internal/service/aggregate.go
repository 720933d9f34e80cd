package service

import (
	"github.com/mkurbatov/social-network-api/internal/apperr"
	"github.com/mkurbatov/social-network-api/internal/models"
	"github.com/mkurbatov/social-network-api/internal/store"
)

// aggregator enriches a post with the derived data every response
// carries: the author's public profile, the like count and the list of
// liking users in edge-creation order.
type aggregator struct {
	likes store.LikeStore
}

func (a aggregator) view(post *models.Post) (*models.PostView, error) {
	likes, err := a.likes.UsersForPost(post.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	count, err := a.likes.CountForPost(post.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if likes == nil {
		likes = []models.User{}
	}

	return &models.PostView{
		ID:         post.ID,
		Title:      post.Title,
		Text:       post.Text,
		Author:     post.Author,
		Views:      post.Views,
		LikesCount: int(count),
		Likes:      likes,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}, nil
}
