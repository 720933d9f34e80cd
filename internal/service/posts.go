package service

import (
	"go.uber.org/zap"

	"github.com/mkurbatov/social-network-api/internal/apperr"
	"github.com/mkurbatov/social-network-api/internal/models"
	"github.com/mkurbatov/social-network-api/internal/store"
)

// PostService handles post mutations: create, partial edit and delete.
type PostService struct {
	posts       store.PostStore
	likes       store.LikeStore
	broadcaster Broadcaster
	agg         aggregator
	log         *zap.Logger
}

func NewPostService(posts store.PostStore, likes store.LikeStore, broadcaster Broadcaster, log *zap.Logger) *PostService {
	return &PostService{
		posts:       posts,
		likes:       likes,
		broadcaster: broadcaster,
		agg:         aggregator{likes: likes},
		log:         log,
	}
}

// Create stores a new post for the author and announces it to other
// connected clients. Returns the new post's id.
func (s *PostService) Create(authorID int, req models.CreatePostRequest) (int, error) {
	post := &models.Post{
		Title:    req.Title,
		Text:     req.Text,
		AuthorID: authorID,
		Views:    0,
	}
	if err := s.posts.Create(post); err != nil {
		return 0, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}

	// Reload to pick up the author association for the broadcast payload.
	created, err := s.posts.ByID(post.ID)
	if err != nil || created == nil {
		s.log.Warn("skipping create notification", zap.Int("post_id", post.ID), zap.Error(err))
		return post.ID, nil
	}
	if view, err := s.agg.view(created); err == nil {
		s.broadcaster.Broadcast(EventPostCreated, view, authorID)
	} else {
		s.log.Warn("skipping create notification", zap.Int("post_id", post.ID), zap.Error(err))
	}

	return post.ID, nil
}

// Edit applies a partial update. Empty fields are treated as "not
// supplied" and ignored; an empty string can never be written. The
// returned change-set holds only the fields whose stored value actually
// changed, plus updated_at when anything did.
func (s *PostService) Edit(postID int, req models.EditPostRequest) (map[string]any, error) {
	if req.Title == "" && req.Text == "" {
		return nil, apperr.New(apperr.KindValidation, "Validation error")
	}

	post, err := s.posts.ByID(postID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if post == nil {
		return nil, apperr.New(apperr.KindNotFound, "Post not found")
	}

	changes := map[string]any{}
	if req.Title != "" && req.Title != post.Title {
		post.Title = req.Title
		changes["title"] = req.Title
	}
	if req.Text != "" && req.Text != post.Text {
		post.Text = req.Text
		changes["text"] = req.Text
	}
	if len(changes) == 0 {
		return changes, nil
	}

	if err := s.posts.Update(post); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	changes["updated_at"] = post.UpdatedAt

	return changes, nil
}

// Delete removes the post and its like edges. The like cascade is
// performed explicitly here rather than left to the store's referential
// constraints.
func (s *PostService) Delete(postID int) error {
	post, err := s.posts.ByID(postID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if post == nil {
		return apperr.New(apperr.KindNotFound, "Post not found")
	}

	if err := s.likes.DeleteForPost(post.ID); err != nil {
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if err := s.posts.Delete(post.ID); err != nil {
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	return nil
}
