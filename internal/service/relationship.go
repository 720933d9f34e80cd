package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mkurbatov/social-network-api/internal/apperr"
	"github.com/mkurbatov/social-network-api/internal/models"
	"github.com/mkurbatov/social-network-api/internal/store"
)

// RelationshipService enforces the social-edge invariants: no self-follow
// and at most one edge per pair. The store's unique indexes are the
// authoritative duplicate guard; the existence checks here only produce
// the friendly Conflict responses.
type RelationshipService struct {
	users       store.UserStore
	posts       store.PostStore
	follows     store.FollowStore
	likes       store.LikeStore
	broadcaster Broadcaster
	agg         aggregator
	log         *zap.Logger
}

func NewRelationshipService(
	users store.UserStore,
	posts store.PostStore,
	follows store.FollowStore,
	likes store.LikeStore,
	broadcaster Broadcaster,
	log *zap.Logger,
) *RelationshipService {
	return &RelationshipService{
		users:       users,
		posts:       posts,
		follows:     follows,
		likes:       likes,
		broadcaster: broadcaster,
		agg:         aggregator{likes: likes},
		log:         log,
	}
}

// IsFollowing reports whether followerID follows targetID.
func (s *RelationshipService) IsFollowing(followerID, targetID int) (bool, error) {
	if _, err := s.mustFindUser(targetID, "Followed user not found"); err != nil {
		return false, err
	}

	edge, err := s.follows.Find(targetID, followerID)
	if err != nil {
		return false, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	return edge != nil, nil
}

// Follow creates the follow edge follower→target.
func (s *RelationshipService) Follow(followerID, targetID int) (*models.Follow, error) {
	target, err := s.mustFindUser(targetID, "Followed user not found")
	if err != nil {
		return nil, err
	}
	if target.ID == followerID {
		return nil, apperr.New(apperr.KindConflict, "You cannot follow yourself")
	}

	existing, err := s.follows.Find(target.ID, followerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "You already follow this user")
	}

	follow := &models.Follow{UserID: target.ID, FollowerID: followerID}
	if err := s.follows.Create(follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race between the check and the insert.
			return nil, apperr.New(apperr.KindConflict, "You already follow this user")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	return follow, nil
}

// Unfollow removes the follow edge follower→target.
func (s *RelationshipService) Unfollow(followerID, targetID int) error {
	target, err := s.mustFindUser(targetID, "Followed user not found")
	if err != nil {
		return err
	}
	if target.ID == followerID {
		return apperr.New(apperr.KindConflict, "You cannot unfollow yourself")
	}

	edge, err := s.follows.Find(target.ID, followerID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if edge == nil {
		return apperr.New(apperr.KindConflict, "You are not following this user")
	}

	if err := s.follows.Delete(edge.ID); err != nil {
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	return nil
}

// Followers lists the users following userID in edge-creation order. A
// non-positive limit means unbounded.
func (s *RelationshipService) Followers(userID, limit int) ([]models.User, error) {
	if _, err := s.mustFindUser(userID, "User not found"); err != nil {
		return nil, err
	}

	users, err := s.follows.FollowersOf(userID, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Follows lists the users that userID follows in edge-creation order. A
// non-positive limit means unbounded.
func (s *RelationshipService) Follows(userID, limit int) ([]models.User, error) {
	if _, err := s.mustFindUser(userID, "User not found"); err != nil {
		return nil, err
	}

	users, err := s.follows.FollowedBy(userID, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Like creates the like edge user→post and notifies other connected
// clients of the post's new like state.
func (s *RelationshipService) Like(userID, postID int) error {
	post, err := s.mustFindPost(postID)
	if err != nil {
		return err
	}

	existing, err := s.likes.Find(userID, post.ID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if existing != nil {
		return apperr.New(apperr.KindConflict, "You already liked this post")
	}

	like := &models.Like{UserID: userID, PostID: post.ID}
	if err := s.likes.Create(like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.New(apperr.KindConflict, "You already liked this post")
		}
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}

	s.notifyLikeState(post, userID)
	return nil
}

// Unlike removes the like edge user→post and notifies other connected
// clients of the post's new like state.
func (s *RelationshipService) Unlike(userID, postID int) error {
	post, err := s.mustFindPost(postID)
	if err != nil {
		return err
	}

	like, err := s.likes.Find(userID, post.ID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if like == nil {
		return apperr.New(apperr.KindConflict, "You have not liked this post")
	}

	if err := s.likes.Delete(like.ID); err != nil {
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}

	s.notifyLikeState(post, userID)
	return nil
}

// notifyLikeState broadcasts the post's aggregated state to everyone but
// the actor. Failures are logged and swallowed; the mutation already
// succeeded.
func (s *RelationshipService) notifyLikeState(post *models.Post, actorID int) {
	view, err := s.agg.view(post)
	if err != nil {
		s.log.Warn("skipping like notification", zap.Int("post_id", post.ID), zap.Error(err))
		return
	}
	s.broadcaster.Broadcast(EventPostLiked, view, actorID)
}

func (s *RelationshipService) mustFindUser(id int, notFoundMessage string) (*models.User, error) {
	user, err := s.users.ByID(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, notFoundMessage)
	}
	return user, nil
}

func (s *RelationshipService) mustFindPost(id int) (*models.Post, error) {
	post, err := s.posts.ByID(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if post == nil {
		return nil, apperr.New(apperr.KindNotFound, "Post not found")
	}
	return post, nil
}
