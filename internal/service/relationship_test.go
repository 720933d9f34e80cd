package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/mkurbatov/social-network-api/internal/apperr"
	"github.com/mkurbatov/social-network-api/internal/models"
)

func newRelationshipService(users *MockUserStore, posts *MockPostStore, follows *MockFollowStore, likes *MockLikeStore, b *MockBroadcaster) *RelationshipService {
	return NewRelationshipService(users, posts, follows, likes, b, zap.NewNop())
}

func TestFollowThenIsFollowing(t *testing.T) {
	users := new(MockUserStore)
	follows := new(MockFollowStore)

	users.On("ByID", 2).Return(&models.User{ID: 2}, nil)
	follows.On("Find", 2, 1).Return(nil, nil).Once()
	follows.On("Create", mock.AnythingOfType("*models.Follow")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Follow).ID = 10
	})

	svc := newRelationshipService(users, new(MockPostStore), follows, new(MockLikeStore), new(MockBroadcaster))

	follow, err := svc.Follow(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 10, follow.ID)
	assert.Equal(t, 2, follow.UserID)
	assert.Equal(t, 1, follow.FollowerID)

	follows.On("Find", 2, 1).Return(&models.Follow{ID: 10, UserID: 2, FollowerID: 1}, nil)

	followed, err := svc.IsFollowing(1, 2)
	assert.NoError(t, err)
	assert.True(t, followed)

	follows.AssertExpectations(t)
}

func TestFollowDuplicateConflict(t *testing.T) {
	users := new(MockUserStore)
	follows := new(MockFollowStore)

	users.On("ByID", 2).Return(&models.User{ID: 2}, nil)
	follows.On("Find", 2, 1).Return(&models.Follow{ID: 10, UserID: 2, FollowerID: 1}, nil)

	svc := newRelationshipService(users, new(MockPostStore), follows, new(MockLikeStore), new(MockBroadcaster))

	_, err := svc.Follow(1, 2)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	follows.AssertNotCalled(t, "Create", mock.Anything)
}

func TestFollowSelfConflict(t *testing.T) {
	users := new(MockUserStore)
	users.On("ByID", 1).Return(&models.User{ID: 1}, nil)

	svc := newRelationshipService(users, new(MockPostStore), new(MockFollowStore), new(MockLikeStore), new(MockBroadcaster))

	_, err := svc.Follow(1, 1)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestFollowUnknownUserNotFound(t *testing.T) {
	users := new(MockUserStore)
	users.On("ByID", 99).Return(nil, nil)

	svc := newRelationshipService(users, new(MockPostStore), new(MockFollowStore), new(MockLikeStore), new(MockBroadcaster))

	_, err := svc.Follow(1, 99)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUnfollowWithoutEdgeConflict(t *testing.T) {
	users := new(MockUserStore)
	follows := new(MockFollowStore)

	users.On("ByID", 2).Return(&models.User{ID: 2}, nil)
	follows.On("Find", 2, 1).Return(nil, nil)

	svc := newRelationshipService(users, new(MockPostStore), follows, new(MockLikeStore), new(MockBroadcaster))

	err := svc.Unfollow(1, 2)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUnfollowDeletesEdge(t *testing.T) {
	users := new(MockUserStore)
	follows := new(MockFollowStore)

	users.On("ByID", 2).Return(&models.User{ID: 2}, nil)
	follows.On("Find", 2, 1).Return(&models.Follow{ID: 10, UserID: 2, FollowerID: 1}, nil)
	follows.On("Delete", 10).Return(nil)

	svc := newRelationshipService(users, new(MockPostStore), follows, new(MockLikeStore), new(MockBroadcaster))

	assert.NoError(t, svc.Unfollow(1, 2))
	follows.AssertExpectations(t)
}

func TestLikeUnlikeCycle(t *testing.T) {
	users := new(MockUserStore)
	posts := new(MockPostStore)
	likes := new(MockLikeStore)
	broadcaster := new(MockBroadcaster)

	post := &models.Post{ID: 5, Title: "t", AuthorID: 2}
	posts.On("ByID", 5).Return(post, nil)
	broadcaster.On("Broadcast", EventPostLiked, mock.Anything, 1).Return()

	svc := newRelationshipService(users, posts, new(MockFollowStore), likes, broadcaster)

	// First like succeeds.
	likes.On("Find", 1, 5).Return(nil, nil).Once()
	likes.On("Create", mock.AnythingOfType("*models.Like")).Return(nil).Once().Run(func(args mock.Arguments) {
		args.Get(0).(*models.Like).ID = 7
	})
	likes.On("UsersForPost", 5).Return([]models.User{{ID: 1}}, nil).Once()
	likes.On("CountForPost", 5).Return(int64(1), nil).Once()
	assert.NoError(t, svc.Like(1, 5))

	// Second like is a duplicate.
	likes.On("Find", 1, 5).Return(&models.Like{ID: 7, UserID: 1, PostID: 5}, nil).Once()
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(svc.Like(1, 5)))

	// Unlike succeeds.
	likes.On("Find", 1, 5).Return(&models.Like{ID: 7, UserID: 1, PostID: 5}, nil).Once()
	likes.On("Delete", 7).Return(nil).Once()
	likes.On("UsersForPost", 5).Return([]models.User{}, nil).Once()
	likes.On("CountForPost", 5).Return(int64(0), nil).Once()
	assert.NoError(t, svc.Unlike(1, 5))

	// A second unlike has no edge left.
	likes.On("Find", 1, 5).Return(nil, nil).Once()
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(svc.Unlike(1, 5)))

	likes.AssertExpectations(t)
	broadcaster.AssertNumberOfCalls(t, "Broadcast", 2)
}

func TestLikeUnknownPostNotFound(t *testing.T) {
	posts := new(MockPostStore)
	posts.On("ByID", 99).Return(nil, nil)

	svc := newRelationshipService(new(MockUserStore), posts, new(MockFollowStore), new(MockLikeStore), new(MockBroadcaster))

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(svc.Like(1, 99)))
}

func TestLikeBroadcastExcludesActor(t *testing.T) {
	posts := new(MockPostStore)
	likes := new(MockLikeStore)
	broadcaster := new(MockBroadcaster)

	posts.On("ByID", 5).Return(&models.Post{ID: 5}, nil)
	likes.On("Find", 3, 5).Return(nil, nil)
	likes.On("Create", mock.Anything).Return(nil)
	likes.On("UsersForPost", 5).Return([]models.User{{ID: 3}}, nil)
	likes.On("CountForPost", 5).Return(int64(1), nil)
	broadcaster.On("Broadcast", EventPostLiked, mock.Anything, 3).Return()

	svc := newRelationshipService(new(MockUserStore), posts, new(MockFollowStore), likes, broadcaster)

	assert.NoError(t, svc.Like(3, 5))

	broadcaster.AssertCalled(t, "Broadcast", EventPostLiked, mock.MatchedBy(func(payload any) bool {
		view, ok := payload.(*models.PostView)
		return ok && view.ID == 5 && view.LikesCount == 1
	}), 3)
}

func TestFollowersListAndLimit(t *testing.T) {
	users := new(MockUserStore)
	follows := new(MockFollowStore)

	users.On("ByID", 2).Return(&models.User{ID: 2}, nil)
	follows.On("FollowersOf", 2, 5).Return([]models.User{{ID: 1}, {ID: 3}}, nil)

	svc := newRelationshipService(users, new(MockPostStore), follows, new(MockLikeStore), new(MockBroadcaster))

	followers, err := svc.Followers(2, 5)
	assert.NoError(t, err)
	assert.Len(t, followers, 2)
	follows.AssertCalled(t, "FollowersOf", 2, 5)
}

func TestFollowsEmptyIsNotNil(t *testing.T) {
	users := new(MockUserStore)
	follows := new(MockFollowStore)

	users.On("ByID", 2).Return(&models.User{ID: 2}, nil)
	follows.On("FollowedBy", 2, 0).Return(nil, nil)

	svc := newRelationshipService(users, new(MockPostStore), follows, new(MockLikeStore), new(MockBroadcaster))

	follows_, err := svc.Follows(2, 0)
	assert.NoError(t, err)
	assert.NotNil(t, follows_)
	assert.Empty(t, follows_)
}
