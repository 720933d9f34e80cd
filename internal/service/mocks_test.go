package service

import (
	"github.com/stretchr/testify/mock"

	"github.com/mkurbatov/social-network-api/internal/models"
)

// MockUserStore is a mock implementation of the UserStore interface.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) ByID(id int) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) ByLogin(login string) (*models.User, error) {
	args := m.Called(login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) ByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockPostStore is a mock implementation of the PostStore interface.
type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) Create(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostStore) ByID(id int) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostStore) Update(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostStore) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostStore) Feed(filter models.PostFilter, offset, limit int) ([]models.Post, int64, error) {
	args := m.Called(filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Post), args.Get(1).(int64), args.Error(2)
}

// MockFollowStore is a mock implementation of the FollowStore interface.
type MockFollowStore struct {
	mock.Mock
}

func (m *MockFollowStore) Create(follow *models.Follow) error {
	args := m.Called(follow)
	return args.Error(0)
}

func (m *MockFollowStore) Find(userID, followerID int) (*models.Follow, error) {
	args := m.Called(userID, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Follow), args.Error(1)
}

func (m *MockFollowStore) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFollowStore) FollowersOf(userID, limit int) ([]models.User, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockFollowStore) FollowedBy(followerID, limit int) ([]models.User, error) {
	args := m.Called(followerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockLikeStore is a mock implementation of the LikeStore interface.
type MockLikeStore struct {
	mock.Mock
}

func (m *MockLikeStore) Create(like *models.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockLikeStore) Find(userID, postID int) (*models.Like, error) {
	args := m.Called(userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *MockLikeStore) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockLikeStore) UsersForPost(postID int) ([]models.User, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockLikeStore) CountForPost(postID int) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeStore) DeleteForPost(postID int) error {
	args := m.Called(postID)
	return args.Error(0)
}

// MockBroadcaster records broadcast calls.
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(event string, payload any, excludeUserID int) {
	m.Called(event, payload, excludeUserID)
}

// emptyLikes configures a like store so aggregation sees no likes.
func emptyLikes(likes *MockLikeStore, postID int) {
	likes.On("UsersForPost", postID).Return([]models.User{}, nil)
	likes.On("CountForPost", postID).Return(int64(0), nil)
}
