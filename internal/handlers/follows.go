package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkurbatov/social-network-api/internal/service"
)

type FollowHandler struct {
	relationships *service.RelationshipService
}

// IsFollowed handles GET /api/user/:id/isfollowed.
func (h *FollowHandler) IsFollowed(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	followed, err := h.relationships.IsFollowing(callerID(c), id)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "OK", gin.H{"followed": followed})
}

// Follow handles GET /api/user/:id/follow.
func (h *FollowHandler) Follow(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	follow, err := h.relationships.Follow(callerID(c), id)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "Followed successfully", follow)
}

// Unfollow handles GET /api/user/:id/unfollow.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.relationships.Unfollow(callerID(c), id); err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "Unfollowed successfully", gin.H{})
}

// Followers handles GET /api/user/:id/followers. The optional `count`
// query parameter caps the list; absent or non-positive means unbounded.
func (h *FollowHandler) Followers(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	followers, err := h.relationships.Followers(id, countParam(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "Followers received", gin.H{
		"count":     len(followers),
		"followers": followers,
	})
}

// Follows handles GET /api/user/:id/follows.
func (h *FollowHandler) Follows(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	follows, err := h.relationships.Follows(id, countParam(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "Follows received", gin.H{
		"count":   len(follows),
		"follows": follows,
	})
}

func countParam(c *gin.Context) int {
	count, err := strconv.Atoi(c.Query("count"))
	if err != nil {
		return 0
	}
	return count
}
