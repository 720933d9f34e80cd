package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mkurbatov/social-network-api/internal/realtime"
	"github.com/mkurbatov/social-network-api/internal/service"
)

// Handler combines all handler types.
type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Post   *PostHandler
	Follow *FollowHandler
	Like   *LikeHandler
	WS     *WSHandler
}

func New(
	users *service.UserService,
	relationships *service.RelationshipService,
	feed *service.FeedService,
	posts *service.PostService,
	hub *realtime.Hub,
	log *zap.Logger,
) *Handler {
	return &Handler{
		Auth:   &AuthHandler{users: users},
		User:   &UserHandler{users: users},
		Post:   &PostHandler{feed: feed, posts: posts},
		Follow: &FollowHandler{relationships: relationships},
		Like:   &LikeHandler{relationships: relationships},
		WS:     &WSHandler{hub: hub, log: log},
	}
}

// callerID returns the authenticated caller set by the auth middleware.
func callerID(c *gin.Context) int {
	return c.GetInt("user_id")
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		FailValidation(c, err)
		return 0, false
	}
	return id, true
}
