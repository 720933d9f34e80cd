package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkurbatov/social-network-api/internal/service"
)

type LikeHandler struct {
	relationships *service.RelationshipService
}

// Like handles GET /api/post/:id/like.
func (h *LikeHandler) Like(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.relationships.Like(callerID(c), id); err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "Post liked successfully", gin.H{})
}

// Unlike handles GET /api/post/:id/unlike.
func (h *LikeHandler) Unlike(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.relationships.Unlike(callerID(c), id); err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "Post unliked successfully", gin.H{})
}
