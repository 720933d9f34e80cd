package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkurbatov/social-network-api/internal/models"
	"github.com/mkurbatov/social-network-api/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

// Me handles GET /api/user/me.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.Get(callerID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "User found", user)
}

// Get handles GET /api/user/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(id)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "User found", user)
}

// Edit handles PATCH /api/user/me.
func (h *UserHandler) Edit(c *gin.Context) {
	var req models.EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailValidation(c, err)
		return
	}

	changes, err := h.users.Edit(callerID(c), req)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, http.StatusOK, "User has been successfully updated", changes)
}
