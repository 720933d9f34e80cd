package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkurbatov/social-network-api/internal/models"
	"github.com/mkurbatov/social-network-api/internal/service"
)

type AuthHandler struct {
	users *service.UserService
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailValidation(c, err)
		return
	}

	id, token, err := h.users.Register(req)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, http.StatusCreated, "Registration successful", gin.H{
		"id":    id,
		"token": token,
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailValidation(c, err)
		return
	}

	id, token, err := h.users.Login(req)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, http.StatusOK, "Authorized", gin.H{
		"id":    id,
		"token": token,
	})
}

// Logout handles POST /api/logout. The presented token is revoked for
// the remainder of its lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.users.Logout(c.GetString("token"))
	Success(c, http.StatusOK, "Logout successful", gin.H{})
}

// ForgotPassword handles POST /api/forgot_password.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailValidation(c, err)
		return
	}

	token, err := h.users.ForgotPassword(req.Email)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, http.StatusCreated, "Reset password token created", gin.H{
		"token": token,
	})
}

// ResetPassword handles PATCH /api/reset_password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		FailValidation(c, err)
		return
	}

	if err := h.users.ResetPassword(req); err != nil {
		Fail(c, err)
		return
	}

	Success(c, http.StatusOK, "Password changed successfully", gin.H{})
}
