package models

import "time"

type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"not null" json:"full_name"`
	Login    string `gorm:"unique;not null" json:"login"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,max=255"`
	Login    string `json:"login" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required,max=255"`
	Password string `json:"password" binding:"required"`
}

// EditUserRequest carries a partial profile update. Empty fields are
// treated as "not supplied" and left unchanged, so an empty string can
// never be written through this request.
type EditUserRequest struct {
	FullName string `json:"full_name"`
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Token    string `json:"token" binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=8"`
}
