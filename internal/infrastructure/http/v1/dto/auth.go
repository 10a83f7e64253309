package dto

import (
	"time"

	"patrimonio/internal/domain/auth"
)

// LoginRequest carries credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and its owner.
type LoginResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"accessToken"`
	ExpiresAt   time.Time     `json:"expiresAt"`
}

// RegisterUserRequest creates a new account.
type RegisterUserRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required"`
	Role        string  `json:"rol" binding:"required"`
	ProjectCode *string `json:"cod_proyecto"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"nombres,omitempty"`
	LastName    string     `json:"apellidos,omitempty"`
	Role        string     `json:"rol"`
	ProjectCode *string    `json:"cod_proyecto,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// FromUser converts a domain user.
func FromUser(u *auth.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role,
		ProjectCode: u.ProjectCode,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
	}
}
