// Package auth provides authentication and authorization domain logic.
package auth

import (
	"context"
	"strings"
	"time"

	"patrimonio/internal/core/apperror"
	appctx "patrimonio/internal/core/context"
	"patrimonio/internal/core/entity"
)

// User represents a system user.
type User struct {
	entity.Base

	Email               string     `db:"email" json:"email"`
	PasswordHash        string     `db:"password_hash" json:"-"`
	FirstName           string     `db:"nombres" json:"nombres,omitempty"`
	LastName            string     `db:"apellidos" json:"apellidos,omitempty"`
	Role                string     `db:"rol" json:"rol"`
	ProjectCode         *string    `db:"cod_proyecto" json:"cod_proyecto,omitempty"`
	IsActive            bool       `db:"is_active" json:"is_active"`
	LastLoginAt         *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	FailedLoginAttempts int        `db:"failed_login_attempts" json:"-"`
	LockedUntil         *time.Time `db:"locked_until" json:"-"`
}

// NewUser creates a new active user. Emails are stored lowercased.
func NewUser(email, passwordHash, role string) *User {
	return &User{
		Base:         entity.NewBase(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}
}

// Validate validates user data.
func (u *User) Validate(ctx context.Context) error {
	if u.Email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	switch u.Role {
	case appctx.RoleAdministrador, appctx.RoleCoordinador, appctx.RoleRegistrador:
	default:
		return apperror.NewValidation("unknown role").WithDetail("rol", u.Role)
	}
	if u.Role == appctx.RoleRegistrador && (u.ProjectCode == nil || *u.ProjectCode == "") {
		return apperror.NewValidation("registrars must be assigned to a project")
	}
	return nil
}

// IsLocked returns true if account is locked.
func (u *User) IsLocked() bool {
	if u.LockedUntil == nil {
		return false
	}
	return time.Now().Before(*u.LockedUntil)
}

// CanLogin checks if user can login.
func (u *User) CanLogin() error {
	if !u.IsActive {
		return apperror.NewForbidden("account is disabled")
	}
	if u.IsLocked() {
		return apperror.NewForbidden("account is temporarily locked")
	}
	return nil
}

// RecordFailedLogin increments failed login counter.
func (u *User) RecordFailedLogin(maxAttempts int, lockDuration time.Duration) {
	u.FailedLoginAttempts++
	if u.FailedLoginAttempts >= maxAttempts {
		lockUntil := time.Now().Add(lockDuration)
		u.LockedUntil = &lockUntil
	}
}

// RecordSuccessfulLogin resets failed login counter.
func (u *User) RecordSuccessfulLogin() {
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
	now := time.Now()
	u.LastLoginAt = &now
}

// FullName returns user's full name.
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	return u.FirstName + " " + u.LastName
}
