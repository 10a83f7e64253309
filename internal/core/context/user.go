// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// Known roles. Values match what the mobile and web clients send.
const (
	RoleAdministrador = "ADMINISTRADOR"
	RoleCoordinador   = "COORDINADOR"
	RoleRegistrador   = "REGISTRADOR"
)

// UserContext contains authenticated user information.
type UserContext struct {
	UserID    string
	Email     string
	Role      string
	ProjectID string // set for registrars pinned to a single project
	IsAdmin   bool
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetUserID returns user ID from context or empty string.
func GetUserID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.UserID
	}
	return ""
}

// GetRole returns the user role from context or empty string.
func GetRole(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.Role
	}
	return ""
}

// GetProjectID returns the project a registrar is pinned to, or empty string.
func GetProjectID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.ProjectID
	}
	return ""
}

// HasRole checks if user has specific role.
func HasRole(ctx context.Context, role string) bool {
	u := GetUser(ctx)
	if u == nil {
		return false
	}
	return u.Role == role
}
