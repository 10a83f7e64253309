// Package auth_repo provides the PostgreSQL implementation of the user store.
package auth_repo

import (
	"context"
	"strings"

	"patrimonio/internal/domain/auth"
	"patrimonio/internal/infrastructure/storage/postgres"
)

const userTable = "usuarios"

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	*postgres.BaseRepo[*auth.User]
}

var _ auth.UserRepository = (*UserRepo)(nil)

// NewUserRepo creates a new user repository.
func NewUserRepo(txManager *postgres.TxManager) *UserRepo {
	return &UserRepo{
		BaseRepo: postgres.NewBaseRepo(
			txManager,
			userTable,
			[]string{"email", "nombres", "apellidos"},
			"email ASC",
			func() *auth.User { return &auth.User{} },
		),
	}
}

// GetByEmail retrieves a user by email. Emails are stored lowercased.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.GetByColumn(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}
