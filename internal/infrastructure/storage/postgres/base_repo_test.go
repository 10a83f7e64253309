package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/entity"
)

type validatedEntity struct {
	entity.Base
	Name string `db:"name" json:"name"`
}

func (e *validatedEntity) Validate(ctx context.Context) error {
	if e.Name == "" {
		return apperror.NewValidation("name es requerido")
	}
	return nil
}

func TestCreate_RejectsInvalidEntityBeforeInsert(t *testing.T) {
	// no database behind the repo: a validation failure must return before
	// any query is issued
	repo := NewBaseRepo(
		&TxManager{},
		"validated_entities",
		[]string{"name"},
		"name ASC",
		func() *validatedEntity { return &validatedEntity{} },
	)

	err := repo.Create(context.Background(), &validatedEntity{Base: entity.NewBase()})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
