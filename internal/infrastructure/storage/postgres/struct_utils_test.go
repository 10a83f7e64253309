package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"patrimonio/internal/core/entity"
	"patrimonio/internal/core/id"
)

type mockEntity struct {
	entity.Base
	Code     string `db:"code" json:"code"`
	Name     string `db:"name" json:"name"`
	Internal string `db:"-" json:"-"`
	NoTag    string
}

func TestExtractDBColumns_EmbeddedBase(t *testing.T) {
	cols := ExtractDBColumns[mockEntity]()

	expectedCols := []string{"id", "created_at", "updated_at", "code", "name"}
	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
	assert.NotContains(t, cols, "-")
	assert.Len(t, cols, len(expectedCols))
}

func TestStructToMap_EmbeddedBase(t *testing.T) {
	now := time.Now().UTC()
	e := mockEntity{
		Base: entity.Base{
			ID:        id.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:     "TEST",
		Name:     "Test Name",
		Internal: "skip me",
	}

	m := StructToMap(e)

	assert.Equal(t, e.ID, m["id"])
	assert.Equal(t, now, m["created_at"])
	assert.Equal(t, "TEST", m["code"])
	assert.Equal(t, "Test Name", m["name"])
	assert.NotContains(t, m, "-")
	assert.Len(t, m, 5)
}
