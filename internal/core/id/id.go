// Package id generates the UUIDv7 identifiers used by every entity. The
// embedded timestamp keeps primary keys roughly insertion-ordered, which the
// created_at DESC listings and B-tree indexes benefit from.
package id

import (
	"github.com/google/uuid"
)

// ID aliases uuid.UUID so repositories and scany bind it directly.
type ID = uuid.UUID

// New returns a fresh UUIDv7.
func New() ID {
	v7, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; a V4 keeps the
		// identifier unique at the cost of ordering.
		return uuid.New()
	}
	return v7
}

// Parse validates and converts a string identifier.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts a string identifier, panicking on malformed input.
// Intended for fixtures and tests.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns the zero identifier.
func Nil() ID {
	return uuid.Nil
}

// IsNil reports whether the identifier is the zero value.
func IsNil(id ID) bool {
	return id == uuid.Nil
}
