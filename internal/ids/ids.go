// Package ids generates wordle identifiers.
package ids

import (
	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// UUID generates random (version 4) UUID ids.
type UUID struct{}

// NewID returns a fresh UUIDv4 string.
func (UUID) NewID() game.ID {
	return game.ID(uuid.NewString())
}

// Valid reports whether s is a well-formed id.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Parse normalizes s into an id, rejecting anything that is not a UUID.
func Parse(s string) (game.ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return game.ID(u.String()), nil
}
