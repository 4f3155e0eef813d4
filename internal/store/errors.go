// Package store provides Wordle repositories: an in-memory map and SQLite.
package store

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

var (
	// ErrNotFound is returned when updating a wordle that was never created.
	ErrNotFound = errors.New("wordle not found")

	// ErrDuplicateID is returned when creating a wordle whose id is taken.
	ErrDuplicateID = errors.New("wordle with this id already exists")

	// ErrConflict is returned when a save was built from a stale read.
	ErrConflict = errors.New("wordle was modified concurrently")

	// ErrConnectionFailed is returned when the database cannot be reached.
	ErrConnectionFailed = errors.New("database connection failed")

	// ErrMigrationFailed is returned when schema migrations fail.
	ErrMigrationFailed = errors.New("database migration failed")

	// ErrInvalidData is returned when a stored row cannot be turned back into a wordle.
	ErrInvalidData = errors.New("invalid stored wordle")
)

// StoreError wraps errors with the operation and wordle id.
type StoreError struct {
	Op      string
	ID      game.ID
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s wordle %s: %s", e.Op, e.ID, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *StoreError) Unwrap() error { return e.Err }

func newStoreError(op string, id game.ID, message string, err error) *StoreError {
	return &StoreError{Op: op, ID: id, Message: message, Err: err}
}
