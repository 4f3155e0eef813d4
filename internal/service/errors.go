package service

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// Create failures.
var (
	ErrWordleAlreadyExists    = errors.New("wordle already exists")
	ErrFailedToLookupWordleID = errors.New("failed to look up wordle id")
	ErrFailedToSaveWordle     = errors.New("failed to save wordle")
)

// Guess failures.
var (
	ErrWordleNotFound    = errors.New("wordle not found")
	ErrGetWordleFailure  = errors.New("failed to get wordle")
	ErrNotInDictionary   = errors.New("word not in dictionary")
	ErrGameIsOver        = errors.New("game is over")
	ErrSaveWordleFailure = errors.New("failed to save wordle")
)

// CreateError is returned by CreateWordle. Err is always one of the create
// failure sentinels; Message carries the collaborator's description, if any.
type CreateError struct {
	ID      game.ID
	Err     error
	Message string
}

func (e *CreateError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("create wordle %s: %v: %s", e.ID, e.Err, e.Message)
	}
	return fmt.Sprintf("create wordle %s: %v", e.ID, e.Err)
}

func (e *CreateError) Unwrap() error { return e.Err }

// GuessError is returned by Guess. Err is always one of the guess failure
// sentinels. Word is set for ErrNotInDictionary.
type GuessError struct {
	ID      game.ID
	Word    game.Word
	Err     error
	Message string
}

func (e *GuessError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotInDictionary):
		return fmt.Sprintf("guess %s on wordle %s: %v", e.Word, e.ID, e.Err)
	case e.Message != "":
		return fmt.Sprintf("guess on wordle %s: %v: %s", e.ID, e.Err, e.Message)
	}
	return fmt.Sprintf("guess on wordle %s: %v", e.ID, e.Err)
}

func (e *GuessError) Unwrap() error { return e.Err }
