// Package service holds the two Wordle use cases: creating a game and
// guessing a word. Collaborators are injected as narrow interfaces; every
// collaborator failure is translated into the package's own error values.
package service

import (
	"context"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// Repository stores wordles. Implementations must allow at most one writer
// per id: a Save built from a stale read has to fail rather than overwrite.
type Repository interface {
	// Get returns the stored wordle and true, or false if id is unknown.
	Get(ctx context.Context, id game.ID) (game.Wordle, bool, error)
	Save(ctx context.Context, w game.Wordle) error
	Exists(ctx context.Context, id game.ID) (bool, error)
}

// IDGenerator produces ids for new wordles.
type IDGenerator interface {
	NewID() game.ID
}

// Dictionary supplies answers and decides which words may be guessed.
type Dictionary interface {
	AnswerOfTheDay() game.Word
	IsValidWord(w game.Word) bool
}

// Service runs the use cases against its collaborators.
type Service struct {
	repo Repository
	ids  IDGenerator
	dict Dictionary
	rule game.Rule
}

// Option configures a Service.
type Option func(*Service)

// WithRule sets the validation rule for games created by the service.
func WithRule(r game.Rule) Option {
	return func(s *Service) { s.rule = r }
}

// New wires a Service. Games use RulePositional unless WithRule says otherwise.
func New(repo Repository, ids IDGenerator, dict Dictionary, opts ...Option) *Service {
	s := &Service{repo: repo, ids: ids, dict: dict, rule: game.RulePositional}
	for _, o := range opts {
		o(s)
	}
	return s
}

// CreateWordle starts a new game with today's answer and stores it.
func (s *Service) CreateWordle(ctx context.Context) (game.Wordle, error) {
	id := s.ids.NewID()

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return game.Wordle{}, &CreateError{ID: id, Err: ErrFailedToLookupWordleID, Message: err.Error()}
	}
	if exists {
		return game.Wordle{}, &CreateError{ID: id, Err: ErrWordleAlreadyExists}
	}

	w := game.NewWithRule(id, s.dict.AnswerOfTheDay(), s.rule)
	if err := s.repo.Save(ctx, w); err != nil {
		return game.Wordle{}, &CreateError{ID: id, Err: ErrFailedToSaveWordle, Message: err.Error()}
	}
	return w, nil
}

// Guess applies word to the wordle identified by id and stores the result.
// The returned wordle may be in progress, complete or failed.
func (s *Service) Guess(ctx context.Context, id game.ID, word game.Word) (game.Wordle, error) {
	w, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return game.Wordle{}, &GuessError{ID: id, Err: ErrGetWordleFailure, Message: err.Error()}
	}
	if !found {
		return game.Wordle{}, &GuessError{ID: id, Err: ErrWordleNotFound}
	}

	if !s.dict.IsValidWord(word) {
		return game.Wordle{}, &GuessError{ID: id, Word: word, Err: ErrNotInDictionary}
	}
	if w.State != game.StateInProgress {
		return game.Wordle{}, &GuessError{ID: id, Err: ErrGameIsOver}
	}

	next, err := w.Guess(word.Guess())
	if err != nil {
		// Only ErrNoRemainingGuesses can come back from an in-progress game.
		return game.Wordle{}, &GuessError{ID: id, Err: ErrGameIsOver}
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return game.Wordle{}, &GuessError{ID: id, Err: ErrSaveWordleFailure, Message: err.Error()}
	}
	return next, nil
}
