// internal/game/wordle.go
//
// Game state machine for a single Wordle.
//
//	InProgress ──guess──▶ InProgress   (not correct, guesses < MaxGuesses)
//	           ──guess──▶ Complete     (all letters in the right place)
//	           ──guess──▶ Failed       (sixth guess, not correct)
//
// Complete and Failed are terminal. Transitions never modify the receiver:
// Guess returns a new Wordle whose guess slice is a fresh copy.
package game

import (
	"errors"
	"fmt"
)

// MaxGuesses is the guess budget of a single game.
const MaxGuesses = 6

// ErrNoRemainingGuesses is returned when guessing against a finished game.
var ErrNoRemainingGuesses = errors.New("no remaining guesses")

// ID identifies a Wordle.
type ID string

func (id ID) String() string { return string(id) }

// State tags the variant a Wordle is in.
type State string

const (
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
	StateFailed     State = "failed"
)

// Terminal reports whether no further guesses are accepted in s.
func (s State) Terminal() bool {
	return s == StateComplete || s == StateFailed
}

// Wordle is one game: an answer fixed at creation plus the append-only
// history of validated guesses.
type Wordle struct {
	ID      ID
	Answer  Word
	Rule    Rule
	Guesses []Validated
	State   State
}

// GuessError reports a rejected transition.
type GuessError struct {
	ID  ID
	Err error
}

func (e *GuessError) Error() string {
	return fmt.Sprintf("wordle %s: %v", e.ID, e.Err)
}

func (e *GuessError) Unwrap() error { return e.Err }

// New starts a game validated with RulePositional.
func New(id ID, answer Word) Wordle {
	return NewWithRule(id, answer, RulePositional)
}

// NewWithRule starts a game in progress with no guesses.
func NewWithRule(id ID, answer Word, rule Rule) Wordle {
	if rule == "" {
		rule = RulePositional
	}
	return Wordle{
		ID:      id,
		Answer:  answer,
		Rule:    rule,
		Guesses: []Validated{},
		State:   StateInProgress,
	}
}

// Guess validates g against the answer and returns the next state.
// It fails with ErrNoRemainingGuesses unless w is in progress.
func (w Wordle) Guess(g Guess) (Wordle, error) {
	if w.State != StateInProgress {
		return w, &GuessError{ID: w.ID, Err: ErrNoRemainingGuesses}
	}

	validated := w.Rule.Validate(w.Answer, g)

	next := w
	next.Guesses = make([]Validated, len(w.Guesses), len(w.Guesses)+1)
	copy(next.Guesses, w.Guesses)
	next.Guesses = append(next.Guesses, validated)

	switch {
	case validated.IsCorrect():
		next.State = StateComplete
	case len(next.Guesses) >= MaxGuesses:
		next.State = StateFailed
	default:
		next.State = StateInProgress
	}
	return next, nil
}

// Remaining returns how many guesses are left.
func (w Wordle) Remaining() int {
	if w.State.Terminal() {
		return 0
	}
	return MaxGuesses - len(w.Guesses)
}

// IsOver reports whether the game has reached a terminal state.
func (w Wordle) IsOver() bool { return w.State.Terminal() }

// GuessedWords returns the raw words guessed so far, in order.
func (w Wordle) GuessedWords() []Word {
	out := make([]Word, len(w.Guesses))
	for i, g := range w.Guesses {
		out[i] = g.Word()
	}
	return out
}

// Restore rebuilds a Wordle by replaying words through the state machine.
// Stored games are rehydrated this way so their state can never disagree
// with Guess.
func Restore(id ID, answer Word, rule Rule, words []Word) (Wordle, error) {
	w := NewWithRule(id, answer, rule)
	for i, word := range words {
		next, err := w.Guess(word.Guess())
		if err != nil {
			return Wordle{}, fmt.Errorf("replay guess %d of %d: %w", i+1, len(words), err)
		}
		w = next
	}
	return w, nil
}
