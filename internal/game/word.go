// internal/game/word.go
//
// Fixed-length word primitives for the Wordle engine.
// Defines:
//   - Word: an immutable, uppercase, five-letter value.
//   - Guess: a player's submission, same shape as Word, not yet compared
//     against any answer.
//
// Raw input only becomes a Word through ParseWord, so every Word in the
// system satisfies len == WordLength.

package game

import (
	"errors"
	"strings"
	"unicode"
)

// WordLength is the number of letters in every answer and guess.
const WordLength = 5

var (
	ErrInvalidWordLength     = errors.New("word must be exactly 5 letters")
	ErrInvalidWordCharacters = errors.New("word must contain letters only")
)

// Word is a five-letter, uppercase word.
type Word [WordLength]rune

// Guess is an unvalidated guess supplied by a player.
type Guess [WordLength]rune

// ParseWord trims and uppercases raw and checks it holds exactly
// WordLength letters.
func ParseWord(raw string) (Word, error) {
	runes := []rune(strings.ToUpper(strings.TrimSpace(raw)))
	if len(runes) != WordLength {
		return Word{}, ErrInvalidWordLength
	}
	var w Word
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			return Word{}, ErrInvalidWordCharacters
		}
		w[i] = r
	}
	return w, nil
}

// MustParseWord is ParseWord for fixtures and embedded lists; it panics on bad input.
func MustParseWord(raw string) Word {
	w, err := ParseWord(raw)
	if err != nil {
		panic("game: " + raw + ": " + err.Error())
	}
	return w
}

// ParseGuess parses raw the same way as ParseWord.
func ParseGuess(raw string) (Guess, error) {
	w, err := ParseWord(raw)
	if err != nil {
		return Guess{}, err
	}
	return w.Guess(), nil
}

// Contains reports whether c occurs in any position of w.
func (w Word) Contains(c rune) bool {
	for _, r := range w {
		if r == c {
			return true
		}
	}
	return false
}

// Guess turns w into an unvalidated guess.
func (w Word) Guess() Guess { return Guess(w) }

func (w Word) String() string { return string(w[:]) }

func (g Guess) String() string { return string(g[:]) }
