// internal/game/validate.go
//
// Guess validation: classifies every position of a guess against the answer.
//
// Two rules are available:
//   - RulePositional (default): exact match → right place; otherwise the
//     answer containing the letter anywhere → wrong place; otherwise wrong.
//     Repeated letters are not budgeted.
//   - RuleCanonical: the two-pass algorithm used by the published game,
//     where a letter is only marked wrong place while unmatched copies of it
//     remain in the answer.
package game

import (
	"fmt"
	"strings"
)

// Mark is the classification of a single guessed letter.
type Mark string

const (
	MarkRightPlace Mark = "right_place"
	MarkWrongPlace Mark = "wrong_place"
	MarkWrong      Mark = "wrong"
)

// ValidatedChar carries the guessed letter and its mark.
type ValidatedChar struct {
	Char rune `json:"char"`
	Mark Mark `json:"mark"`
}

func RightPlace(c rune) ValidatedChar { return ValidatedChar{Char: c, Mark: MarkRightPlace} }
func WrongPlace(c rune) ValidatedChar { return ValidatedChar{Char: c, Mark: MarkWrongPlace} }
func Wrong(c rune) ValidatedChar      { return ValidatedChar{Char: c, Mark: MarkWrong} }

func (v ValidatedChar) String() string {
	switch v.Mark {
	case MarkRightPlace:
		return "✓" + string(v.Char)
	case MarkWrongPlace:
		return "?" + string(v.Char)
	default:
		return "✗" + string(v.Char)
	}
}

// Validated is a guess after comparison with an answer, one entry per position.
type Validated [WordLength]ValidatedChar

// IsCorrect reports whether every position is in the right place.
func (v Validated) IsCorrect() bool {
	for _, c := range v {
		if c.Mark != MarkRightPlace {
			return false
		}
	}
	return true
}

// Word returns the word that was guessed.
func (v Validated) Word() Word {
	var w Word
	for i, c := range v {
		w[i] = c.Char
	}
	return w
}

func (v Validated) String() string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Rule selects the validation algorithm used by a game.
type Rule string

const (
	RulePositional Rule = "positional"
	RuleCanonical  Rule = "canonical"
)

// ParseRule maps a config value onto a Rule. Empty means RulePositional.
func ParseRule(s string) (Rule, error) {
	switch Rule(strings.ToLower(strings.TrimSpace(s))) {
	case "", RulePositional:
		return RulePositional, nil
	case RuleCanonical:
		return RuleCanonical, nil
	}
	return "", fmt.Errorf("unknown validation rule %q", s)
}

// Validate applies r to g against answer.
func (r Rule) Validate(answer Word, g Guess) Validated {
	if r == RuleCanonical {
		return ValidateCanonical(answer, g)
	}
	return Validate(answer, g)
}

// Validate classifies each position of g against answer using the
// positional rule.
func Validate(answer Word, g Guess) Validated {
	var out Validated
	for i, c := range g {
		switch {
		case c == answer[i]:
			out[i] = RightPlace(c)
		case answer.Contains(c):
			out[i] = WrongPlace(c)
		default:
			out[i] = Wrong(c)
		}
	}
	return out
}

// ValidateCanonical implements the standard two-pass Wordle scoring.
//
// Pass 1 marks exact matches and counts the answer letters left unmatched.
// Pass 2 marks a non-matching guess letter wrong place only while the count
// for that letter is positive, decrementing it on each use.
func ValidateCanonical(answer Word, g Guess) Validated {
	var out Validated
	remaining := make(map[rune]int, WordLength)

	for i, c := range g {
		if c == answer[i] {
			out[i] = RightPlace(c)
		} else {
			remaining[answer[i]]++
		}
	}

	for i, c := range g {
		if c == answer[i] {
			continue
		}
		if remaining[c] > 0 {
			out[i] = WrongPlace(c)
			remaining[c]--
		} else {
			out[i] = Wrong(c)
		}
	}
	return out
}
