// internal/words/words.go
//
// Dictionary of answers and valid guesses.
//
// Word lists:
//   - "answers": candidate daily answers.
//   - "allowed": valid guesses. Every answer is also allowed.
//
// Loading behavior (Load):
//  1. If both AnswersFile and AllowedFile are set,
//     load answers from the first and guess-only words from the second.
//  2. If only AllowedFile is set,
//     load that file and use it for both answers and allowed guesses.
//  3. Otherwise fall back to the lists embedded in package assets.
//
// Lines that are not five letters are skipped and counted in a warning.
// The answer of the day is picked by daily.WordIndex with the configured salt.

package words

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/assets"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/daily"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// ErrNoAnswers is returned when no usable answer remains after loading.
var ErrNoAnswers = errors.New("words: answers list is empty")

// Options configures Load.
type Options struct {
	AnswersFile string
	AllowedFile string
	// Salt keys the daily answer sequence.
	Salt []byte
	// Now defaults to time.Now.
	Now func() time.Time
}

// Dictionary answers which words may be guessed and which word is today's answer.
// It is read-only after construction and safe for concurrent use.
type Dictionary struct {
	answers []game.Word
	allowed map[game.Word]struct{}
	salt    []byte
	now     func() time.Time
}

// Load builds a Dictionary from files or the embedded defaults.
func Load(opts Options) (*Dictionary, error) {
	var answers, allowed []string
	var err error

	switch {
	case opts.AnswersFile != "" && opts.AllowedFile != "":
		if answers, err = readWordFile(opts.AnswersFile); err != nil {
			return nil, err
		}
		if allowed, err = readWordFile(opts.AllowedFile); err != nil {
			return nil, err
		}
	case opts.AllowedFile != "":
		if allowed, err = readWordFile(opts.AllowedFile); err != nil {
			return nil, err
		}
		answers = allowed
	default:
		if answers, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("words: embedded answers: %w", err)
		}
		if allowed, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("words: embedded allowed: %w", err)
		}
	}

	d, err := New(answers, allowed, opts.Salt)
	if err != nil {
		return nil, err
	}
	if opts.Now != nil {
		d.now = opts.Now
	}
	answersCount, allowedCount := d.Stats()
	log.Info().Int("answers", answersCount).Int("allowed", allowedCount).Msg("dictionary loaded")
	return d, nil
}

// New builds a Dictionary from raw word lists. Answers are added to the
// allowed set. Duplicate answers are kept once.
func New(answers, allowed []string, salt []byte) (*Dictionary, error) {
	d := &Dictionary{
		allowed: make(map[game.Word]struct{}, len(answers)+len(allowed)),
		salt:    append([]byte(nil), salt...),
		now:     time.Now,
	}

	skipped := 0
	for _, raw := range answers {
		w, err := game.ParseWord(raw)
		if err != nil {
			skipped++
			continue
		}
		if _, dup := d.allowed[w]; dup {
			continue
		}
		d.allowed[w] = struct{}{}
		d.answers = append(d.answers, w)
	}
	for _, raw := range allowed {
		w, err := game.ParseWord(raw)
		if err != nil {
			skipped++
			continue
		}
		d.allowed[w] = struct{}{}
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("ignored malformed dictionary lines")
	}

	if len(d.answers) == 0 {
		return nil, ErrNoAnswers
	}
	return d, nil
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	lines, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return lines, nil
}

// AnswerOfTheDay returns the answer for the current UTC date.
func (d *Dictionary) AnswerOfTheDay() game.Word {
	return d.AnswerFor(d.now())
}

// AnswerFor returns the answer for the UTC date of t.
func (d *Dictionary) AnswerFor(t time.Time) game.Word {
	return d.answers[daily.WordIndex(t, d.salt, len(d.answers))]
}

// IsValidWord reports whether w may be guessed.
func (d *Dictionary) IsValidWord(w game.Word) bool {
	_, ok := d.allowed[w]
	return ok
}

// IsAnswer reports whether w is one of the daily answers.
func (d *Dictionary) IsAnswer(w game.Word) bool {
	for _, a := range d.answers {
		if a == w {
			return true
		}
	}
	return false
}

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	return len(d.answers), len(d.allowed)
}
