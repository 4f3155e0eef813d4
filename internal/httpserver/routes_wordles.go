// internal/httpserver/routes_wordles.go
//
// Game routes:
//   - POST /wordles              → create a wordle; returns its view and a ticket
//   - POST /wordles/{id}/guesses → submit {"word": "..."}; returns the updated view
//
// The answer is only included in a view once the game has ended.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/ids"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/service"
)

const maxGuessBody = 1 << 10

type ctxWordleIDKey struct{}

// charView is one marked letter.
type charView struct {
	Char string    `json:"char"`
	Mark game.Mark `json:"mark"`
}

// wordleView is the public JSON shape of a wordle.
type wordleView struct {
	ID        string       `json:"id"`
	State     game.State   `json:"state"`
	Rule      game.Rule    `json:"rule"`
	Remaining int          `json:"remaining"`
	Guesses   [][]charView `json:"guesses"`
	Answer    string       `json:"answer,omitempty"`
}

type createRes struct {
	Wordle          wordleView `json:"wordle"`
	Ticket          string     `json:"ticket,omitempty"`
	TicketExpiresAt *time.Time `json:"ticketExpiresAt,omitempty"`
}

type guessReq struct {
	Word string `json:"word"`
}

func newWordleView(w game.Wordle) wordleView {
	v := wordleView{
		ID:        string(w.ID),
		State:     w.State,
		Rule:      w.Rule,
		Remaining: w.Remaining(),
		Guesses:   make([][]charView, 0, len(w.Guesses)),
	}
	for _, row := range w.Guesses {
		cells := make([]charView, 0, len(row))
		for _, c := range row {
			cells = append(cells, charView{Char: string(c.Char), Mark: c.Mark})
		}
		v.Guesses = append(v.Guesses, cells)
	}
	if w.IsOver() {
		v.Answer = w.Answer.String()
	}
	return v
}

// mountWordles registers all /wordles routes.
func (s *Server) mountWordles() {
	s.r.Route("/wordles", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(wordleID)
			r.With(s.requireTicket).Post("/guesses", s.handleGuess)
		})
	})
}

// wordleID validates the {id} path segment and stores it in the context.
func wordleID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := ids.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_id")
			return
		}
		ctx := context.WithValue(r.Context(), ctxWordleIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func wordleIDFrom(ctx context.Context) game.ID {
	id, _ := ctx.Value(ctxWordleIDKey{}).(game.ID)
	return id
}

// requireTicket enforces a game ticket for the wordle in the path when
// tickets are required.
func (s *Server) requireTicket(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.cfg.RequireTicket || s.tickets == nil {
			next.ServeHTTP(w, r)
			return
		}
		id := wordleIDFrom(r.Context())
		err := s.tickets.Verify(bearerOrCookie(r), id)
		switch {
		case err == nil:
			next.ServeHTTP(w, r)
		case errors.Is(err, ErrTicketMismatch):
			writeError(w, http.StatusForbidden, "ticket_mismatch")
		case errors.Is(err, ErrTicketMissing):
			writeError(w, http.StatusUnauthorized, "ticket_required")
		default:
			hlog.FromRequest(r).Debug().Err(err).Str("wordle", string(id)).Msg("rejected ticket")
			writeError(w, http.StatusUnauthorized, "ticket_invalid")
		}
	})
}

// handleCreate starts a wordle and, when tickets are enabled, issues its ticket.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	logger := hlog.FromRequest(r)

	wd, err := s.games.CreateWordle(r.Context())
	if err != nil {
		status, code := createErrorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).Msg("create wordle")
		}
		writeError(w, status, code)
		return
	}

	res := createRes{Wordle: newWordleView(wd)}
	if s.tickets != nil {
		tok, exp, err := s.tickets.Issue(wd.ID)
		if err != nil {
			logger.Error().Err(err).Str("wordle", string(wd.ID)).Msg("issue ticket")
			writeError(w, http.StatusInternalServerError, "ticket_failed")
			return
		}
		setTicketCookie(w, wd.ID, tok, exp, s.cfg.SecureCookies)
		res.Ticket = tok
		res.TicketExpiresAt = &exp
	}

	logger.Info().Str("wordle", string(wd.ID)).Str("rule", string(wd.Rule)).Msg("wordle created")
	w.Header().Set("Location", "/wordles/"+string(wd.ID))
	writeJSON(w, http.StatusCreated, res)
}

// handleGuess applies one guess to the wordle in the path.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	logger := hlog.FromRequest(r)
	id := wordleIDFrom(r.Context())

	var req guessReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxGuessBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	word, err := game.ParseWord(req.Word)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_word")
		return
	}

	wd, err := s.games.Guess(r.Context(), id, word)
	if err != nil {
		status, code := guessErrorStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).Str("wordle", string(id)).Msg("guess")
		}
		writeError(w, status, code)
		return
	}

	last := wd.Guesses[len(wd.Guesses)-1]
	logger.Debug().
		Str("wordle", string(id)).
		Stringer("row", last).
		Str("state", string(wd.State)).
		Msg("guess applied")
	writeJSON(w, http.StatusOK, newWordleView(wd))
}

func createErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrWordleAlreadyExists):
		return http.StatusConflict, "already_exists"
	case errors.Is(err, service.ErrFailedToLookupWordleID):
		return http.StatusInternalServerError, "lookup_failed"
	default:
		return http.StatusInternalServerError, "save_failed"
	}
}

func guessErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrWordleNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrNotInDictionary):
		return http.StatusUnprocessableEntity, "not_in_dictionary"
	case errors.Is(err, service.ErrGameIsOver):
		return http.StatusConflict, "game_over"
	case errors.Is(err, service.ErrGetWordleFailure):
		return http.StatusInternalServerError, "get_failed"
	default:
		return http.StatusInternalServerError, "save_failed"
	}
}
