// internal/httpserver/ticket.go
//
// Game tickets: HS256 JWTs that bind the caller who created a wordle to that
// wordle's id. A ticket is returned by POST /wordles and must be presented as
// "Authorization: Bearer <ticket>" (or the ticket cookie) on guesses when
// tickets are required.

package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

const (
	ticketIssuer     = "go-wordle"
	ticketCookieName = "wordle_ticket"
)

var (
	// ErrTicketMissing means no bearer token or cookie was sent.
	ErrTicketMissing = errors.New("ticket missing")
	// ErrTicketInvalid means the token failed signature, expiry or claim checks.
	ErrTicketInvalid = errors.New("ticket invalid")
	// ErrTicketMismatch means a valid ticket was issued for another wordle.
	ErrTicketMismatch = errors.New("ticket is for another wordle")
)

// Tickets issues and verifies game tickets.
type Tickets struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTickets returns a ticket issuer signing with key. Tickets expire after ttl.
func NewTickets(key []byte, ttl time.Duration) *Tickets {
	return &Tickets{key: append([]byte(nil), key...), ttl: ttl, now: time.Now}
}

// Issue signs a ticket for wordle id.
func (t *Tickets) Issue(id game.ID) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    ticketIssuer,
		Subject:   string(id),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := tok.SignedString(t.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign ticket: %w", err)
	}
	return ss, exp, nil
}

// Verify checks that raw is a valid ticket for wordle id.
func (t *Tickets) Verify(raw string, id game.ID) error {
	if raw == "" {
		return ErrTicketMissing
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return t.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ticketIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTicketInvalid, err)
	}
	if claims.Subject != string(id) {
		return ErrTicketMismatch
	}
	return nil
}

// bearerOrCookie extracts a ticket from the Authorization header or ticket cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(ticketCookieName); err == nil {
		return c.Value
	}
	return ""
}

// setTicketCookie scopes the ticket cookie to the wordle's own routes.
func setTicketCookie(w http.ResponseWriter, id game.ID, token string, exp time.Time, secure bool) {
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ticketCookieName,
		Value:    token,
		Path:     "/wordles/" + string(id),
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}
