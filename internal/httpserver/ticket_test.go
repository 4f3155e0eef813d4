package httpserver

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickets_RoundTrip(t *testing.T) {
	tickets := NewTickets(ticketKey, time.Hour)
	tok, exp, err := tickets.Issue(wordleA)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	assert.NoError(t, tickets.Verify(tok, wordleA))
	assert.ErrorIs(t, tickets.Verify(tok, wordleB), ErrTicketMismatch)
	assert.ErrorIs(t, tickets.Verify("", wordleA), ErrTicketMissing)
}

func TestTickets_Expired(t *testing.T) {
	tickets := NewTickets(ticketKey, time.Minute)
	start := time.Now()
	tickets.now = func() time.Time { return start }
	tok, _, err := tickets.Issue(wordleA)
	require.NoError(t, err)

	tickets.now = func() time.Time { return start.Add(2 * time.Minute) }
	assert.ErrorIs(t, tickets.Verify(tok, wordleA), ErrTicketInvalid)
}

func TestTickets_WrongKey(t *testing.T) {
	tok, _, err := NewTickets(ticketKey, time.Hour).Issue(wordleA)
	require.NoError(t, err)

	other := NewTickets([]byte("another key another key another!"), time.Hour)
	assert.ErrorIs(t, other.Verify(tok, wordleA), ErrTicketInvalid)
}

func TestBearerOrCookie(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	assert.Empty(t, bearerOrCookie(r))

	r.Header.Set("Authorization", "bearer abc ")
	assert.Equal(t, "abc", bearerOrCookie(r))

	r = httptest.NewRequest("POST", "/", nil)
	r.Header.Set("Cookie", ticketCookieName+"=xyz")
	assert.Equal(t, "xyz", bearerOrCookie(r))
}
