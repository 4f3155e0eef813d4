package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	secret := []byte("master")

	ticket, err := Derive(secret, PurposeTicket)
	require.NoError(t, err)
	assert.Len(t, ticket, 32)

	again, err := Derive(secret, PurposeTicket)
	require.NoError(t, err)
	assert.Equal(t, ticket, again)

	salt, err := Derive(secret, PurposeDailySalt)
	require.NoError(t, err)
	assert.NotEqual(t, ticket, salt)

	other, err := Derive([]byte("other"), PurposeTicket)
	require.NoError(t, err)
	assert.NotEqual(t, ticket, other)
}

func TestDerive_EmptySecret(t *testing.T) {
	_, err := Derive(nil, PurposeTicket)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
