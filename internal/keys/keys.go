// Package keys derives independent subkeys from the master secret.
package keys

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Purposes for Derive. Each yields an unrelated key from the same secret.
const (
	PurposeTicket    = "wordle/ticket/v1"
	PurposeDailySalt = "wordle/daily-salt/v1"
	defaultKeyLength = 32
)

// ErrEmptySecret is returned when the master secret is empty.
var ErrEmptySecret = errors.New("keys: empty master secret")

// Derive returns a 32-byte key for purpose using HKDF-SHA256.
func Derive(secret []byte, purpose string) ([]byte, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	r := hkdf.New(sha256.New, secret, nil, []byte(purpose))
	key := make([]byte, defaultKeyLength)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("keys: derive %s: %w", purpose, err)
	}
	return key, nil
}
