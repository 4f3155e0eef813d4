// Package daily derives the per-day answer index.
//
// The index is HMAC-SHA256(salt, YYYY-MM-DD) reduced modulo the number of
// answers, so every process sharing a salt agrees on the day's word without
// coordination, and the sequence cannot be predicted without the salt.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index in [0, answersLen) for the UTC date of t.
func WordIndex(t time.Time, salt []byte, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, salt)
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}
