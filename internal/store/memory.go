// internal/store/memory.go
//
// In-memory Wordle repository.
// Used for development, tests, and deployments where durability is not needed.
//
// Characteristics:
//   - Stores game.Wordle values keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Saves are optimistic: a wordle with n guesses replaces the stored copy
//     only if that copy has n-1 guesses. Guesses are append-only, so the
//     count acts as a version.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// Memory is a map-based repository.
type Memory struct {
	mu      sync.RWMutex
	wordles map[game.ID]game.Wordle
}

// NewMemory constructs an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{wordles: make(map[game.ID]game.Wordle)}
}

// Get returns a copy of the stored wordle.
func (m *Memory) Get(_ context.Context, id game.ID) (game.Wordle, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.wordles[id]
	if !ok {
		return game.Wordle{}, false, nil
	}
	return clone(w), true, nil
}

// Save creates w when it has no guesses, otherwise advances the stored copy by one guess.
func (m *Memory) Save(_ context.Context, w game.Wordle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.wordles[w.ID]
	switch {
	case len(w.Guesses) == 0 && ok:
		return newStoreError("Save", w.ID, "id already in use", ErrDuplicateID)
	case len(w.Guesses) > 0 && !ok:
		return newStoreError("Save", w.ID, "no stored wordle to update", ErrNotFound)
	case len(w.Guesses) > 0 && len(stored.Guesses) != len(w.Guesses)-1:
		return newStoreError("Save", w.ID, "stored guess count does not precede this save", ErrConflict)
	}
	m.wordles[w.ID] = clone(w)
	return nil
}

// Exists reports whether a wordle with id is stored.
func (m *Memory) Exists(_ context.Context, id game.ID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.wordles[id]
	return ok, nil
}

func clone(w game.Wordle) game.Wordle {
	w.Guesses = append([]game.Validated{}, w.Guesses...)
	return w
}
