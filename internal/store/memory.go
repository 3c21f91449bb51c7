// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Live game sessions only; nothing survives a restart; a lost session is
// rebuilt from its token by the HTTP layer.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map, with a last-access time.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs a mutation (or a read) under the write lock so two guesses
//     on the same game never interleave.
//   - Sweep evicts games idle for longer than a limit; RunJanitor calls it on
//     a ticker.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/absurdle/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or updates a game state.
	Save(ctx context.Context, g *game.Game) error

	// Update applies fn to the stored game atomically with respect to other
	// Update calls and marks it accessed. It returns ErrNotFound for unknown
	// IDs, or fn's error. Reads go through Update too.
	Update(ctx context.Context, id string, fn func(g *game.Game) error) error

	// Delete removes a game; unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep removes games not accessed for at least maxIdle and reports how
	// many were removed.
	Sweep(ctx context.Context, maxIdle time.Duration) int

	// Len reports how many games are held.
	Len() int
}

type entry struct {
	game     *game.Game
	lastSeen time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex      // guards games map and the games in it
	games map[string]*entry // keyed by Game.ID
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return newMemory(time.Now)
}

func newMemory(now func() time.Time) *memory {
	return &memory{games: make(map[string]*entry), now: now}
}

// Save adds or updates the game in the map.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = &entry{game: g, lastSeen: m.now()}
	return nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(g *game.Game) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	e.lastSeen = m.now()
	return fn(e.game)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	n := 0
	for id, e := range m.games {
		if now.Sub(e.lastSeen) >= maxIdle {
			delete(m.games, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// RunJanitor sweeps s every interval, evicting games idle for maxIdle,
// until ctx is done. It always returns nil so it can run in an errgroup.
func RunJanitor(ctx context.Context, s Store, interval, maxIdle time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if n := s.Sweep(ctx, maxIdle); n > 0 {
				log.Info().Int("evicted", n).Int("held", s.Len()).Dur("maxIdle", maxIdle).Msg("idle games evicted")
			}
		}
	}
}
