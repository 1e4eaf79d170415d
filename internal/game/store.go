package game

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned when a game ID is unknown to the store.
var ErrNotFound = errors.New("game not found")

// ListOpts bounds a game listing.
type ListOpts struct {
	Limit  int
	Offset int
}

// Store persists finished games. The extraction pipeline has no dependency on
// persistence lifetime; it hands a Game to a Store and is done.
type Store interface {
	PutGame(g Game) error
	GetGame(id string) (Game, error)
	ListGames(ctx context.Context, opts ListOpts) ([]GameSummary, error)
}

type memoryStore struct {
	mu    sync.RWMutex
	games map[string]Game
}

// NewInMemoryStore returns a process-lifetime store. Games survive until restart.
func NewInMemoryStore() Store {
	return &memoryStore{games: map[string]Game{}}
}

func (m *memoryStore) PutGame(g Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memoryStore) GetGame(id string) (Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return Game{}, ErrNotFound
	}
	return g, nil
}

func (m *memoryStore) ListGames(ctx context.Context, opts ListOpts) ([]GameSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]GameSummary, 0, len(m.games))
	for _, g := range m.games {
		out = append(out, GameSummary{
			ID:            g.ID,
			Name:          g.Name,
			QuestionCount: len(g.Questions),
			CreatedAt:     g.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return []GameSummary{}, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}
