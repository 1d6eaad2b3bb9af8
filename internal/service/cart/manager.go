package cart

import (
	"context"
	"log"
	"sync"

	cartrepo "developerhorizon/internal/repository/cart"
)

// Manager hands out one Store per session key, constructing and rehydrating
// it on first sight and caching it for the rest of the process lifetime.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
	repo   cartrepo.Repository
	logger *log.Logger
}

func NewManager(repo cartrepo.Repository, logger *log.Logger) *Manager {
	return &Manager{
		stores: make(map[string]*Store),
		repo:   repo,
		logger: logger,
	}
}

// Store returns the session's cart store, building it if needed.
func (m *Manager) Store(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	if s, ok := m.stores[sessionID]; ok {
		m.mu.Unlock()
		return s
	}
	m.mu.Unlock()

	// Rehydration hits storage, so build outside the lock and keep the
	// first store registered if two requests raced.
	s := NewStore(ctx, sessionID, m.repo, m.logger)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.stores[sessionID]; ok {
		return existing
	}
	m.stores[sessionID] = s
	return s
}
