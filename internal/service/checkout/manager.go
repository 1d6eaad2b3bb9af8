package checkout

import (
	"context"
	"log"
	"sync"

	cartsvc "developerhorizon/internal/service/cart"
)

// Manager hands out one Checkout per session, bound to that session's cart
// store.
type Manager struct {
	mu        sync.Mutex
	checkouts map[string]*Checkout
	carts     *cartsvc.Manager
	rates     RatesFetcher
	payments  SessionCreator
	logger    *log.Logger
}

func NewManager(carts *cartsvc.Manager, rates RatesFetcher, payments SessionCreator, logger *log.Logger) *Manager {
	return &Manager{
		checkouts: make(map[string]*Checkout),
		carts:     carts,
		rates:     rates,
		payments:  payments,
		logger:    logger,
	}
}

// Checkout returns the session's orchestrator, building it if needed.
func (m *Manager) Checkout(ctx context.Context, sessionID string) *Checkout {
	m.mu.Lock()
	if c, ok := m.checkouts[sessionID]; ok {
		m.mu.Unlock()
		return c
	}
	m.mu.Unlock()

	cart := m.carts.Store(ctx, sessionID)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.checkouts[sessionID]; ok {
		return existing
	}
	c := New(cart, m.rates, m.payments, m.logger)
	m.checkouts[sessionID] = c
	return c
}

// Reset drops the session's checkout state, used after a successful order so
// a new attempt starts from a clean draft.
func (m *Manager) Reset(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.checkouts, sessionID)
}
