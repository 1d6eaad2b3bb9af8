// Package cart holds the session-scoped shopping cart store. Each session
// owns one Store that loads its persisted snapshot exactly once at
// construction and writes the full snapshot back on every mutation.
package cart

import (
	"context"
	"errors"
	"log"
	"sync"

	"developerhorizon/internal/domain"
	cartrepo "developerhorizon/internal/repository/cart"
)

// Store is the cart for one session. Mutations persist synchronously: the
// call returns only after the snapshot write was issued.
type Store struct {
	mu        sync.Mutex
	sessionID string
	items     []domain.CartItem
	repo      cartrepo.Repository
	logger    *log.Logger
}

// NewStore builds a Store and rehydrates it from the persisted snapshot.
// A missing or unreadable snapshot yields an empty cart; the snapshot is
// never re-read afterwards during the session.
func NewStore(ctx context.Context, sessionID string, repo cartrepo.Repository, logger *log.Logger) *Store {
	s := &Store{sessionID: sessionID, repo: repo, logger: logger}

	items, err := repo.Load(ctx, sessionID)
	switch {
	case err == nil:
		s.items = items
	case errors.Is(err, domain.ErrNotFound):
		// First visit, nothing persisted yet.
	default:
		logger.Printf("cart %s: rehydrate failed, starting empty: %v", sessionID, err)
	}
	return s
}

// Items returns a copy of the current line items.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// SubtotalCents sums unit price times quantity over the cart.
func (s *Store) SubtotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartSubtotalCents(s.items)
}

// Empty reports whether the cart has no line items.
func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// Add merges the item into an existing line with the same variant id,
// incrementing its quantity, or appends a new line. The merge keys on the
// variant id alone while removal keys on the (product, variant) pair; the
// asymmetry is long-standing observed behavior and is pinned by tests.
// Quantity is not re-validated here.
func (s *Store) Add(ctx context.Context, item domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.items {
		if s.items[i].VariantID == item.VariantID {
			s.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, item)
	}
	return s.persistLocked(ctx)
}

// Remove deletes every line matching both the product id and variant id.
// The snapshot is persisted even when nothing matched.
func (s *Store) Remove(ctx context.Context, productID string, variantID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, it := range s.items {
		if it.ProductID != productID || it.VariantID != variantID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	return s.persistLocked(ctx)
}

// UpdateQuantity sets the quantity on the line with the given variant id if
// present, and persists regardless of whether a match was found.
func (s *Store) UpdateQuantity(ctx context.Context, variantID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].VariantID == variantID {
			s.items[i].Quantity = quantity
			break
		}
	}
	return s.persistLocked(ctx)
}

// Clear empties the cart and deletes the persisted snapshot entirely,
// distinct from persisting an empty collection.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.repo.Delete(ctx, s.sessionID); err != nil {
		s.logger.Printf("cart %s: delete snapshot: %v", s.sessionID, err)
		return err
	}
	return nil
}

func (s *Store) persistLocked(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.sessionID, s.items); err != nil {
		s.logger.Printf("cart %s: persist snapshot: %v", s.sessionID, err)
		return err
	}
	return nil
}
