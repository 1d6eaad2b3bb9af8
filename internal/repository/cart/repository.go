package cart

import (
	"context"

	"developerhorizon/internal/domain"
)

// Repository persists one cart snapshot per session key. The snapshot is the
// whole item list, written on every mutation and read exactly once when the
// session's store is constructed.
type Repository interface {
	// Load returns the persisted items for the session, or
	// domain.ErrNotFound when no snapshot exists.
	Load(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	// Save replaces the session's snapshot with the given items.
	Save(ctx context.Context, sessionID string, items []domain.CartItem) error
	// Delete removes the snapshot entirely, distinct from saving an empty
	// list. Deleting a missing snapshot is not an error.
	Delete(ctx context.Context, sessionID string) error
}
