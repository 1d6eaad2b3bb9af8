package handoff

import (
	"context"
	"time"
)

// Handoff records the order id and email written at order-success time, so a
// status page reached without query parameters can still recover context.
type Handoff struct {
	SessionID string
	OrderID   string
	Email     string
	CreatedAt time.Time
}

type Repository interface {
	Put(ctx context.Context, h Handoff) error
	Get(ctx context.Context, sessionID string) (*Handoff, error)
}
