package handoff

import (
	"context"
	"errors"

	"developerhorizon/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Put(ctx context.Context, h Handoff) error {
	const q = `
INSERT INTO order_handoffs (session_id, order_id, email)
VALUES ($1, $2, $3)
ON CONFLICT (session_id)
DO UPDATE SET order_id = EXCLUDED.order_id, email = EXCLUDED.email, created_at = now()
`
	_, err := r.pool.Exec(ctx, q, h.SessionID, h.OrderID, h.Email)
	return err
}

func (r *postgresRepo) Get(ctx context.Context, sessionID string) (*Handoff, error) {
	const q = `
SELECT session_id, order_id, email, created_at
FROM order_handoffs
WHERE session_id = $1
LIMIT 1
`
	var out Handoff
	if err := r.pool.QueryRow(ctx, q, sessionID).Scan(
		&out.SessionID,
		&out.OrderID,
		&out.Email,
		&out.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}
