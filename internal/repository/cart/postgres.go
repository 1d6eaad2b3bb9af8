package cart

import (
	"context"
	"encoding/json"
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

func (r *postgresRepo) Load(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	const q = `
SELECT items
FROM cart_snapshots
WHERE session_id = $1
`
	var raw []byte
	if err := r.pool.QueryRow(ctx, q, sessionID).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresRepo) Save(ctx context.Context, sessionID string, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO cart_snapshots (session_id, items, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (session_id)
DO UPDATE SET items = EXCLUDED.items, updated_at = now()
`
	_, err = r.pool.Exec(ctx, q, sessionID, raw)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, sessionID string) error {
	const q = `
DELETE FROM cart_snapshots
WHERE session_id = $1
`
	_, err := r.pool.Exec(ctx, q, sessionID)
	return err
}
