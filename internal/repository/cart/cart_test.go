package cart

import (
	"context"
	"os"
	"testing"

	"developerhorizon/internal/domain"
	"developerhorizon/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE cart_snapshots, order_handoffs`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func TestPostgres_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool)
	items := []domain.CartItem{
		{ProductID: "p1", VariantID: 101, Title: "Tee", PriceCents: 2000, Quantity: 2},
	}
	if err := repo.Save(ctx, "sess-1", items); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].VariantID != 101 || loaded[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", loaded)
	}

	// Save replaces the whole snapshot.
	if err := repo.Save(ctx, "sess-1", nil); err != nil {
		t.Fatalf("Save empty: %v", err)
	}
	loaded, err = repo.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Load after empty save: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", loaded)
	}
}

func TestPostgres_LoadMissing(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool)
	if _, err := repo.Load(ctx, "nope"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgres_DeleteRemovesRow(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool)
	if err := repo.Save(ctx, "sess-2", []domain.CartItem{{VariantID: 1, Quantity: 1}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, "sess-2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Load(ctx, "sess-2"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting again is a no-op.
	if err := repo.Delete(ctx, "sess-2"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}
