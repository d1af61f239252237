//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type DealFixture struct {
	StoreName string
	Category  string
	Title     string
	Discount  int
	Lat       float64
	Lng       float64
	State     string
	Views     int
	ExpiresAt time.Time
}

// InsertDeal writes a deal row directly, bypassing the API.
func InsertDeal(t *testing.T, db DBLike, f DealFixture) uuid.UUID {
	t.Helper()

	id := uuid.New()
	if f.ExpiresAt.IsZero() {
		f.ExpiresAt = time.Now().Add(24 * time.Hour)
	}
	if f.Category == "" {
		f.Category = "coffee"
	}
	if f.Title == "" {
		f.Title = f.StoreName + " deal"
	}

	_, err := db.Exec(context.Background(), `
		INSERT INTO deals (id, store_name, category, title, image, discount, lat, lng, state, views, expires_at)
		VALUES ($1, $2, $3, $4, 'https://cdn.example.com/x.jpg', $5, $6, $7, $8, $9, $10)`,
		id, f.StoreName, f.Category, f.Title, f.Discount, f.Lat, f.Lng, f.State, f.Views, f.ExpiresAt)
	require.NoError(t, err)
	return id
}

func CountDeals(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM deals").Scan(&n))
	return n
}

// ResetDB empties every table between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE deals")
	return err
}
