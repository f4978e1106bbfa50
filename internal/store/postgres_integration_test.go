package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/radieske/tinkazo-platform/internal/domain"
)

func setupPostgres(t *testing.T) *Postgres {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	var (
		container *postgres.PostgresContainer
		err       error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = assert.AnError
			}
		}()
		container, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("tinkazo"),
			postgres.WithUsername("tinkazo"),
			postgres.WithPassword("tinkazo"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	p := NewPostgres(db)
	require.NoError(t, p.Migrate(ctx))
	return p
}

func TestPostgres_RoundTripAndVersioning(t *testing.T) {
	p := setupPostgres(t)
	ctx := context.Background()

	_, err := p.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	result := domain.OutcomeHome
	seed := &domain.Snapshot{
		Jornadas: []domain.Jornada{{
			ID:      "j1",
			Status:  domain.JornadaClosed,
			Matches: []domain.Match{{ID: "m1", Result: &result}},
		}},
		Users:       []domain.RegisteredUser{{ID: "u1", Balance: 12.5}},
		BotinAmount: 1000,
	}
	require.NoError(t, p.Bootstrap(ctx, seed))
	require.NoError(t, p.Bootstrap(ctx, &domain.Snapshot{BotinAmount: 1}))

	a, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.Version)
	assert.Equal(t, 1000.0, a.BotinAmount)
	require.Len(t, a.Jornadas, 1)
	assert.Equal(t, domain.OutcomeHome, *a.Jornadas[0].Matches[0].Result)

	b, err := p.Load(ctx)
	require.NoError(t, err)

	a.BotinAmount = 0
	require.NoError(t, p.Save(ctx, a))
	assert.Equal(t, int64(2), a.Version)

	b.BotinAmount = 5
	assert.ErrorIs(t, p.Save(ctx, b), ErrVersionConflict)

	out, err := Update(ctx, p, func(s *domain.Snapshot) error {
		s.Users[0].Balance += 10
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Version)

	cur, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 22.5, cur.Users[0].Balance)
	assert.Zero(t, cur.BotinAmount)
}
