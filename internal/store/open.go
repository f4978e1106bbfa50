package store

import (
	"context"
	"fmt"

	"github.com/radieske/tinkazo-platform/internal/domain"
	"github.com/radieske/tinkazo-platform/internal/shared/config"
	"github.com/radieske/tinkazo-platform/internal/shared/db"
	"github.com/radieske/tinkazo-platform/internal/shared/docstore"
)

// Backend agrupa o store aberto com o health check e o fechamento da conexão
type Backend struct {
	Name   string
	Store  Store
	Health func(ctx context.Context) error
	Close  func()
}

// Open conecta o backend escolhido em STATE_BACKEND, aplica o schema quando
// houver e garante que o documento de estado exista
func Open(ctx context.Context, cfg config.Config) (*Backend, error) {
	b := &Backend{Name: cfg.StateBackend}
	switch cfg.StateBackend {
	case "postgres":
		pg, err := db.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		st := NewPostgres(pg)
		if err := st.Migrate(ctx); err != nil {
			_ = pg.Close()
			return nil, err
		}
		b.Store = st
		b.Health = pg.PingContext
		b.Close = func() { _ = pg.Close() }
	case "mongo":
		client, err := docstore.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		b.Store = NewMongo(client.Database(cfg.MongoDatabase))
		b.Health = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		b.Close = func() { _ = client.Disconnect(context.Background()) }
	case "memory":
		b.Store = NewMemory()
		b.Health = func(context.Context) error { return nil }
		b.Close = func() {}
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
	}

	if err := b.Store.Bootstrap(ctx, &domain.Snapshot{}); err != nil {
		b.Close()
		return nil, fmt.Errorf("bootstrap state: %w", err)
	}
	return b, nil
}
