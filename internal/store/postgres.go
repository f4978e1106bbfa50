package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/radieske/tinkazo-platform/internal/domain"
)

const stateRowID = 1

// Schema cria a tabela do documento de estado
const Schema = `CREATE TABLE IF NOT EXISTS tinkazo_state (
	id         INT PRIMARY KEY,
	version    BIGINT NOT NULL,
	doc        JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Postgres guarda o snapshot como uma linha JSONB; a coluna version é a
// fonte de verdade da versão
type Postgres struct{ db *sql.DB }

func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// Migrate aplica o schema; idempotente
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("migrate tinkazo_state: %w", err)
	}
	return nil
}

func (p *Postgres) Load(ctx context.Context) (*domain.Snapshot, error) {
	var (
		version int64
		raw     []byte
	)
	err := p.db.QueryRowContext(ctx, `SELECT version, doc FROM tinkazo_state WHERE id=$1`, stateRowID).Scan(&version, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	var s domain.Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	s.Version = version
	return &s, nil
}

// Save faz o update condicionado à versão; zero linhas afetadas significa
// que outro escritor chegou antes
func (p *Postgres) Save(ctx context.Context, s *domain.Snapshot) error {
	next := *s
	next.Version = s.Version + 1
	raw, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	res, err := p.db.ExecContext(ctx,
		`UPDATE tinkazo_state SET doc=$1, version=version+1, updated_at=now() WHERE id=$2 AND version=$3`,
		raw, stateRowID, s.Version)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if n == 0 {
		var exists bool
		if err := p.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM tinkazo_state WHERE id=$1)`, stateRowID).Scan(&exists); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return fmt.Errorf("expected version %d: %w", s.Version, ErrVersionConflict)
	}
	s.Version = next.Version
	return nil
}

func (p *Postgres) Bootstrap(ctx context.Context, s *domain.Snapshot) error {
	seed := *s
	seed.Version = 1
	raw, err := json.Marshal(&seed)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if _, err := p.db.ExecContext(ctx,
		`INSERT INTO tinkazo_state(id, version, doc) VALUES($1,1,$2) ON CONFLICT (id) DO NOTHING`,
		stateRowID, raw); err != nil {
		return fmt.Errorf("bootstrap state: %w", err)
	}
	return nil
}
