// Package store persiste o snapshot de estado como um documento único com
// versão. Toda escrita confere a versão lida, então dois escritores
// concorrentes nunca aplicam a mesma liquidação duas vezes.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/radieske/tinkazo-platform/internal/domain"
)

var (
	ErrNotFound        = errors.New("state not found")
	ErrVersionConflict = errors.New("state version conflict")
)

// Store é a fronteira de persistência do snapshot
type Store interface {
	// Load devolve o snapshot atual com Version preenchida
	Load(ctx context.Context) (*domain.Snapshot, error)
	// Save grava s somente se a versão armazenada for s.Version e
	// incrementa s.Version em caso de sucesso
	Save(ctx context.Context, s *domain.Snapshot) error
	// Bootstrap cria o documento inicial se ainda não existir
	Bootstrap(ctx context.Context, s *domain.Snapshot) error
}

// MaxAttempts limita as tentativas de Update diante de conflitos de versão
const MaxAttempts = 3

// Update carrega o estado, aplica fn e grava. Conflitos de versão repetem o
// ciclo com um snapshot novo; erros de fn abortam sem escrever.
func Update(ctx context.Context, st Store, fn func(s *domain.Snapshot) error) (*domain.Snapshot, error) {
	var lastErr error
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		s, err := st.Load(ctx)
		if err != nil {
			return nil, err
		}
		if err := fn(s); err != nil {
			return nil, err
		}
		err = st.Save(ctx, s)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("update after %d attempts: %w", MaxAttempts, lastErr)
}

// Memory guarda o snapshot em processo. Usado em testes e com
// STATE_BACKEND=memory.
type Memory struct {
	mu    sync.Mutex
	state *domain.Snapshot
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Load(_ context.Context) (*domain.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, ErrNotFound
	}
	return m.state.Clone(), nil
}

func (m *Memory) Save(_ context.Context, s *domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return ErrNotFound
	}
	if m.state.Version != s.Version {
		return fmt.Errorf("expected %d, stored %d: %w", s.Version, m.state.Version, ErrVersionConflict)
	}
	s.Version++
	m.state = s.Clone()
	return nil
}

func (m *Memory) Bootstrap(_ context.Context, s *domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != nil {
		return nil
	}
	m.state = s.Clone()
	m.state.Version = 1
	return nil
}
