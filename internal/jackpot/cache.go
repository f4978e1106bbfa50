// Package jackpot mantém os valores acumulados (Botín e Gordito) no Redis:
// um cache para leitura rápida e um canal pub/sub para o feed em tempo real.
package jackpot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/tinkazo-platform/internal/domain"
	"github.com/radieske/tinkazo-platform/pkg/contracts/events"
)

const currentKey = "jackpot:current"

// FromSnapshot extrai os acumulados do snapshot
func FromSnapshot(s *domain.Snapshot, now time.Time) events.JackpotUpdate {
	return events.JackpotUpdate{
		BotinAmount:      s.BotinAmount,
		GorditoJornadaID: s.GorditoJornadaID,
		GorditoAmount:    s.GorditoAmount,
		StateVersion:     s.Version,
		UpdatedAt:        now,
	}
}

// RedisCache guarda o último valor publicado dos acumulados
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration // 0 = sem expiração
}

func NewRedisCache(c *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: c, TTL: ttl}
}

// SetCurrent grava o valor somente se for mais novo que o armazenado
func (r *RedisCache) SetCurrent(ctx context.Context, u events.JackpotUpdate) error {
	cur, ok, err := r.GetCurrent(ctx)
	if err != nil {
		return err
	}
	if ok && cur.StateVersion > u.StateVersion {
		return nil
	}
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, currentKey, b, r.TTL).Err()
}

// GetCurrent devolve ok=false quando ainda não há valor no cache
func (r *RedisCache) GetCurrent(ctx context.Context) (events.JackpotUpdate, bool, error) {
	var u events.JackpotUpdate
	b, err := r.Client.Get(ctx, currentKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return u, false, nil
	}
	if err != nil {
		return u, false, err
	}
	return u, true, json.Unmarshal(b, &u)
}
