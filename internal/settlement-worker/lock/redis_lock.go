package lock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultKey é a chave do lock que serializa as passadas de liquidação
const DefaultKey = "settlement:lock"

var ErrNotAcquired = errors.New("lock held by another worker")

// libera só se o valor ainda for o token de quem adquiriu
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock é um lock simples com SET NX PX. O TTL limita quanto tempo um
// worker morto segura a liquidação.
type RedisLock struct {
	Client *redis.Client
	Key    string
	TTL    time.Duration
}

func NewRedisLock(c *redis.Client, key string, ttl time.Duration) *RedisLock {
	if key == "" {
		key = DefaultKey
	}
	return &RedisLock{Client: c, Key: key, TTL: ttl}
}

// Acquire devolve o token a ser usado no Release ou ErrNotAcquired
func (l *RedisLock) Acquire(ctx context.Context) (string, error) {
	token := uuid.New().String()
	ok, err := l.Client.SetNX(ctx, l.Key, token, l.TTL).Result()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotAcquired
	}
	return token, nil
}

func (l *RedisLock) Release(ctx context.Context, token string) error {
	return releaseScript.Run(ctx, l.Client, []string{l.Key}, token).Err()
}
