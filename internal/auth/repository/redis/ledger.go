package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portofolyo/auth-service/internal/auth/domain"
)

const keyPrefix = "revoked:"

// RedisLedger keeps revoked jtis as TTL-bound keys. The TTL should cover the
// longest token lifetime; once a token has expired on its own, its ledger
// entry no longer matters and Redis drops it for free.
type RedisLedger struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLedger(client *redis.Client, ttl time.Duration) *RedisLedger {
	return &RedisLedger{client: client, ttl: ttl}
}

func (l *RedisLedger) Revoke(ctx context.Context, jti string, kind domain.TokenKind, identityID string) error {
	// Plain SET: re-revoking is naturally idempotent.
	return l.client.Set(ctx, keyPrefix+jti, string(kind), l.ttl).Err()
}

func (l *RedisLedger) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := l.client.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// PurgeBefore is a no-op here; expiry via TTL already handles hygiene.
func (l *RedisLedger) PurgeBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}
