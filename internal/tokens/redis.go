package tokens

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// redeemScript atomically compares the stored token with the presented one
// and deletes it on match, so that concurrent redeemers cannot both succeed.
var redeemScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if not val then return 0 end
if val ~= ARGV[1] then return -1 end
redis.call("DEL", KEYS[1])
return 1
`)

// RedisStore is the Redis-backed implementation of [Store]. Tokens are kept
// without expiry; only re-issuing or redeeming removes them.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore constructs a [RedisStore] using the given client. keyPrefix
// namespaces all token keys; when empty, "action-token:" is used.
func NewRedisStore(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "action-token:"
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (s *RedisStore) key(accountID int64, purpose Purpose) string {
	return fmt.Sprintf("%s%s:%d", s.keyPrefix, purpose, accountID)
}

// Issue implements [Store]. The generated token overwrites any previously
// issued token for the same (account, purpose) pair.
func (s *RedisStore) Issue(ctx context.Context, accountID int64, purpose Purpose) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, s.key(accountID, purpose), token, 0).Err(); err != nil {
		return "", fmt.Errorf("issuing action token: %w", err)
	}
	return token, nil
}

// Redeem implements [Store] via an atomic compare-and-delete script.
func (s *RedisStore) Redeem(ctx context.Context, accountID int64, purpose Purpose, token string) error {
	res, err := redeemScript.Run(ctx, s.client, []string{s.key(accountID, purpose)}, token).Int()
	if err != nil {
		return fmt.Errorf("redeeming action token: %w", err)
	}

	switch res {
	case 0:
		return ErrTokenNotFound
	case -1:
		return ErrTokenMismatch
	default:
		return nil
	}
}
