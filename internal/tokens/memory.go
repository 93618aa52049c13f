package tokens

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process implementation of [Store]. It is suitable for
// tests and single-instance deployments without Redis; tokens do not survive
// a restart.
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

// NewMemoryStore constructs an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]string),
	}
}

func (s *MemoryStore) key(accountID int64, purpose Purpose) string {
	return fmt.Sprintf("%s:%d", purpose, accountID)
}

// Issue implements [Store].
func (s *MemoryStore) Issue(ctx context.Context, accountID int64, purpose Purpose) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[s.key(accountID, purpose)] = token

	return token, nil
}

// Redeem implements [Store]. The mutex makes the compare-and-clear atomic,
// so only one of several concurrent redeemers can succeed.
func (s *MemoryStore) Redeem(ctx context.Context, accountID int64, purpose Purpose, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.key(accountID, purpose)
	stored, ok := s.tokens[key]
	if !ok {
		return ErrTokenNotFound
	}
	if stored != token {
		return ErrTokenMismatch
	}

	delete(s.tokens, key)
	return nil
}
