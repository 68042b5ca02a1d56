package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"merchant-settlement/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// LinkingAttemptStore implements ports.LinkingAttemptStore. One attempt is
// kept per merchant; saving a new one replaces the previous.
type LinkingAttemptStore struct {
	client *goredis.Client
	prefix string
}

// NewLinkingAttemptStore creates a new Redis-backed linking attempt store.
func NewLinkingAttemptStore(client *goredis.Client) *LinkingAttemptStore {
	return &LinkingAttemptStore{
		client: client,
		prefix: "linking:",
	}
}

func (s *LinkingAttemptStore) key(merchantID uuid.UUID) string {
	return s.prefix + merchantID.String()
}

// Save stores the attempt with a TTL.
func (s *LinkingAttemptStore) Save(ctx context.Context, attempt *domain.LinkingAttempt, ttl time.Duration) error {
	data, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("marshal linking attempt: %w", err)
	}
	if err := s.client.Set(ctx, s.key(attempt.MerchantID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis linking save: %w", err)
	}
	return nil
}

// Get returns the merchant's pending attempt if its ID matches attemptID.
// Returns nil, nil when there is none or it has been superseded.
func (s *LinkingAttemptStore) Get(ctx context.Context, merchantID, attemptID uuid.UUID) (*domain.LinkingAttempt, error) {
	data, err := s.client.Get(ctx, s.key(merchantID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis linking get: %w", err)
	}

	var attempt domain.LinkingAttempt
	if err := json.Unmarshal(data, &attempt); err != nil {
		return nil, fmt.Errorf("unmarshal linking attempt: %w", err)
	}
	if attempt.ID != attemptID {
		return nil, nil
	}
	return &attempt, nil
}

// Delete drops the merchant's pending attempt.
func (s *LinkingAttemptStore) Delete(ctx context.Context, merchantID uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(merchantID)).Err(); err != nil {
		return fmt.Errorf("redis linking delete: %w", err)
	}
	return nil
}
