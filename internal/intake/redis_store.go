package intake

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const sentLeadsKey = "sent_leads"

// RedisSentStore shares the sent-lead set across instances so dedup survives
// restarts and horizontal scaling.
type RedisSentStore struct {
	client *redis.Client
}

func NewRedisSentStore(client *redis.Client) *RedisSentStore {
	if client == nil {
		panic("intake: redis client required")
	}
	return &RedisSentStore{client: client}
}

func (s *RedisSentStore) AlreadySent(ctx context.Context, key string) (bool, error) {
	sent, err := s.client.SIsMember(ctx, sentLeadsKey, key).Result()
	if err != nil {
		return false, fmt.Errorf("intake: check sent lead: %w", err)
	}
	return sent, nil
}

func (s *RedisSentStore) MarkSent(ctx context.Context, key string) error {
	if err := s.client.SAdd(ctx, sentLeadsKey, key).Err(); err != nil {
		return fmt.Errorf("intake: mark lead sent: %w", err)
	}
	return nil
}
