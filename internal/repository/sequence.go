package repository

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
)

const sessionSequenceKey = "session:seq"

// Sequence hands out session ids. Ids start at 1 and only grow.
type Sequence interface {
	Next(ctx context.Context) (int64, error)
}

type redisSequence struct {
	client *redis.Client
}

// NewRedisSequence allocates ids with INCR, so every process sharing the Redis instance
// draws from the same counter.
func NewRedisSequence(client *redis.Client) Sequence {
	return &redisSequence{
		client: client,
	}
}

func (that *redisSequence) Next(ctx context.Context) (int64, error) {
	id, err := that.client.Incr(ctx, sessionSequenceKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment session sequence: %w", err)
	}

	return id, nil
}

type memorySequence struct {
	last atomic.Int64
}

func NewMemorySequence() Sequence {
	return &memorySequence{}
}

func (that *memorySequence) Next(_ context.Context) (int64, error) {
	return that.last.Add(1), nil
}
