package offerinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jobhubapp/jobhub/marketplace/offer"
)

// RedisExpiryQueue implements offer.ExpiryQueue using Redis. Expiry jobs
// wait in a sorted set scored by their due time and are moved onto a list
// once due, where workers pick them up with a blocking pop.
type RedisExpiryQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisExpiryQueue creates a new Redis-based expiry queue
func NewRedisExpiryQueue(client *redis.Client, queueName string) offer.ExpiryQueue {
	return &RedisExpiryQueue{
		client:    client,
		queueName: queueName,
	}
}

func (q *RedisExpiryQueue) scheduledQueue() string {
	return q.queueName + ":scheduled"
}

// Schedule enqueues an expiry job scored by the offer's expiry time
func (q *RedisExpiryQueue) Schedule(ctx context.Context, job offer.ExpiryJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal expiry job for offer %s: %w", job.OfferID, err)
	}

	if err := q.client.ZAdd(ctx, q.scheduledQueue(), &redis.Z{
		Score:  float64(job.ExpiresAt.Unix()),
		Member: data,
	}).Err(); err != nil {
		return fmt.Errorf("schedule expiry for offer %s: %w", job.OfferID, err)
	}

	return nil
}

// Dequeue gets a due expiry job from the ready queue (blocking with timeout)
func (q *RedisExpiryQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when timeout occurs
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue expiry job: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	return []byte(result[1]), nil
}

// MoveDueToReady moves scheduled jobs whose expiry time has passed onto the
// ready queue
func (q *RedisExpiryQueue) MoveDueToReady(ctx context.Context) (int, error) {
	now := float64(time.Now().Unix())

	jobs, err := q.client.ZRangeByScore(ctx, q.scheduledQueue(), &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%f", now),
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("get due expiry jobs: %w", err)
	}

	if len(jobs) == 0 {
		return 0, nil
	}

	pipe := q.client.Pipeline()
	for _, job := range jobs {
		pipe.LPush(ctx, q.queueName, job)
		pipe.ZRem(ctx, q.scheduledQueue(), job)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("move due expiry jobs to ready: %w", err)
	}

	return len(jobs), nil
}

// PendingCount returns the number of scheduled expiry jobs
func (q *RedisExpiryQueue) PendingCount(ctx context.Context) (int64, error) {
	size, err := q.client.ZCard(ctx, q.scheduledQueue()).Result()
	if err != nil {
		return 0, fmt.Errorf("get scheduled queue size: %w", err)
	}
	return size, nil
}
