package redisstore

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"kirim/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const retryQueueKey = "webhook:retry"

// popDueScript removes and returns members whose score (the due time) has
// passed. Running as a script keeps concurrent job runners from popping the
// same task twice.
var popDueScript = redis.NewScript(`
local due = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', 0, ARGV[2])
if #due > 0 then
	redis.call('ZREM', KEYS[1], unpack(due))
end
return due
`)

// RetryQueue implements ports.RetryQueue on a Redis sorted set scored by
// the task's due time.
type RetryQueue struct {
	client *redis.Client
}

// NewRetryQueue creates a Redis-backed retry queue.
func NewRetryQueue(client *redis.Client) *RetryQueue {
	return &RetryQueue{client: client}
}

// Enqueue schedules a task to become due at runAt. The task is serialized
// into the set member, so no second lookup is needed on pop.
func (q *RetryQueue) Enqueue(ctx context.Context, task ports.RetryTask, runAt time.Time) error {
	member, err := json.Marshal(task)
	if err != nil {
		return err
	}

	return q.client.ZAdd(ctx, retryQueueKey, redis.Z{
		Score:  float64(runAt.Unix()),
		Member: member,
	}).Err()
}

// PopDue atomically removes and returns up to limit tasks due at now.
func (q *RetryQueue) PopDue(ctx context.Context, now time.Time, limit int) ([]ports.RetryTask, error) {
	raw, err := popDueScript.Run(ctx, q.client,
		[]string{retryQueueKey},
		strconv.FormatInt(now.Unix(), 10),
		strconv.Itoa(limit),
	).StringSlice()
	if err != nil {
		return nil, err
	}

	tasks := make([]ports.RetryTask, 0, len(raw))
	for _, member := range raw {
		var task ports.RetryTask
		if err = json.Unmarshal([]byte(member), &task); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}
