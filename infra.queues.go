package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Predefinied Queue IDs. One queue per collection, fed on each
// successful creation and drained by the archive consumer.
const (
	BooksQueue     = "books.creation"
	CustomersQueue = "customers.creation"
	OrdersQueue    = "orders.creation"
)

// Event is the unit of work flowing from the api services to the
// archive consumer. The payload is the record as stored.
type Event struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// Ensure *redisQueue implements Queuer.
var _ Queuer = (*redisQueue)(nil)

// Queuer describes a queue.
type Queuer interface {
	Push(ctx context.Context, qid string, id string, record interface{}) error
	Pop(ctx context.Context, qids ...string) (string, Event, error)
}

// redisQueue represents a queue which implements the Queuer interface.
type redisQueue struct {
	client *redis.Client
}

func NewRedisQueue(client *redis.Client) Queuer {
	return &redisQueue{client: client}
}

// Push enqueues a record creation event onto the queue identified by qid.
func (q *redisQueue) Push(ctx context.Context, qid string, id string, record interface{}) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	eventBytes, err := json.Marshal(Event{ID: id, Payload: payload})
	if err != nil {
		return err
	}
	return q.client.RPush(ctx, qid, eventBytes).Err()
}

// Pop returns the first dequeued event from the list of queue ids.
func (q *redisQueue) Pop(ctx context.Context, qids ...string) (string, Event, error) {
	var event Event
	var qid string
	infos, err := q.client.BLPop(ctx, 0*time.Second, qids...).Result()
	if err != nil {
		return qid, event, err
	}

	if err = json.Unmarshal([]byte(infos[1]), &event); err != nil {
		return qid, event, err
	}
	qid = infos[0]
	return qid, event, nil
}
