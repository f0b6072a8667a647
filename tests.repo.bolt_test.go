package main

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestBoltArchive returns a new archive storage backed
// by a temporary bolt data file.
func newTestBoltArchive(t *testing.T) ArchiveStorage {
	t.Helper()
	f, err := os.CreateTemp("", "tmp.bolt.db-")
	require.NoError(t, err, "failed in creating a temporary data file")
	f.Close()

	testConfig := &Config{
		BoltDB: BoltDBConfig{
			FilePath: f.Name(),
			Timeout:  5 * time.Second,
		},
	}
	client, err := GetBoltDBClient(testConfig)
	require.NoError(t, err, "failed in creating a test bolt client")

	archive := NewBoltArchiveStorage(zap.NewNop(), client)
	t.Cleanup(func() {
		archive.Close()
		os.Remove(f.Name())
	})
	return archive
}

// Ensure the archive can store and serve back a record payload.
func TestBoltArchive_PutGet(t *testing.T) {
	archive := newTestBoltArchive(t)
	testBookID := "b:0"

	b := Book{ID: testBookID, Title: "Bolt test book title", Price: 10.50}
	payload, err := json.Marshal(b)
	require.NoError(t, err)

	err = archive.Put(context.TODO(), HBooks, testBookID, payload)
	assert.NoError(t, err)

	got, err := archive.Get(context.TODO(), HBooks, testBookID)
	assert.NoError(t, err)

	var book Book
	err = json.Unmarshal(got, &book)
	assert.NoError(t, err)
	assert.Equal(t, testBookID, book.ID)
	assert.Equal(t, "Bolt test book title", book.Title)
}

// Ensure collections are isolated in their own buckets.
func TestBoltArchive_Collections(t *testing.T) {
	archive := newTestBoltArchive(t)

	err := archive.Put(context.TODO(), HOrders, "o:0", []byte(`{"id":"o:0"}`))
	assert.NoError(t, err)

	_, err = archive.Get(context.TODO(), HBooks, "o:0")
	assert.Error(t, err)

	got, err := archive.Get(context.TODO(), HOrders, "o:0")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":"o:0"}`, string(got))
}

// Ensure fetching a missing record fails.
func TestBoltArchive_GetMissing(t *testing.T) {
	archive := newTestBoltArchive(t)
	_, err := archive.Get(context.TODO(), HCustomers, "c:0")
	assert.Error(t, err)
}

// scriptedQueue serves a fixed list of events then blocks until the
// context is done, mimicking a drained blocking queue.
type scriptedQueue struct {
	qids   []string
	events []Event
}

func (q *scriptedQueue) Push(_ context.Context, qid string, id string, record interface{}) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	q.qids = append(q.qids, qid)
	q.events = append(q.events, Event{ID: id, Payload: payload})
	return nil
}

func (q *scriptedQueue) Pop(ctx context.Context, _ ...string) (string, Event, error) {
	if len(q.events) == 0 {
		<-ctx.Done()
		return "", Event{}, ctx.Err()
	}
	qid, event := q.qids[0], q.events[0]
	q.qids, q.events = q.qids[1:], q.events[1:]
	return qid, event, nil
}

// Ensure the consumer mirrors queued creation events into the archive
// and exits cleanly once the context is done.
func TestBoltDBConsumer_Consume(t *testing.T) {
	archive := newTestBoltArchive(t)
	queue := &scriptedQueue{}

	testBook := Book{ID: "b:0", Title: "Bolt test book title"}
	testOrder := Order{ID: "o:0", BookID: "b:0", CustomerID: "c:0", Quantity: 1, Total: 10.50}
	require.NoError(t, queue.Push(context.TODO(), BooksQueue, testBook.ID, testBook))
	require.NoError(t, queue.Push(context.TODO(), OrdersQueue, testOrder.ID, testOrder))

	ctx, cancel := context.WithCancel(context.Background())
	consumer := NewBoltDBConsumer(zap.NewNop(), queue, archive)
	done := make(chan error, 1)
	go func() {
		done <- consumer.Consume(ctx, BooksQueue, CustomersQueue, OrdersQueue)
	}()

	// wait until both events made it into the archive.
	assert.Eventually(t, func() bool {
		_, errB := archive.Get(context.TODO(), HBooks, testBook.ID)
		_, errO := archive.Get(context.TODO(), HOrders, testOrder.ID)
		return errB == nil && errO == nil
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not exit after context cancellation")
	}

	payload, err := archive.Get(context.TODO(), HBooks, testBook.ID)
	assert.NoError(t, err)
	var book Book
	assert.NoError(t, json.Unmarshal(payload, &book))
	assert.Equal(t, testBook.Title, book.Title)
}
