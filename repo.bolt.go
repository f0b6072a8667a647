package main

import (
	"context"
	"fmt"

	"github.com/boltdb/bolt"
	"go.uber.org/zap"
)

// ArchiveStorage keeps an embedded mirror of each collection,
// fed asynchronously by the queue consumer.
type ArchiveStorage interface {
	Put(ctx context.Context, collection string, id string, payload []byte) error
	Get(ctx context.Context, collection string, id string) ([]byte, error)
	Close() error
}

type boltArchiveStorage struct {
	logger *zap.Logger
	client *bolt.DB
}

// GetBoltDBClient setup the database and one bucket per collection
// then provides a ready to use client.
func GetBoltDBClient(config *Config) (*bolt.DB, error) {
	db, err := bolt.Open(config.BoltDB.FilePath, 0o600, &bolt.Options{Timeout: config.BoltDB.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open the database, %v", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, collection := range []string{HBooks, HCustomers, HOrders} {
			if _, errB := tx.CreateBucketIfNotExists([]byte(collection)); errB != nil {
				return fmt.Errorf("failed to create %s bucket: %v", collection, errB)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up buckets: %v", err)
	}
	return db, nil
}

// NewBoltArchiveStorage provides an instance of bolt-based archive storage.
func NewBoltArchiveStorage(logger *zap.Logger, client *bolt.DB) ArchiveStorage {
	return &boltArchiveStorage{
		logger: logger,
		client: client,
	}
}

// Close shuts down the bolt-based archive storage.
func (bs *boltArchiveStorage) Close() error {
	return bs.client.Close()
}

// Put inserts a record payload into the collection bucket.
func (bs *boltArchiveStorage) Put(_ context.Context, collection string, id string, payload []byte) error {
	return bs.client.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(collection)).Put([]byte(id), payload)
	})
}

// Get retrieves a record payload based on its ID from the collection bucket.
func (bs *boltArchiveStorage) Get(_ context.Context, collection string, id string) ([]byte, error) {
	// initialize a readable transaction.
	tx, err := bs.client.Begin(false)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result := tx.Bucket([]byte(collection)).Get([]byte(id))
	if result == nil {
		return nil, fmt.Errorf("record %s not found in %s archive", id, collection)
	}
	payload := make([]byte, len(result))
	copy(payload, result)
	return payload, nil
}
