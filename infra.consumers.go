package main

import (
	"context"

	"go.uber.org/zap"
)

type Consumer interface {
	Consume(ctx context.Context, qids ...string) error
}

type boltDBConsumer struct {
	logger  *zap.Logger
	queue   Queuer
	archive ArchiveStorage
}

func NewBoltDBConsumer(logger *zap.Logger, q Queuer, archive ArchiveStorage) Consumer {
	return &boltDBConsumer{logger, q, archive}
}

// Consume drains creation events from the given queues and mirrors
// each record into the matching archive bucket. It only returns once
// the context is done.
func (bc *boltDBConsumer) Consume(ctx context.Context, qids ...string) error {
	var event Event
	var err error
	var qid string
	for {
		qid, event, err = bc.queue.Pop(ctx, qids...)
		if err != nil && ctx.Err() != nil {
			bc.logger.Info("consumer: queue pop call: context is done: exit", zap.String("reason", ctx.Err().Error()))
			return nil
		}

		if err != nil {
			bc.logger.Error("consumer: error on queue pop call", zap.Error(err))
			continue
		}

		var collection string
		switch qid {
		case BooksQueue:
			collection = HBooks
		case CustomersQueue:
			collection = HCustomers
		case OrdersQueue:
			collection = HOrders
		default:
			bc.logger.Warn("consumer: received event on unknown queue id", zap.String("qid", qid), zap.String("event.id", event.ID))
			continue
		}

		if err = bc.archive.Put(ctx, collection, event.ID, event.Payload); err != nil {
			bc.logger.Error("consumer: failed to archive record",
				zap.String("collection", collection),
				zap.String("event.id", event.ID),
				zap.Error(err),
			)
		}
	}
}
