package main

import (
	"context"

	"go.uber.org/zap"
)

// Seeder inserts a fixed batch of sample books and customers at startup.
// Each collection is seeded with a single bulk call, and only when that
// collection is still empty so restarts do not duplicate the samples.
type Seeder struct {
	logger    *zap.Logger
	clock     Clocker
	ids       UIDHandler
	books     BookStorage
	customers CustomerStorage
}

func NewSeeder(logger *zap.Logger, clock Clocker, ids UIDHandler, books BookStorage, customers CustomerStorage) *Seeder {
	return &Seeder{
		logger:    logger,
		clock:     clock,
		ids:       ids,
		books:     books,
		customers: customers,
	}
}

// SampleBooks returns the fixed list of books used as seed data.
func SampleBooks() []Book {
	return []Book{
		{Title: "Book 1", Author: "Author 1", Genre: "Fiction", PublishedYear: 2001, Price: 15.99},
		{Title: "Book 2", Author: "Author 2", Genre: "Non-Fiction", PublishedYear: 2010, Price: 22.50},
	}
}

// SampleCustomers returns the fixed list of customers used as seed data.
func SampleCustomers() []Customer {
	return []Customer{
		{Name: "Customer 1", Email: "customer1@bookstore.io", Membership: "Gold"},
		{Name: "Customer 2", Email: "customer2@bookstore.io", Membership: "Silver"},
	}
}

// Run seeds both collections. Failures are logged and never abort the
// startup sequence, the api just serves whatever made it into the store.
func (s *Seeder) Run(ctx context.Context) {
	if err := s.seedBooks(ctx); err != nil {
		s.logger.Error("seeder: failed to seed books", zap.Error(err))
	}
	if err := s.seedCustomers(ctx); err != nil {
		s.logger.Error("seeder: failed to seed customers", zap.Error(err))
	}
}

func (s *Seeder) seedBooks(ctx context.Context) error {
	count, err := s.books.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("seeder: books collection not empty, skipping", zap.Int64("count", count))
		return nil
	}

	now := s.clock.Now().UTC().String()
	batch := make(map[string]Book)
	for _, book := range SampleBooks() {
		book.ID = s.ids.Generate(BookIDPrefix)
		book.CreatedAt = now
		batch[book.ID] = book
	}
	if err = s.books.AddMany(ctx, batch); err != nil {
		return err
	}
	s.logger.Info("seeder: books seeded", zap.Int("count", len(batch)))
	return nil
}

func (s *Seeder) seedCustomers(ctx context.Context) error {
	count, err := s.customers.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("seeder: customers collection not empty, skipping", zap.Int64("count", count))
		return nil
	}

	now := s.clock.Now().UTC().String()
	batch := make(map[string]Customer)
	for _, customer := range SampleCustomers() {
		customer.ID = s.ids.Generate(CustomerIDPrefix)
		customer.CreatedAt = now
		batch[customer.ID] = customer
	}
	if err = s.customers.AddMany(ctx, batch); err != nil {
		return err
	}
	s.logger.Info("seeder: customers seeded", zap.Int("count", len(batch)))
	return nil
}
