package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// TestSeederRun ensures empty collections receive the sample records
// through one single bulk insertion per collection.
func TestSeederRun(t *testing.T) {
	var bookBatches []map[string]Book
	var customerBatches []map[string]Customer

	books := &MockBookStorage{
		CountFunc: func(ctx context.Context) (int64, error) {
			return 0, nil
		},
		AddManyFunc: func(ctx context.Context, batch map[string]Book) error {
			bookBatches = append(bookBatches, batch)
			return nil
		},
	}
	customers := &MockCustomerStorage{
		CountFunc: func(ctx context.Context) (int64, error) {
			return 0, nil
		},
		AddManyFunc: func(ctx context.Context, batch map[string]Customer) error {
			customerBatches = append(customerBatches, batch)
			return nil
		},
	}

	seeder := NewSeeder(zap.NewNop(), NewMockClocker(), NewIDsHandler(), books, customers)
	seeder.Run(context.Background())

	assert.Equal(t, 1, len(bookBatches))
	assert.Equal(t, 2, len(bookBatches[0]))
	for id, book := range bookBatches[0] {
		assert.True(t, strings.HasPrefix(id, BookIDPrefix+":"))
		assert.Equal(t, id, book.ID)
		assert.NotEmpty(t, book.Title)
		assert.NotEmpty(t, book.CreatedAt)
		assert.Greater(t, book.Price, 0.0)
	}

	assert.Equal(t, 1, len(customerBatches))
	assert.Equal(t, 2, len(customerBatches[0]))
	for id, customer := range customerBatches[0] {
		assert.True(t, strings.HasPrefix(id, CustomerIDPrefix+":"))
		assert.Equal(t, id, customer.ID)
		assert.NotEmpty(t, customer.Email)
		assert.NotEmpty(t, customer.CreatedAt)
	}
}

// TestSeederRunSkipsNonEmpty ensures collections already holding
// records are left untouched so restarts do not duplicate samples.
func TestSeederRunSkipsNonEmpty(t *testing.T) {
	books := &MockBookStorage{
		CountFunc: func(ctx context.Context) (int64, error) {
			return 2, nil
		},
		AddManyFunc: func(ctx context.Context, batch map[string]Book) error {
			t.Error("books insertion should not happen")
			return nil
		},
	}
	customers := &MockCustomerStorage{
		CountFunc: func(ctx context.Context) (int64, error) {
			return 2, nil
		},
		AddManyFunc: func(ctx context.Context, batch map[string]Customer) error {
			t.Error("customers insertion should not happen")
			return nil
		},
	}

	seeder := NewSeeder(zap.NewNop(), NewMockClocker(), NewIDsHandler(), books, customers)
	seeder.Run(context.Background())
}

// TestSeederRunFailures ensures one collection failure does not abort the other.
func TestSeederRunFailures(t *testing.T) {
	customersSeeded := false
	books := &MockBookStorage{
		CountFunc: func(ctx context.Context) (int64, error) {
			return 0, errors.New("connection lost")
		},
	}
	customers := &MockCustomerStorage{
		CountFunc: func(ctx context.Context) (int64, error) {
			return 0, nil
		},
		AddManyFunc: func(ctx context.Context, batch map[string]Customer) error {
			customersSeeded = true
			return nil
		},
	}

	seeder := NewSeeder(zap.NewNop(), NewMockClocker(), NewIDsHandler(), books, customers)
	seeder.Run(context.Background())
	assert.True(t, customersSeeded)
}

// TestSampleData ensures the seed fixtures stay stable.
func TestSampleData(t *testing.T) {
	books := SampleBooks()
	assert.Equal(t, 2, len(books))
	assert.Equal(t, "Book 1", books[0].Title)
	assert.Equal(t, 15.99, books[0].Price)
	assert.Equal(t, "Non-Fiction", books[1].Genre)

	customers := SampleCustomers()
	assert.Equal(t, 2, len(customers))
	assert.Equal(t, "Gold", customers[0].Membership)
	assert.Equal(t, "customer2@bookstore.io", customers[1].Email)
}
