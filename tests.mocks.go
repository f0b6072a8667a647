package main

import (
	"context"
	"time"
)

// This file contains mocks definitions needed to perform unit tests.

type MockBookStorage struct {
	AddFunc     func(ctx context.Context, id string, book Book) error
	AddManyFunc func(ctx context.Context, books map[string]Book) error
	GetOneFunc  func(ctx context.Context, id string) (Book, error)
	GetAllFunc  func(ctx context.Context) ([]Book, error)
	CountFunc   func(ctx context.Context) (int64, error)
}

// Add mocks the behavior of book creation by the repository.
func (m *MockBookStorage) Add(ctx context.Context, id string, book Book) error {
	return m.AddFunc(ctx, id, book)
}

// AddMany mocks the behavior of bulk book insertion by the repository.
func (m *MockBookStorage) AddMany(ctx context.Context, books map[string]Book) error {
	return m.AddManyFunc(ctx, books)
}

// GetOne mocks the behavior of retrieving a book by the repository.
func (m *MockBookStorage) GetOne(ctx context.Context, id string) (Book, error) {
	return m.GetOneFunc(ctx, id)
}

// GetAll mocks the behavior of retrieving all books by the repository.
func (m *MockBookStorage) GetAll(ctx context.Context) ([]Book, error) {
	return m.GetAllFunc(ctx)
}

// Count mocks the behavior of counting books by the repository.
func (m *MockBookStorage) Count(ctx context.Context) (int64, error) {
	return m.CountFunc(ctx)
}

type MockCustomerStorage struct {
	AddFunc     func(ctx context.Context, id string, customer Customer) error
	AddManyFunc func(ctx context.Context, customers map[string]Customer) error
	GetOneFunc  func(ctx context.Context, id string) (Customer, error)
	GetAllFunc  func(ctx context.Context) ([]Customer, error)
	CountFunc   func(ctx context.Context) (int64, error)
}

// Add mocks the behavior of customer creation by the repository.
func (m *MockCustomerStorage) Add(ctx context.Context, id string, customer Customer) error {
	return m.AddFunc(ctx, id, customer)
}

// AddMany mocks the behavior of bulk customer insertion by the repository.
func (m *MockCustomerStorage) AddMany(ctx context.Context, customers map[string]Customer) error {
	return m.AddManyFunc(ctx, customers)
}

// GetOne mocks the behavior of retrieving a customer by the repository.
func (m *MockCustomerStorage) GetOne(ctx context.Context, id string) (Customer, error) {
	return m.GetOneFunc(ctx, id)
}

// GetAll mocks the behavior of retrieving all customers by the repository.
func (m *MockCustomerStorage) GetAll(ctx context.Context) ([]Customer, error) {
	return m.GetAllFunc(ctx)
}

// Count mocks the behavior of counting customers by the repository.
func (m *MockCustomerStorage) Count(ctx context.Context) (int64, error) {
	return m.CountFunc(ctx)
}

type MockOrderStorage struct {
	AddFunc func(ctx context.Context, id string, order Order) error
}

// Add mocks the behavior of order creation by the repository.
func (m *MockOrderStorage) Add(ctx context.Context, id string, order Order) error {
	return m.AddFunc(ctx, id, order)
}

// MockQueuer implements a fake Queuer. Pushed events are recorded
// for inspection and Pop serves them back in order.
type MockQueuer struct {
	Pushed []Event
	Queues []string
	PopErr error
}

// Push records the event instead of enqueueing it.
func (m *MockQueuer) Push(_ context.Context, qid string, id string, _ interface{}) error {
	m.Pushed = append(m.Pushed, Event{ID: id})
	m.Queues = append(m.Queues, qid)
	return nil
}

// Pop replays the first recorded event.
func (m *MockQueuer) Pop(_ context.Context, _ ...string) (string, Event, error) {
	if m.PopErr != nil {
		return "", Event{}, m.PopErr
	}
	if len(m.Pushed) == 0 {
		return "", Event{}, nil
	}
	event, qid := m.Pushed[0], m.Queues[0]
	m.Pushed, m.Queues = m.Pushed[1:], m.Queues[1:]
	return qid, event, nil
}

// MockClocker implements a fake Clocker.
type MockClocker struct {
	MockNow time.Time
}

// NewMockClocker returns a mocked instance with fixed time.
func NewMockClocker() *MockClocker {
	return &MockClocker{time.Date(2023, 0o7, 0o2, 0o0, 0o0, 0o0, 0o00000000, time.UTC)}
}

// Now returns an already defined time to be used as mock. This
// equals to `Sun, 02 Jul 2023 00:00:00 UTC` in time.RFC1123 format.
// equals to `2023-07-02 00:00:00 +0000 UTC` in String format.
func (mck *MockClocker) Now() time.Time {
	return mck.MockNow
}

// MockUIDHandler implements a fake UIDHandler.
type MockUIDHandler struct {
	MockedUID string
	Valid     bool
}

// NewMockUIDHandler returns a mocked instance with predictable id.
func NewMockUIDHandler(id string, valid bool) *MockUIDHandler {
	return &MockUIDHandler{MockedUID: id, Valid: valid}
}

// Generate constructs a predictable id to be used as mock.
func (muid *MockUIDHandler) Generate(prefix string) string {
	return prefix + ":" + muid.MockedUID
}

// IsValid mocks IsValid behavior by providing configured status.
func (muid *MockUIDHandler) IsValid(_, _ string) bool {
	return muid.Valid
}
