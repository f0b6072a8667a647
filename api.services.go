package main

import (
	"context"

	"go.uber.org/zap"
)

type BookServiceProvider interface {
	Add(ctx context.Context, id string, book Book) error
	GetOne(ctx context.Context, id string) (Book, error)
	GetAll(ctx context.Context) ([]Book, error)
}

type BookService struct {
	logger  *zap.Logger
	config  *Config
	storage BookStorage
	queue   Queuer
}

func NewBookService(logger *zap.Logger, config *Config, storage BookStorage, queue Queuer) BookServiceProvider {
	return &BookService{
		logger:  logger,
		config:  config,
		storage: storage,
		queue:   queue,
	}
}

func (bs *BookService) Add(ctx context.Context, id string, book Book) error {
	if err := bs.storage.Add(ctx, id, book); err != nil {
		return err
	}
	if err := bs.queue.Push(ctx, BooksQueue, id, book); err != nil {
		bs.logger.Error("service: failed to push book to queue", zap.String("qid", BooksQueue), zap.Error(err))
	}
	return nil
}

func (bs *BookService) GetOne(ctx context.Context, id string) (Book, error) {
	book, err := bs.storage.GetOne(ctx, id)
	return book, err
}

func (bs *BookService) GetAll(ctx context.Context) ([]Book, error) {
	books, err := bs.storage.GetAll(ctx)
	return books, err
}

type CustomerServiceProvider interface {
	Add(ctx context.Context, id string, customer Customer) error
	GetOne(ctx context.Context, id string) (Customer, error)
	GetAll(ctx context.Context) ([]Customer, error)
}

type CustomerService struct {
	logger  *zap.Logger
	config  *Config
	storage CustomerStorage
	queue   Queuer
}

func NewCustomerService(logger *zap.Logger, config *Config, storage CustomerStorage, queue Queuer) CustomerServiceProvider {
	return &CustomerService{
		logger:  logger,
		config:  config,
		storage: storage,
		queue:   queue,
	}
}

func (cs *CustomerService) Add(ctx context.Context, id string, customer Customer) error {
	if err := cs.storage.Add(ctx, id, customer); err != nil {
		return err
	}
	if err := cs.queue.Push(ctx, CustomersQueue, id, customer); err != nil {
		cs.logger.Error("service: failed to push customer to queue", zap.String("qid", CustomersQueue), zap.Error(err))
	}
	return nil
}

func (cs *CustomerService) GetOne(ctx context.Context, id string) (Customer, error) {
	customer, err := cs.storage.GetOne(ctx, id)
	return customer, err
}

func (cs *CustomerService) GetAll(ctx context.Context) ([]Customer, error) {
	customers, err := cs.storage.GetAll(ctx)
	return customers, err
}

type OrderServiceProvider interface {
	Create(ctx context.Context, id string, req CreateOrderRequest, createdAt string) (Order, error)
}

type OrderService struct {
	logger    *zap.Logger
	config    *Config
	storage   OrderStorage
	books     BookStorage
	customers CustomerStorage
	queue     Queuer
}

func NewOrderService(logger *zap.Logger, config *Config, storage OrderStorage, books BookStorage, customers CustomerStorage, queue Queuer) OrderServiceProvider {
	return &OrderService{
		logger:    logger,
		config:    config,
		storage:   storage,
		books:     books,
		customers: customers,
		queue:     queue,
	}
}

// Create records a purchase. The book and customer lookups are two
// independent point reads with no cross-operation isolation, so a
// concurrent mutation between the lookups and the insert is possible.
// The sentinel not-found errors are returned untouched so the handler
// can map them to a 404.
func (os *OrderService) Create(ctx context.Context, id string, req CreateOrderRequest, createdAt string) (Order, error) {
	var order Order

	book, err := os.books.GetOne(ctx, req.BookID)
	if err != nil {
		return order, err
	}

	_, err = os.customers.GetOne(ctx, req.CustomerID)
	if err != nil {
		return order, err
	}

	order = Order{
		ID:         id,
		BookID:     req.BookID,
		CustomerID: req.CustomerID,
		Quantity:   req.Quantity,
		Total:      book.Price * float64(req.Quantity),
		CreatedAt:  createdAt,
	}

	if err = os.storage.Add(ctx, id, order); err != nil {
		return order, err
	}
	if err = os.queue.Push(ctx, OrdersQueue, id, order); err != nil {
		os.logger.Error("service: failed to push order to queue", zap.String("qid", OrdersQueue), zap.Error(err))
	}
	return order, nil
}
