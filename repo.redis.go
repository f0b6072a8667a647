package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis hashes acting as collections.
const (
	HBooks     string = "books"
	HCustomers string = "customers"
	HOrders    string = "orders"
)

// GetRedisClient provides a ready to use redis client.
func GetRedisClient(config *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", config.Redis.Host, config.Redis.Port),
		DialTimeout:  config.Redis.DialTimeout,
		ReadTimeout:  config.Redis.ReadTimeout,
		WriteTimeout: config.Redis.WriteTimeout,
		PoolSize:     config.Redis.PoolSize,
		PoolTimeout:  config.Redis.PoolTimeout,
		Password:     config.Redis.Password,
		Username:     config.Redis.Username,
		DB:           config.Redis.DatabaseIndex,
	})

	// test connection.
	if pong, err := client.Ping(context.Background()).Result(); pong != "PONG" || err != nil {
		return client, fmt.Errorf("test connection failed: %v", err)
	}
	return client, nil
}

type redisBookStorage struct {
	logger *zap.Logger
	client *redis.Client
}

// NewRedisBookStorage provides an instance of redis-based book storage.
func NewRedisBookStorage(logger *zap.Logger, client *redis.Client) BookStorage {
	return &redisBookStorage{
		logger: logger,
		client: client,
	}
}

// Add inserts a new book record.
func (rs *redisBookStorage) Add(ctx context.Context, id string, book Book) error {
	bookBytes, err := json.Marshal(book)
	if err != nil {
		return err
	}
	return rs.client.HSet(ctx, HBooks, id, bookBytes).Err()
}

// AddMany inserts a batch of book records with a single bulk call.
func (rs *redisBookStorage) AddMany(ctx context.Context, books map[string]Book) error {
	pairs := make([]interface{}, 0, 2*len(books))
	for id, book := range books {
		bookBytes, err := json.Marshal(book)
		if err != nil {
			return err
		}
		pairs = append(pairs, id, bookBytes)
	}
	return rs.client.HSet(ctx, HBooks, pairs...).Err()
}

// GetOne retrieves a book record based on its ID.
func (rs *redisBookStorage) GetOne(ctx context.Context, id string) (Book, error) {
	var book Book
	bookJSONString, err := rs.client.HGet(ctx, HBooks, id).Result()
	if err == redis.Nil {
		return book, ErrBookNotFound
	}
	if err != nil {
		return book, err
	}
	err = json.Unmarshal([]byte(bookJSONString), &book)
	return book, err
}

// GetAll retrieves a list of all books stored in the redis database.
func (rs *redisBookStorage) GetAll(ctx context.Context) ([]Book, error) {
	mapBooks, err := rs.client.HVals(ctx, HBooks).Result()
	if err != nil {
		return nil, err
	}
	books := []Book{}
	for _, bookJSONString := range mapBooks {
		var book Book
		if err = json.Unmarshal([]byte(bookJSONString), &book); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// Count returns the number of book records in the collection.
func (rs *redisBookStorage) Count(ctx context.Context) (int64, error) {
	return rs.client.HLen(ctx, HBooks).Result()
}

type redisCustomerStorage struct {
	logger *zap.Logger
	client *redis.Client
}

// NewRedisCustomerStorage provides an instance of redis-based customer storage.
func NewRedisCustomerStorage(logger *zap.Logger, client *redis.Client) CustomerStorage {
	return &redisCustomerStorage{
		logger: logger,
		client: client,
	}
}

// Add inserts a new customer record.
func (rs *redisCustomerStorage) Add(ctx context.Context, id string, customer Customer) error {
	customerBytes, err := json.Marshal(customer)
	if err != nil {
		return err
	}
	return rs.client.HSet(ctx, HCustomers, id, customerBytes).Err()
}

// AddMany inserts a batch of customer records with a single bulk call.
func (rs *redisCustomerStorage) AddMany(ctx context.Context, customers map[string]Customer) error {
	pairs := make([]interface{}, 0, 2*len(customers))
	for id, customer := range customers {
		customerBytes, err := json.Marshal(customer)
		if err != nil {
			return err
		}
		pairs = append(pairs, id, customerBytes)
	}
	return rs.client.HSet(ctx, HCustomers, pairs...).Err()
}

// GetOne retrieves a customer record based on its ID.
func (rs *redisCustomerStorage) GetOne(ctx context.Context, id string) (Customer, error) {
	var customer Customer
	customerJSONString, err := rs.client.HGet(ctx, HCustomers, id).Result()
	if err == redis.Nil {
		return customer, ErrCustomerNotFound
	}
	if err != nil {
		return customer, err
	}
	err = json.Unmarshal([]byte(customerJSONString), &customer)
	return customer, err
}

// GetAll retrieves a list of all customers stored in the redis database.
func (rs *redisCustomerStorage) GetAll(ctx context.Context) ([]Customer, error) {
	mapCustomers, err := rs.client.HVals(ctx, HCustomers).Result()
	if err != nil {
		return nil, err
	}
	customers := []Customer{}
	for _, customerJSONString := range mapCustomers {
		var customer Customer
		if err = json.Unmarshal([]byte(customerJSONString), &customer); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

// Count returns the number of customer records in the collection.
func (rs *redisCustomerStorage) Count(ctx context.Context) (int64, error) {
	return rs.client.HLen(ctx, HCustomers).Result()
}

type redisOrderStorage struct {
	logger *zap.Logger
	client *redis.Client
}

// NewRedisOrderStorage provides an instance of redis-based order storage.
func NewRedisOrderStorage(logger *zap.Logger, client *redis.Client) OrderStorage {
	return &redisOrderStorage{
		logger: logger,
		client: client,
	}
}

// Add inserts a new order record. Orders are immutable once recorded.
func (rs *redisOrderStorage) Add(ctx context.Context, id string, order Order) error {
	orderBytes, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return rs.client.HSet(ctx, HOrders, id, orderBytes).Err()
}
