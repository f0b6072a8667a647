package main

import "context"

// Customer represents a customer entity. The membership field is
// free-form text ("Gold", "Silver", ...), not an enumerated set.
type Customer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Membership string `json:"membership"`
	CreatedAt  string `json:"createdAt"`
}

// CustomerStorage defines possible operations on customer entity.
type CustomerStorage interface {
	Add(ctx context.Context, id string, customer Customer) error
	AddMany(ctx context.Context, customers map[string]Customer) error
	GetOne(ctx context.Context, id string) (Customer, error)
	GetAll(ctx context.Context) ([]Customer, error)
	Count(ctx context.Context) (int64, error)
}
