package main

import "context"

// Order records a purchase linking one book and one customer by their ids.
// The total is derived at creation time from the book price and the quantity.
// Orders are immutable and have no read endpoint on the api.
type Order struct {
	ID         string  `json:"id"`
	BookID     string  `json:"book"`
	CustomerID string  `json:"customer"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
	CreatedAt  string  `json:"createdAt"`
}

// OrderStorage defines possible operations on order entity.
type OrderStorage interface {
	Add(ctx context.Context, id string, order Order) error
}
