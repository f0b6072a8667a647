package main

import "context"

// Book represents a book entity of the store inventory.
type Book struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Genre         string  `json:"genre"`
	PublishedYear int     `json:"publishedYear"`
	Price         float64 `json:"price"`
	CreatedAt     string  `json:"createdAt"`
}

// BookStorage defines possible operations on book entity.
// Books are never updated nor deleted once recorded.
type BookStorage interface {
	Add(ctx context.Context, id string, book Book) error
	AddMany(ctx context.Context, books map[string]Book) error
	GetOne(ctx context.Context, id string) (Book, error)
	GetAll(ctx context.Context) ([]Book, error)
	Count(ctx context.Context) (int64, error)
}
