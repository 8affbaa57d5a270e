package books

import "context"

// Repository defines the data access contract for book records.
//
// Every method is a single atomic row operation; no multi-row transactions
// are used or required. Concurrent updates are last-write-wins.
type Repository interface {
	ListBooks(context context.Context) ([]*Book, error)
	GetBook(context context.Context, id string) (*Book, error)
	CreateBook(context context.Context, book *Book) error
	UpdateBook(context context.Context, book *Book) error
	DeleteBook(context context.Context, id string) error
}
