package books

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/houzifahabbo/book-store/internal/platform/apperr"
)

// PostgresBookRepository implements [Repository] using pgx.
type PostgresBookRepository struct {
	pool *pgxpool.Pool
}

// NewBookRepository creates a new PostgreSQL implementation of the [Repository].
func NewBookRepository(pool *pgxpool.Pool) *PostgresBookRepository {
	return &PostgresBookRepository{pool: pool}
}

const bookColumns = `id, title, author, published, pages, price, ownerid, createdat, updatedat`

func scanBook(row pgx.Row) (*Book, error) {
	book := &Book{}
	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Published.Time,
		&book.Pages,
		&book.Price,
		&book.OwnerID,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return book, nil
}

func (repository *PostgresBookRepository) ListBooks(context context.Context) ([]*Book, error) {
	query := `SELECT ` + bookColumns + ` FROM book ORDER BY createdat`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_book_repo_list_failed: %w", err)
	}
	defer rows.Close()

	// An empty catalogue is a valid result, not an error.
	books := []*Book{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_book_repo_scan_failed: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_book_repo_list_failed: %w", err)
	}

	return books, nil
}

func (repository *PostgresBookRepository) GetBook(context context.Context, id string) (*Book, error) {
	query := `SELECT ` + bookColumns + ` FROM book WHERE id = $1`

	book, err := scanBook(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundMessage("No book found")
		}
		return nil, fmt.Errorf("postgres_book_repo_get_failed: %w", err)
	}

	return book, nil
}

func (repository *PostgresBookRepository) CreateBook(context context.Context, book *Book) error {
	const query = `
		INSERT INTO book (id, title, author, published, pages, price, ownerid, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := repository.pool.Exec(context, query,
		book.ID,
		book.Title,
		book.Author,
		book.Published.Time,
		book.Pages,
		book.Price,
		book.OwnerID,
		book.CreatedAt,
		book.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_book_repo_create_failed: %w", err)
	}

	return nil
}

func (repository *PostgresBookRepository) UpdateBook(context context.Context, book *Book) error {
	// The owner column is deliberately absent: ownership is set once at
	// creation and never reassigned.
	const query = `
		UPDATE book
		SET title = $2, author = $3, published = $4, pages = $5, price = $6, updatedat = $7
		WHERE id = $1`

	tag, err := repository.pool.Exec(context, query,
		book.ID,
		book.Title,
		book.Author,
		book.Published.Time,
		book.Pages,
		book.Price,
		book.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_book_repo_update_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFoundMessage("No book found")
	}

	return nil
}

func (repository *PostgresBookRepository) DeleteBook(context context.Context, id string) error {
	const query = `DELETE FROM book WHERE id = $1`

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_book_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFoundMessage("No book found")
	}

	return nil
}
