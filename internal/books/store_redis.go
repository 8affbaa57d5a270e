package books

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/houzifahabbo/book-store/internal/platform/constants"
	"github.com/houzifahabbo/book-store/internal/platform/ctxutil"
)

// CachedBookRepository is a read-through cache decorator around a [Repository].
//
// List and detail reads are served from Redis when warm; every mutation
// invalidates the affected keys eagerly, with the TTL as a staleness
// backstop. Cache failures are logged and degrade to the inner repository —
// Redis being down must never fail a request.
type CachedBookRepository struct {
	inner  Repository
	client *redis.Client
}

// NewCachedBookRepository wraps the given repository with a Redis read cache.
func NewCachedBookRepository(inner Repository, client *redis.Client) *CachedBookRepository {
	return &CachedBookRepository{inner: inner, client: client}
}

func (repository *CachedBookRepository) ListBooks(context context.Context) ([]*Book, error) {
	cached, err := repository.client.Get(context, constants.RedisKeyBookList).Bytes()
	if err == nil {
		var books []*Book
		if err := json.Unmarshal(cached, &books); err == nil {
			return books, nil
		}
		// Undecodable entry: drop it and fall through to the source of truth.
		repository.invalidate(context, constants.RedisKeyBookList)
	}

	books, err := repository.inner.ListBooks(context)
	if err != nil {
		return nil, err
	}

	repository.store(context, constants.RedisKeyBookList, books)
	return books, nil
}

func (repository *CachedBookRepository) GetBook(context context.Context, id string) (*Book, error) {
	key := constants.RedisPrefixBook + id

	cached, err := repository.client.Get(context, key).Bytes()
	if err == nil {
		book := &Book{}
		if err := json.Unmarshal(cached, book); err == nil {
			return book, nil
		}
		repository.invalidate(context, key)
	}

	book, err := repository.inner.GetBook(context, id)
	if err != nil {
		return nil, err
	}

	repository.store(context, key, book)
	return book, nil
}

func (repository *CachedBookRepository) CreateBook(context context.Context, book *Book) error {
	if err := repository.inner.CreateBook(context, book); err != nil {
		return err
	}
	repository.invalidate(context, constants.RedisKeyBookList)
	return nil
}

func (repository *CachedBookRepository) UpdateBook(context context.Context, book *Book) error {
	if err := repository.inner.UpdateBook(context, book); err != nil {
		return err
	}
	repository.invalidate(context, constants.RedisKeyBookList, constants.RedisPrefixBook+book.ID)
	return nil
}

func (repository *CachedBookRepository) DeleteBook(context context.Context, id string) error {
	if err := repository.inner.DeleteBook(context, id); err != nil {
		return err
	}
	repository.invalidate(context, constants.RedisKeyBookList, constants.RedisPrefixBook+id)
	return nil
}

// store writes a cache entry, logging and swallowing any failure.
func (repository *CachedBookRepository) store(context context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := repository.client.Set(context, key, payload, constants.BookCacheTTL).Err(); err != nil {
		ctxutil.GetLogger(context).Warn("book_cache_store_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// invalidate removes cache entries, logging and swallowing any failure.
func (repository *CachedBookRepository) invalidate(context context.Context, keys ...string) {
	if err := repository.client.Del(context, keys...).Err(); err != nil {
		ctxutil.GetLogger(context).Warn("book_cache_invalidate_failed",
			slog.Any("error", err),
		)
	}
}
