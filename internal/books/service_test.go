package books_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houzifahabbo/book-store/internal/books"
	"github.com/houzifahabbo/book-store/internal/platform/apperr"
)

// fakeRepository is an in-memory Repository that preserves insertion order
// for ListBooks.
type fakeRepository struct {
	order []string
	byID  map[string]*books.Book
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[string]*books.Book)}
}

func (repository *fakeRepository) ListBooks(ctx context.Context) ([]*books.Book, error) {
	result := make([]*books.Book, 0, len(repository.order))
	for _, id := range repository.order {
		result = append(result, repository.byID[id])
	}
	return result, nil
}

func (repository *fakeRepository) GetBook(ctx context.Context, id string) (*books.Book, error) {
	book, ok := repository.byID[id]
	if !ok {
		return nil, apperr.NotFoundMessage("No book found")
	}
	return book, nil
}

func (repository *fakeRepository) CreateBook(ctx context.Context, book *books.Book) error {
	repository.order = append(repository.order, book.ID)
	repository.byID[book.ID] = book
	return nil
}

func (repository *fakeRepository) UpdateBook(ctx context.Context, book *books.Book) error {
	if _, ok := repository.byID[book.ID]; !ok {
		return apperr.NotFoundMessage("No book found")
	}
	repository.byID[book.ID] = book
	return nil
}

func (repository *fakeRepository) DeleteBook(ctx context.Context, id string) error {
	if _, ok := repository.byID[id]; !ok {
		return apperr.NotFoundMessage("No book found")
	}
	delete(repository.byID, id)
	for i, existing := range repository.order {
		if existing == id {
			repository.order = append(repository.order[:i], repository.order[i+1:]...)
			break
		}
	}
	return nil
}

func newTestService() (*books.Service, *fakeRepository) {
	repository := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return books.NewService(repository, logger), repository
}

func validInput() books.BookInput {
	return books.BookInput{
		Title:     "The Go Programming Language",
		Author:    "Donovan & Kernighan",
		Published: "2015-10-26",
		Pages:     380,
		Price:     32.99,
	}
}

func TestService_CreateBook(t *testing.T) {
	service, repository := newTestService()

	book, err := service.CreateBook(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, book.ID)
	assert.Equal(t, "The Go Programming Language", book.Title)
	assert.Equal(t, "Donovan & Kernighan", book.Author)
	assert.Equal(t, 2015, book.Published.Year())
	assert.Equal(t, 380, book.Pages)
	assert.InDelta(t, 32.99, book.Price, 0.001)
	assert.Equal(t, "owner-1", book.OwnerID)

	fetched, err := service.GetBook(context.Background(), book.ID)
	require.NoError(t, err)
	assert.Equal(t, book, fetched)
	assert.Len(t, repository.byID, 1)
}

func TestService_CreateBook_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(input *books.BookInput)
	}{
		{name: "missing title", mutate: func(input *books.BookInput) { input.Title = "" }},
		{name: "missing author", mutate: func(input *books.BookInput) { input.Author = "" }},
		{name: "bad date", mutate: func(input *books.BookInput) { input.Published = "26-10-2015" }},
		{name: "zero pages", mutate: func(input *books.BookInput) { input.Pages = 0 }},
		{name: "negative pages", mutate: func(input *books.BookInput) { input.Pages = -5 }},
		{name: "zero price", mutate: func(input *books.BookInput) { input.Price = 0 }},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service, repository := newTestService()

			input := validInput()
			testCase.mutate(&input)

			book, err := service.CreateBook(context.Background(), "owner-1", input)
			require.Error(t, err)
			assert.Nil(t, book)
			assert.Empty(t, repository.byID, "invalid input must not persist")

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, 400, appError.HTTPStatus)
		})
	}
}

func TestService_UpdateBook(t *testing.T) {
	service, _ := newTestService()

	book, err := service.CreateBook(context.Background(), "owner-1", validInput())
	require.NoError(t, err)
	createdAt := book.CreatedAt

	input := validInput()
	input.Title = "Updated Title"
	input.Price = 19.99

	updated, err := service.UpdateBook(context.Background(), book, input)
	require.NoError(t, err)

	assert.Equal(t, book.ID, updated.ID)
	assert.Equal(t, "Updated Title", updated.Title)
	assert.InDelta(t, 19.99, updated.Price, 0.001)
	// Ownership and creation time survive updates.
	assert.Equal(t, "owner-1", updated.OwnerID)
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(createdAt))
}

func TestService_DeleteBook(t *testing.T) {
	service, repository := newTestService()

	book, err := service.CreateBook(context.Background(), "owner-1", validInput())
	require.NoError(t, err)

	require.NoError(t, service.DeleteBook(context.Background(), book.ID))
	assert.Empty(t, repository.byID)

	err = service.DeleteBook(context.Background(), book.ID)
	require.Error(t, err)
	assert.Equal(t, "No book found", err.Error())
}

func TestService_ListBooks_Order(t *testing.T) {
	service, _ := newTestService()

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		input := validInput()
		input.Title = title
		_, err := service.CreateBook(context.Background(), "owner-1", input)
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	listed, err := service.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i, title := range titles {
		assert.Equal(t, title, listed[i].Title)
	}
}
