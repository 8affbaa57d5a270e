package books

import (
	"context"
	"log/slog"
	"time"

	"github.com/houzifahabbo/book-store/internal/platform/validate"
	"github.com/houzifahabbo/book-store/pkg/uuid"
)

// Service implements the book catalogue use cases. Ownership enforcement
// lives in the HTTP gate chain; the service assumes its callers have already
// authorized the mutation.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// BookInput carries the submitted fields for a create or update. Published
// is a YYYY-MM-DD calendar date; all fields are required.
type BookInput struct {
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Published string  `json:"published"`
	Pages     int     `json:"pages"`
	Price     float64 `json:"price"`
}

func (input BookInput) validate() (time.Time, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 300).
		Required(FieldAuthor, input.Author).
		MaxLen(FieldAuthor, input.Author, 200).
		Required(FieldPublished, input.Published).
		Date(FieldPublished, input.Published).
		Positive(FieldPages, input.Pages).
		PositiveNumber(FieldPrice, input.Price)

	if err := validator.Err(); err != nil {
		return time.Time{}, err
	}

	published, err := time.Parse(time.DateOnly, input.Published)
	if err != nil {
		// Unreachable after the Date rule, kept as a guard.
		return time.Time{}, validate.RequiredError(FieldPublished, "Must be a valid date (YYYY-MM-DD)")
	}

	return published, nil
}

func (service *Service) ListBooks(context context.Context) ([]*Book, error) {
	return service.repo.ListBooks(context)
}

func (service *Service) GetBook(context context.Context, id string) (*Book, error) {
	return service.repo.GetBook(context, id)
}

// CreateBook validates the input and persists a new book owned by ownerID.
// The owner reference is set here, once, from the authenticated requester.
func (service *Service) CreateBook(context context.Context, ownerID string, input BookInput) (*Book, error) {
	published, err := input.validate()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	book := &Book{
		ID:        uuid.New(),
		Title:     input.Title,
		Author:    input.Author,
		Published: Date{Time: published},
		Pages:     input.Pages,
		Price:     input.Price,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := service.repo.CreateBook(context, book); err != nil {
		return nil, err
	}

	service.logger.Info("book_created",
		slog.String("book_id", book.ID),
		slog.String("owner_id", ownerID),
	)
	return book, nil
}

// UpdateBook validates the input and applies it to an already-fetched book.
// The owner reference is never touched.
func (service *Service) UpdateBook(context context.Context, book *Book, input BookInput) (*Book, error) {
	published, err := input.validate()
	if err != nil {
		return nil, err
	}

	book.Title = input.Title
	book.Author = input.Author
	book.Published = Date{Time: published}
	book.Pages = input.Pages
	book.Price = input.Price
	book.UpdatedAt = time.Now()

	if err := service.repo.UpdateBook(context, book); err != nil {
		return nil, err
	}

	service.logger.Info("book_updated", slog.String("book_id", book.ID))
	return book, nil
}

func (service *Service) DeleteBook(context context.Context, id string) error {
	if err := service.repo.DeleteBook(context, id); err != nil {
		return err
	}

	service.logger.Warn("book_deleted", slog.String("book_id", id))
	return nil
}
