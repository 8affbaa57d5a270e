package books

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/houzifahabbo/book-store/internal/platform/apperr"
	"github.com/houzifahabbo/book-store/internal/platform/middleware"
	requestutil "github.com/houzifahabbo/book-store/internal/platform/request"
	"github.com/houzifahabbo/book-store/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the book routes on the given router.
//
// Reads are soft-gated: any visitor gets the list and detail views, with an
// informational ownership flag. Mutations pass the strict authentication
// gate and, for existing books, the ownership gate.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/books", handler.listBooks)
	router.Get("/addbook", handler.addBookPage)

	router.Group(func(r chi.Router) {
		r.Use(handler.withBook)
		r.Get("/books/{id}", handler.getBook)
		r.Get("/editbook/{id}", handler.editBookPage)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/addbook", handler.createBook)
		r.With(handler.withBook).Post("/editbook/{id}", handler.updateBook)
		r.With(handler.withBook).Post("/deletebook/{id}", handler.deleteBook)
	})
}

// # Ownership Gate

// bookContext is the typed outcome of the ownership gate, threaded through
// the request context instead of response-local flags.
type bookContext struct {
	Book *Book

	// IsOwner reports whether the authenticated requester owns Book.
	// Always false for anonymous requests — "unset" means "not owner".
	IsOwner bool
}

type gateKey struct{}

// withBook resolves the {id} path parameter into a [bookContext].
//
// An unknown id halts the chain with 404 before any handler runs. A found
// book is paired with the ownership verdict for the current requester.
func (handler *Handler) withBook(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		id := requestutil.Param(request, "id")

		book, err := handler.service.GetBook(request.Context(), id)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		claims := requestutil.Claims(request)
		gate := &bookContext{
			Book:    book,
			IsOwner: claims != nil && book.OwnerID == claims.UserID,
		}

		ctx := context.WithValue(request.Context(), gateKey{}, gate)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// gateResult returns the [bookContext] injected by [Handler.withBook].
func gateResult(ctx context.Context) *bookContext {
	gate, _ := ctx.Value(gateKey{}).(*bookContext)
	return gate
}

// # View Payloads

// bookPage mirrors the render options of the book views: which page to
// show, the requester's authentication state, the records to render, and
// the informational ownership flag.
type bookPage struct {
	Endpoint      string  `json:"endpoint"`
	Authenticated bool    `json:"auth"`
	Books         []*Book `json:"books"`
	IsOwner       bool    `json:"isBookOwner"`
}

// # Read Handlers

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bookPage{
		Endpoint:      "books",
		Authenticated: requestutil.Claims(request) != nil,
		Books:         books,
	})
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	gate := gateResult(request.Context())

	respond.OK(writer, bookPage{
		Endpoint:      "book",
		Authenticated: requestutil.Claims(request) != nil,
		Books:         []*Book{gate.Book},
		IsOwner:       gate.IsOwner,
	})
}

func (handler *Handler) addBookPage(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, bookPage{
		Endpoint:      "add",
		Authenticated: requestutil.Claims(request) != nil,
		Books:         []*Book{},
	})
}

func (handler *Handler) editBookPage(writer http.ResponseWriter, request *http.Request) {
	gate := gateResult(request.Context())

	respond.OK(writer, bookPage{
		Endpoint:      "edit",
		Authenticated: requestutil.Claims(request) != nil,
		Books:         []*Book{gate.Book},
		IsOwner:       gate.IsOwner,
	})
}

// # Mutation Handlers

/*
createBook persists a new book owned by the authenticated requester.

POST /addbook

Response:
  - 201: Created, Location: /books
  - 400: Validation failure
  - 401: Missing or invalid token
*/
func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input BookInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.CreateBook(request.Context(), userID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.CreatedRedirect(writer, "/books")
}

/*
updateBook applies submitted fields to a book the requester owns.

POST /editbook/{id}

Response:
  - 200: Updated, Location: /books
  - 403: Requester is not the owner
  - 404: No book found
*/
func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	gate := gateResult(request.Context())
	if !gate.IsOwner {
		respond.Error(writer, request, apperr.Forbidden("You do not own this book"))
		return
	}

	var input BookInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.UpdateBook(request.Context(), gate.Book, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKRedirect(writer, "/books")
}

/*
deleteBook removes a book the requester owns.

POST /deletebook/{id}

Response:
  - 200: Deleted, Location: /books
  - 403: Requester is not the owner
  - 404: No book found
*/
func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	gate := gateResult(request.Context())
	if !gate.IsOwner {
		respond.Error(writer, request, apperr.Forbidden("You do not own this book"))
		return
	}

	if err := handler.service.DeleteBook(request.Context(), gate.Book.ID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OKRedirect(writer, "/books")
}
