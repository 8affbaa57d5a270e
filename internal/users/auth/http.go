// Copyright (c) 2026 Book Store. All rights reserved.
// Author: houzifahabbo

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/houzifahabbo/book-store/internal/platform/constants"
	requestutil "github.com/houzifahabbo/book-store/internal/platform/request"
	"github.com/houzifahabbo/book-store/internal/platform/respond"
	"github.com/houzifahabbo/book-store/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the page descriptors for the home/signin/signup views
// and the session lifecycle entry points. It is strictly responsible for
// transport concerns (status codes, cookies, JSON).
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// RegisterRoutes mounts the authentication routes on the given router.
//
// # Endpoints
//   - GET  /         : Home page descriptor.
//   - GET  /signup   : Signup page descriptor (soft gate redirects if authenticated).
//   - GET  /signin   : Signin page descriptor (soft gate redirects if authenticated).
//   - POST /signup   : Creates an account, sets the token cookie, redirects home.
//   - POST /signin   : Authenticates, sets the token cookie, redirects home.
//   - POST /signout  : Clears the token cookie, redirects home.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.homePage)
	router.Get("/signup", handler.signUpPage)
	router.Get("/signin", handler.signInPage)

	router.Post("/signup", handler.signUp)
	router.Post("/signin", handler.signIn)
	router.Post("/signout", handler.signOut)
}

// # Request Payloads

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// pageDescriptor carries the view state the client renders. View rendering
// itself happens client-side; the server only reports which page to show
// and whether the requester is authenticated.
type pageDescriptor struct {
	Endpoint      string `json:"endpoint"`
	Authenticated bool   `json:"auth"`
}

// # Page Handlers

func (handler *Handler) homePage(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, pageDescriptor{
		Endpoint:      "home",
		Authenticated: requestutil.Claims(request) != nil,
	})
}

func (handler *Handler) signUpPage(writer http.ResponseWriter, request *http.Request) {
	// The soft gate redirects authenticated visitors before this runs,
	// so auth is always false here.
	respond.OK(writer, pageDescriptor{
		Endpoint:      "signup",
		Authenticated: requestutil.Claims(request) != nil,
	})
}

func (handler *Handler) signInPage(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, pageDescriptor{
		Endpoint:      "signin",
		Authenticated: requestutil.Claims(request) != nil,
	})
}

// # Session Handlers

/*
signUp creates a new user account and establishes a session.

POST /signup

Response:
  - 302: Redirect to / with the token cookie set
  - 400: Validation failure (password strength, missing fields)
  - 401: Username already exists
*/
func (handler *Handler) signUp(writer http.ResponseWriter, request *http.Request) {
	var input credentialsRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	session, err := handler.authService.SignUp(request.Context(), SignUpInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setTokenCookie(writer, session)
	respond.Redirect(writer, request, "/")
}

/*
signIn authenticates a user and establishes a session.

POST /signin

Response:
  - 302: Redirect to / with the token cookie set
  - 401: Username or password incorrect
*/
func (handler *Handler) signIn(writer http.ResponseWriter, request *http.Request) {
	var input credentialsRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	session, err := handler.authService.SignIn(request.Context(), SignInInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setTokenCookie(writer, session)
	respond.Redirect(writer, request, "/")
}

/*
signOut clears the token cookie.

POST /signout

Response:
  - 302: Redirect to /
*/
func (handler *Handler) signOut(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    "",
		Path:     constants.TokenCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.Redirect(writer, request, "/")
}

// setTokenCookie attaches the session token as an HTTP-only cookie, never
// exposed to client-side script.
func (handler *Handler) setTokenCookie(writer http.ResponseWriter, session *Session) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    session.Token,
		Path:     constants.TokenCookiePath,
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
