// Copyright (c) 2026 Book Store. All rights reserved.
// Author: houzifahabbo

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houzifahabbo/book-store/internal/platform/ctxutil"
	"github.com/houzifahabbo/book-store/internal/platform/middleware"
	"github.com/houzifahabbo/book-store/internal/platform/sec"
)

// stubVerifier accepts exactly one token value and rejects everything else.
type stubVerifier struct {
	claims *sec.AuthClaims
}

func (verifier stubVerifier) Verify(tokenString string) (*sec.AuthClaims, error) {
	if tokenString == "valid-token" {
		return verifier.claims, nil
	}
	return nil, errors.New("invalid token")
}

func newAuthenticateChain(t *testing.T) (http.Handler, *sec.AuthClaims, **sec.AuthClaims) {
	t.Helper()

	claims := &sec.AuthClaims{UserID: "user-123", Username: "gopher"}
	var seen *sec.AuthClaims

	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	})

	chain := middleware.Authenticate(stubVerifier{claims: claims})(next)
	return chain, claims, &seen
}

/*
TestAuthenticate_NoToken verifies that a cookieless request proceeds as
anonymous without being blocked.
*/
func TestAuthenticate_NoToken(t *testing.T) {
	chain, _, seen := newAuthenticateChain(t)

	request := httptest.NewRequest(http.MethodGet, "/books", nil)
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, *seen)
}

/*
TestAuthenticate_ValidToken verifies that claims are attached to the request
context for downstream handlers.
*/
func TestAuthenticate_ValidToken(t *testing.T) {
	chain, claims, seen := newAuthenticateChain(t)

	request := httptest.NewRequest(http.MethodGet, "/books", nil)
	request.AddCookie(&http.Cookie{Name: "jwt", Value: "valid-token"})
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, claims, *seen)
}

/*
TestAuthenticate_RedirectsAuthenticatedFromSignPages verifies the
short-circuit: already-authenticated users may not visit /signin or /signup.
*/
func TestAuthenticate_RedirectsAuthenticatedFromSignPages(t *testing.T) {
	for _, path := range []string{"/signin", "/signup"} {
		t.Run(path, func(t *testing.T) {
			chain, _, seen := newAuthenticateChain(t)

			request := httptest.NewRequest(http.MethodGet, path, nil)
			request.AddCookie(&http.Cookie{Name: "jwt", Value: "valid-token"})
			recorder := httptest.NewRecorder()
			chain.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusFound, recorder.Code)
			assert.Equal(t, "/", recorder.Header().Get("Location"))
			assert.Nil(t, *seen, "downstream handler must not run")
		})
	}
}

/*
TestAuthenticate_InvalidToken verifies that a bad cookie demotes the request
to anonymous without clearing the cookie: the gate annotates, it never
repairs client state.
*/
func TestAuthenticate_InvalidToken(t *testing.T) {
	chain, _, seen := newAuthenticateChain(t)

	request := httptest.NewRequest(http.MethodGet, "/books", nil)
	request.AddCookie(&http.Cookie{Name: "jwt", Value: "garbage"})
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, *seen)
	assert.Empty(t, recorder.Header().Values("Set-Cookie"), "stale cookie must not be cleared")
}

/*
TestRequireAuth verifies the strict gate: anonymous requests halt with 401
and never reach the downstream handler.
*/
func TestRequireAuth(t *testing.T) {
	reached := false
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		reached = true
		writer.WriteHeader(http.StatusOK)
	})
	chain := middleware.RequireAuth(next)

	// 1. Anonymous: halt with 401.
	request := httptest.NewRequest(http.MethodPost, "/addbook", nil)
	recorder := httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, reached)
	assert.Contains(t, recorder.Body.String(), "Unauthorized")

	// 2. Authenticated: proceed.
	claims := &sec.AuthClaims{UserID: "user-123", Username: "gopher"}
	request = httptest.NewRequest(http.MethodPost, "/addbook", nil)
	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	recorder = httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, reached)
}
