// Copyright (c) 2026 Book Store. All rights reserved.
// Author: houzifahabbo

package middleware

import (
	"net/http"

	"github.com/houzifahabbo/book-store/internal/platform/apperr"
	"github.com/houzifahabbo/book-store/internal/platform/constants"
	"github.com/houzifahabbo/book-store/internal/platform/ctxutil"
	"github.com/houzifahabbo/book-store/internal/platform/respond"
	"github.com/houzifahabbo/book-store/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify session tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the [sec.TokenService]
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	Verify(tokenString string) (*sec.AuthClaims, error)
}

// Authenticate is the soft authentication gate. It extracts and verifies the
// session token from the "jwt" cookie and annotates the request context.
//
// # Flow
//  1. No cookie: the request proceeds as anonymous.
//  2. Valid token: claims are injected into the context. If the requested
//     path is /signin or /signup, the gate short-circuits with a redirect to
//     the home page — already-authenticated users may not re-authenticate.
//  3. Invalid or expired token: the request proceeds as anonymous. The stale
//     cookie is NOT cleared; clients keep presenting it until they sign in
//     again or clear it themselves.
//
// This gate never rejects a request outright — it only annotates it.
// Downstream handlers independently decide whether to require authentication.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Anonymous Access ───────────────────────────────────────────
			cookie, err := request.Cookie(constants.TokenCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Re-authentication Short-Circuit ────────────────────────────
			switch request.URL.Path {
			case "/signin", "/signup":
				http.Redirect(writer, request, "/", http.StatusFound)
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth is the strict authentication gate used by mutating book routes.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*sec.AuthClaims] exists in context.
//  2. If missing, halt the chain with HTTP 401 Unauthorized. The downstream
//     handler is never reached without a valid token.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Unauthorized"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
