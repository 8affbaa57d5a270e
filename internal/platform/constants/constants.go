// Copyright (c) 2026 Book Store. All rights reserved.
// Author: houzifahabbo

/*
Package constants provides centralized, immutable values for the entire service.

It defines default timeouts, session parameters, and cross-cutting keys that
are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Security: JWT issuer, token lifetime, and cookie configuration.
  - Caching: Redis key taxonomy and TTLs for the book read cache.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "book-store-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in issued session tokens.
	AuthIssuer = "book-store"

	// TokenCookieName is the name of the HTTP-only cookie carrying the session token.
	TokenCookieName = "jwt"

	// TokenCookiePath is the scope of the session cookie.
	TokenCookiePath = "/"

	// TokenTTL is the fixed lifetime of an issued session token.
	TokenTTL = 24 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisKeyBookList caches the full book list.
	RedisKeyBookList = "books:all"

	// RedisPrefixBook prefixes per-book detail cache entries.
	RedisPrefixBook = "books:id:"

	// BookCacheTTL bounds staleness of the book read cache. Mutations
	// invalidate eagerly; the TTL is a backstop.
	BookCacheTTL = 60 * time.Second
)
