// Copyright (c) 2026 Book Store. All rights reserved.
// Author: houzifahabbo

/*
Package auth implements the user identity layer of the book store.

It defines the User entity and the logic for account creation, credential
verification, and session token issuance. Sessions are stateless: possession
of a valid signed token is the sole session mechanism, and nothing is
persisted server-side per session.

# Architecture

This layer is the "Truth" of the system. The entity defined here has no
external dependencies and encapsulates all business rules related to user
identity.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member of the book store.
//
// Accounts are immutable after signup: no profile update path exists, and
// accounts are never deleted by this system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername = "username"
	FieldPassword = "password"
)
