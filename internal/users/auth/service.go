// Copyright (c) 2026 Book Store. All rights reserved.
// Author: houzifahabbo

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/houzifahabbo/book-store/internal/platform/apperr"
	"github.com/houzifahabbo/book-store/internal/platform/constants"
	"github.com/houzifahabbo/book-store/internal/platform/sec"
	"github.com/houzifahabbo/book-store/internal/platform/validate"
	"github.com/houzifahabbo/book-store/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing signed session tokens.
type TokenProvider interface {
	// Issue creates a signed token string carrying the user's identity,
	// valid for timeToLive from now.
	Issue(userID, username string, timeToLive time.Duration) (string, error)
}

// Service implements the user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, signup,
// or signin logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
	logger         *slog.Logger
}

// NewService constructs a new [Service] with the necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
		logger:         logger,
	}
}

// Session represents a freshly established stateless session.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// # Signup Flow

// SignUpInput holds the credentials submitted to enroll a new member.
type SignUpInput struct {
	Username string
	Password string
}

/*
SignUp validates, hashes, and persists a brand new user account, then
establishes a session for it.

Description: Enforces the password strength policy BEFORE hashing, rejects
duplicate usernames, and never stores or returns the plaintext password.

Parameters:
  - context: context.Context
  - input: SignUpInput

Returns:
  - *Session: Signed token plus the created user
  - error: Validation, duplicate-username, or storage errors
*/
func (service *Service) SignUp(context context.Context, input SignUpInput) (*Session, error) {

	// Password strength is enforced before any hashing work is done.
	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		Required(FieldPassword, input.Password).
		Password(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Verify username uniqueness. The historical surface answers 401 for a
	// taken username, so the conflict is reported as Unauthorized.
	_, err := service.userRepository.FindByUsername(context, input.Username)
	if err == nil {
		return nil, apperr.Unauthorized("Username already exists")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during signup spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		// A concurrent signup can slip past the lookup above and trip the
		// unique index instead. Both paths surface the same 401.
		if appError := apperr.As(err); appError != nil && appError.Code == "CONFLICT" {
			return nil, apperr.Unauthorized("Username already exists")
		}
		return nil, fmt.Errorf("auth_service_signup_failed: %w", err)
	}

	service.logger.Info("user_signed_up", slog.String("user_id", user.ID))

	return service.establishSession(user)
}

// # Signin Flow

// SignInInput defines credentials for an authentication attempt.
type SignInInput struct {
	Username string
	Password string
}

/*
SignIn validates user credentials and issues a session token.

Description: Verifies identity with a constant-work password comparison and
returns a generic failure message on any mismatch to prevent enumeration.

Parameters:
  - context: context.Context
  - input: SignInInput

Returns:
  - *Session: Signed token plus the authenticated user
  - error: Unauthorized or internal failures
*/
func (service *Service) SignIn(context context.Context, input SignInInput) (*Session, error) {
	user, err := service.userRepository.FindByUsername(context, input.Username)

	// If (err != nil) the user does not exist. Generic message to prevent enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Username or password incorrect")
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Username or password incorrect")
	}

	service.logger.Info("user_signed_in", slog.String("user_id", user.ID))

	return service.establishSession(user)
}

// establishSession issues a signed token with the fixed 24-hour lifetime.
func (service *Service) establishSession(user *User) (*Session, error) {
	token, err := service.tokenProvider.Issue(user.ID, user.Username, constants.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_issue_failed: %w", err)
	}

	return &Session{
		Token:     token,
		ExpiresAt: time.Now().Add(constants.TokenTTL),
		User:      user,
	}, nil
}
