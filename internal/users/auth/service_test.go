// Copyright (c) 2026 Book Store. All rights reserved.
// Author: houzifahabbo

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houzifahabbo/book-store/internal/platform/apperr"
	"github.com/houzifahabbo/book-store/internal/users/auth"
)

// fakeUserRepository is an in-memory UserRepository keyed by username.
type fakeUserRepository struct {
	users       map[string]*auth.User
	createCalls int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*auth.User)}
}

func (repository *fakeUserRepository) FindByID(ctx context.Context, id string) (*auth.User, error) {
	for _, user := range repository.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repository *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	user, ok := repository.users[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (repository *fakeUserRepository) Create(ctx context.Context, user *auth.User) error {
	repository.createCalls++
	if _, exists := repository.users[user.Username]; exists {
		return apperr.Conflict("Username already exists")
	}
	repository.users[user.Username] = user
	return nil
}

// stubTokenProvider returns a fixed token without real signing.
type stubTokenProvider struct{}

func (stubTokenProvider) Issue(userID, username string, timeToLive time.Duration) (string, error) {
	return "stub-token", nil
}

func newTestService() (*auth.Service, *fakeUserRepository) {
	repository := newFakeUserRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewService(repository, stubTokenProvider{}, logger), repository
}

/*
TestService_SignUp verifies new-account enrollment: a session is established
and the stored credential is never the plaintext password.
*/
func TestService_SignUp(t *testing.T) {
	service, repository := newTestService()

	session, err := service.SignUp(context.Background(), auth.SignUpInput{
		Username: "gopher",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, "stub-token", session.Token)
	assert.Equal(t, "gopher", session.User.Username)
	assert.NotEmpty(t, session.User.ID)

	stored := repository.users["gopher"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "Str0ngPass", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "Str0ngPass")
}

/*
TestService_SignUp_WeakPassword verifies that every shape of weak password is
rejected before any user record is created.
*/
func TestService_SignUp_WeakPassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
	}{
		{name: "too short", password: "Ab1"},
		{name: "no uppercase", password: "alllower1"},
		{name: "no lowercase", password: "ALLUPPER1"},
		{name: "no digit", password: "NoDigitsHere"},
		{name: "empty", password: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service, repository := newTestService()

			session, err := service.SignUp(context.Background(), auth.SignUpInput{
				Username: "gopher",
				Password: testCase.password,
			})

			require.Error(t, err)
			assert.Nil(t, session)
			assert.Zero(t, repository.createCalls, "no user record may be created")
		})
	}
}

/*
TestService_SignUp_DuplicateUsername verifies that a taken username is
rejected with the historical 401 surface and the first account is untouched.
*/
func TestService_SignUp_DuplicateUsername(t *testing.T) {
	service, repository := newTestService()

	first, err := service.SignUp(context.Background(), auth.SignUpInput{
		Username: "gopher",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)

	session, err := service.SignUp(context.Background(), auth.SignUpInput{
		Username: "gopher",
		Password: "An0therPass",
	})
	require.Error(t, err)
	assert.Nil(t, session)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 401, appError.HTTPStatus)
	assert.Equal(t, "Username already exists", appError.Message)

	// The original record must be unaffected.
	stored := repository.users["gopher"]
	require.NotNil(t, stored)
	assert.Equal(t, first.User.ID, stored.ID)
	assert.Equal(t, first.User.PasswordHash, stored.PasswordHash)
}

// racingUserRepository simulates a concurrent signup: the uniqueness lookup
// misses, then the unique index rejects the insert.
type racingUserRepository struct {
	fakeUserRepository
}

func (repository *racingUserRepository) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	return nil, apperr.NotFound("User")
}

func (repository *racingUserRepository) Create(ctx context.Context, user *auth.User) error {
	repository.createCalls++
	return apperr.Conflict("Username already exists")
}

/*
TestService_SignUp_DuplicateUsernameRace verifies that a username taken
between the uniqueness lookup and the insert still surfaces the 401
"Username already exists" response rather than the storage conflict.
*/
func TestService_SignUp_DuplicateUsernameRace(t *testing.T) {
	repository := &racingUserRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := auth.NewService(repository, stubTokenProvider{}, logger)

	session, err := service.SignUp(context.Background(), auth.SignUpInput{
		Username: "gopher",
		Password: "Str0ngPass",
	})
	require.Error(t, err)
	assert.Nil(t, session)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 401, appError.HTTPStatus)
	assert.Equal(t, "Username already exists", appError.Message)
}

/*
TestService_SignIn verifies credential checking: correct credentials yield a
session, while an unknown user or wrong password both produce the same
generic unauthorized message.
*/
func TestService_SignIn(t *testing.T) {
	service, _ := newTestService()

	_, err := service.SignUp(context.Background(), auth.SignUpInput{
		Username: "gopher",
		Password: "Str0ngPass",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		session, err := service.SignIn(context.Background(), auth.SignInInput{
			Username: "gopher",
			Password: "Str0ngPass",
		})
		require.NoError(t, err)
		assert.Equal(t, "stub-token", session.Token)
		assert.Equal(t, "gopher", session.User.Username)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)
	})

	t.Run("wrong password", func(t *testing.T) {
		session, err := service.SignIn(context.Background(), auth.SignInInput{
			Username: "gopher",
			Password: "Wr0ngPass",
		})
		require.Error(t, err)
		assert.Nil(t, session)
		assert.Contains(t, err.Error(), "Username or password incorrect")
	})

	t.Run("unknown user", func(t *testing.T) {
		session, err := service.SignIn(context.Background(), auth.SignInInput{
			Username: "nobody",
			Password: "Str0ngPass",
		})
		require.Error(t, err)
		assert.Nil(t, session)
		assert.Contains(t, err.Error(), "Username or password incorrect")
	})
}
