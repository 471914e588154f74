package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/api/internal/model"
	"github.com/gatherly/api/internal/repository"
	"github.com/gatherly/api/internal/service"
	"github.com/gatherly/api/internal/testing/fixtures"
	"github.com/gatherly/api/internal/testing/helpers"
	"github.com/gatherly/api/internal/testing/testdb"
)

/*
FEATURE: Authentication
DOMAIN: Auth

ACCEPTANCE CRITERIA:
===================

AC-AUTH-001: Register with Email/Password
  GIVEN a new visitor
  WHEN they register with name, email, and password
  THEN an account is created
  AND a bearer token is returned
  AND the password hash never appears in the response

AC-AUTH-002: Duplicate Email Rejected
  GIVEN an existing account
  WHEN someone registers with the same email (any casing)
  THEN registration fails

AC-AUTH-003: Login
  GIVEN an existing account
  WHEN the owner logs in with correct credentials
  THEN a token is returned
  AND wrong credentials are rejected without detail

AC-AUTH-004: Token Identifies the User
  GIVEN a token from register or login
  WHEN it is validated
  THEN the claims carry the account's id, email, and admin flag
*/

func newAuthService(t *testing.T, tdb *testdb.TestDB) *service.AuthService {
	t.Helper()
	userRepo := repository.NewUserRepository(tdb.DB)
	return service.NewAuthService(userRepo, helpers.NewTestJWTService(t))
}

func TestAuth_Register(t *testing.T) {
	// AC-AUTH-001: Register with Email/Password
	tdb := testdb.New(t)
	defer tdb.Close()

	auth := newAuthService(t, tdb)
	ctx := context.Background()

	resp, err := auth.Register(ctx, &model.RegisterRequest{
		Name:     "New User",
		Username: "newuser",
		Email:    "newuser@test.local",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User)

	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "newuser@test.local", resp.User.Email)
	assert.False(t, resp.User.IsAdmin)

	helpers.AssertRecordExists(t, tdb.DB, "user", resp.User.ID)
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	// AC-AUTH-002: Duplicate Email Rejected
	tdb := testdb.New(t)
	defer tdb.Close()

	auth := newAuthService(t, tdb)
	ctx := context.Background()

	_, err := auth.Register(ctx, &model.RegisterRequest{
		Name:     "First",
		Username: "first",
		Email:    "taken@test.local",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = auth.Register(ctx, &model.RegisterRequest{
		Name:     "Second",
		Username: "second",
		Email:    "TAKEN@test.local",
		Password: "password456",
	})
	assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)
}

func TestAuth_Login(t *testing.T) {
	// AC-AUTH-003: Login
	tdb := testdb.New(t)
	defer tdb.Close()

	auth := newAuthService(t, tdb)
	ctx := context.Background()

	_, err := auth.Register(ctx, &model.RegisterRequest{
		Name:     "Login User",
		Username: "login",
		Email:    "login@test.local",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := auth.Login(ctx, &model.LoginRequest{
		Email:    "login@test.local",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "login@test.local", resp.User.Email)
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	// AC-AUTH-003: wrong credentials rejected
	tdb := testdb.New(t)
	defer tdb.Close()

	auth := newAuthService(t, tdb)
	ctx := context.Background()

	_, err := auth.Register(ctx, &model.RegisterRequest{
		Name:     "Victim",
		Username: "victim",
		Email:    "victim@test.local",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = auth.Login(ctx, &model.LoginRequest{
		Email:    "victim@test.local",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuth_LoginUnknownEmail(t *testing.T) {
	// AC-AUTH-003: unknown accounts get the same error as bad passwords
	tdb := testdb.New(t)
	defer tdb.Close()

	auth := newAuthService(t, tdb)

	_, err := auth.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@test.local",
		Password: "password123",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuth_TokenCarriesIdentity(t *testing.T) {
	// AC-AUTH-004: Token Identifies the User
	tdb := testdb.New(t)
	defer tdb.Close()

	userRepo := repository.NewUserRepository(tdb.DB)
	tokens := helpers.NewTestJWTService(t)
	auth := service.NewAuthService(userRepo, tokens)

	f := fixtures.New(tdb.DB)
	admin := f.CreateAdmin(t)

	resp, err := auth.Login(context.Background(), &model.LoginRequest{
		Email:    admin.Email,
		Password: "testpass123",
	})
	require.NoError(t, err)

	claims, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, admin.Email, claims.Email)
	assert.True(t, claims.IsAdmin)
}
