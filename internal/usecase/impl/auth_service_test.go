package impl

import (
	"context"
	"testing"

	domainerrors "tabiptv/internal/domain/errors"
	"tabiptv/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthService() usecase.AuthUsecase {
	return NewAuthService(newMemTxManager(), plainHasher{}, stubTokenService{}, newDiscardLogger())
}

func bootstrapAdmin(t *testing.T, srv usecase.AuthUsecase) {
	t.Helper()

	_, err := srv.Bootstrap(context.Background(), usecase.BootstrapInput{
		Username: "admin",
		Password: "secret",
	})
	require.NoError(t, err)
}

func TestAuthService_Bootstrap(t *testing.T) {
	srv := createTestAuthService()

	account, err := srv.Bootstrap(context.Background(), usecase.BootstrapInput{
		Username: "admin",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.NotZero(t, account.ID)
	assert.Equal(t, "admin", account.Username)
	assert.NotEqual(t, "secret", account.PasswordHash)
	assert.NotEmpty(t, account.CreatedAt)
}

func TestAuthService_Bootstrap_RefusedOnceAccountExists(t *testing.T) {
	srv := createTestAuthService()
	bootstrapAdmin(t, srv)

	// A second bootstrap is refused even with a different username.
	_, err := srv.Bootstrap(context.Background(), usecase.BootstrapInput{
		Username: "other",
		Password: "secret",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAuthService_Login(t *testing.T) {
	srv := createTestAuthService()
	bootstrapAdmin(t, srv)

	output, err := srv.Login(context.Background(), usecase.LoginInput{
		Username: "admin",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	srv := createTestAuthService()
	bootstrapAdmin(t, srv)

	_, err := srv.Login(context.Background(), usecase.LoginInput{
		Username: "admin",
		Password: "wrong",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	srv := createTestAuthService()
	bootstrapAdmin(t, srv)

	// Unknown username and wrong password are indistinguishable.
	_, err := srv.Login(context.Background(), usecase.LoginInput{
		Username: "nobody",
		Password: "secret",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_ResolveAccount(t *testing.T) {
	srv := createTestAuthService()
	bootstrapAdmin(t, srv)

	ctx := context.Background()
	output, err := srv.Login(ctx, usecase.LoginInput{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	account, err := srv.ResolveAccount(ctx, output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", account.Username)
}

func TestAuthService_ResolveAccount_MalformedToken(t *testing.T) {
	srv := createTestAuthService()
	bootstrapAdmin(t, srv)

	_, err := srv.ResolveAccount(context.Background(), "garbage")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_ResolveAccount_UnknownAccount(t *testing.T) {
	srv := createTestAuthService()

	// A validly shaped token for an account that does not exist.
	_, err := srv.ResolveAccount(context.Background(), "token:ghost")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
