package impl

import (
	"context"
	"log/slog"
	"time"

	"tabiptv/internal/domain/entity"
	domainerrors "tabiptv/internal/domain/errors"
	"tabiptv/internal/domain/repository"
	"tabiptv/internal/domain/service"
	"tabiptv/internal/usecase"

	"github.com/pkg/errors"
)

// bearerTokenType is the token_type value returned by Login, as expected by
// OAuth2 password flow clients.
const bearerTokenType = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
		now:          time.Now,
	}
}

// Login verifies the credentials and mints a bearer token. An unknown
// username and a wrong password surface the same error.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Login rejected", "username", input.Username)

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(account.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   bearerTokenType,
	}, nil
}

// ResolveAccount validates a bearer token and loads the account it was
// minted for. Token defects of any kind resolve to ErrUnauthorized; a token
// whose account is soft-deleted resolves to ErrInactiveAccount.
func (srv *authService) ResolveAccount(ctx context.Context, tokenString string) (*entity.Account, error) {
	claims, err := srv.tokenService.ValidateToken(tokenString)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	var account *entity.Account

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByUsername(ctx, claims.Username)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrUnauthorized
			}

			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if account.Deleted {
		return nil, domainerrors.ErrInactiveAccount
	}

	return account, nil
}

// Bootstrap creates the admin account. The single-admin invariant is checked
// and the insert performed inside one transaction, so concurrent bootstrap
// attempts cannot both succeed.
func (srv *authService) Bootstrap(ctx context.Context, input usecase.BootstrapInput) (*entity.Account, error) {
	srv.logger.Info("Bootstrapping admin account", "username", input.Username)

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	account := &entity.Account{
		Username:     input.Username,
		PasswordHash: hash,
		CreatedAt:    srv.now().Format(entity.TimeLayout),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		count, err := accountRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count accounts")
		}
		// Any existing row blocks bootstrap, soft-deleted rows included.
		if count > 0 {
			return domainerrors.ErrAccountAlreadyExists
		}

		if err := accountRepo.Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}
