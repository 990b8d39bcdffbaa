package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/IneMentenPXL/FlightsApp/internal/domain/user"
	"github.com/IneMentenPXL/FlightsApp/internal/infra"
	"github.com/IneMentenPXL/FlightsApp/internal/pkg/jwt"
	"github.com/IneMentenPXL/FlightsApp/internal/pkg/password"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid handle or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type UserReadStore interface {
	FindByHandle(ctx context.Context, handle string) (*user.User, string, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *user.User, error)
	GetCurrentUser(ctx context.Context, userID int64) (*user.User, error)
}

type authUseCaseImpl struct {
	users      UserReadStore
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthUseCase(users UserReadStore, jwtService *jwt.Service, logger *slog.Logger) AuthUseCase {
	return &authUseCaseImpl{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a handle/password pair and issues an access token.
// Authentication failures are logged, never propagated as faults.
func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *user.User, error) {
	authenticated, hash, err := a.users.FindByHandle(ctx, credentials.Handle())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			a.logger.Warn("login attempt for unknown handle", "handle", credentials.Handle())
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}

	if err := password.Compare(hash, credentials.Password()); err != nil {
		a.logger.Warn("invalid credentials", "handle", credentials.Handle())
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(authenticated.ID, authenticated.Handle)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, authenticated, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID int64) (*user.User, error) {
	u, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
