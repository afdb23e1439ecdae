package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrAccountNotFound    = errors.New("account not found")
	ErrIncorrectPassword  = errors.New("incorrect password")
)

// IAuthUseCase checks resident credentials.
type IAuthUseCase interface {
	SignIn(ctx context.Context, email, password string) (entities.Account, error)
}

type AuthUseCase struct {
	provider interfaces.IAuthProvider
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(provider interfaces.IAuthProvider) *AuthUseCase {
	return &AuthUseCase{provider: provider}
}

// SignIn matches the email case-insensitively and the password exactly.
func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (entities.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.Account{}, ErrMissingCredentials
	}

	account, ok, err := u.provider.Lookup(ctx, email)
	if err != nil {
		zap.L().Error("[auth][usecase] lookup failed", zap.String("email", email), zap.Error(err))
		return entities.Account{}, err
	}
	if !ok {
		zap.L().Info("[auth][usecase] unknown account", zap.String("email", email))
		return entities.Account{}, ErrAccountNotFound
	}
	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		zap.L().Info("[auth][usecase] incorrect password", zap.String("email", email))
		return entities.Account{}, ErrIncorrectPassword
	}

	account.Password = ""
	return account, nil
}
