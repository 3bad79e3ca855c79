package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	domainErrors "github.com/snacksprint/storefront/internal/domain/errors"
	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/domain/repository"
	pkgAuth "github.com/snacksprint/storefront/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and token management. The optional
// latency reproduces the demo's fake network delay on login/signup without
// touching the chat engine.
type AuthUseCase struct {
	users   repository.UserRepository
	hasher  pkgAuth.PasswordHasher
	tokens  pkgAuth.Strategy
	latency time.Duration
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, latency time.Duration) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, latency: latency}
}

// Register creates a new account and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, login, name, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	if err := u.simulateLatency(ctx); err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, login, strings.TrimSpace(name), hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	if err := u.simulateLatency(ctx); err != nil {
		return nil, "", err
	}

	usr, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *AuthUseCase) simulateLatency(ctx context.Context) error {
	if u.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(u.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
