package service

import (
	"context"

	"github.com/itchan-dev/forumapi/shared/domain"
	"github.com/itchan-dev/forumapi/shared/errors"
)

type AuthService interface {
	Login(ctx context.Context, payload domain.Payload) (domain.NewAuth, error)
	Refresh(ctx context.Context, payload domain.Payload) (domain.AccessToken, error)
	Logout(ctx context.Context, payload domain.Payload) error
}

type Auth struct {
	storage AuthStorage
	hasher  PasswordHasher
	tokens  TokenManager
}

type AuthStorage interface {
	UserByUsername(ctx context.Context, username domain.Username) (domain.User, error)
	AddToken(ctx context.Context, token domain.RefreshToken) error
	// CheckAvailabilityToken fails with a client error if token is not stored.
	CheckAvailabilityToken(ctx context.Context, token domain.RefreshToken) error
	DeleteToken(ctx context.Context, token domain.RefreshToken) error
}

type TokenManager interface {
	NewAccessToken(owner domain.TokenOwner) (domain.AccessToken, error)
	NewRefreshToken(owner domain.TokenOwner) (domain.RefreshToken, error)
	VerifyRefreshToken(token string) (domain.TokenOwner, error)
}

func NewAuth(storage AuthStorage, hasher PasswordHasher, tokens TokenManager) *Auth {
	return &Auth{storage: storage, hasher: hasher, tokens: tokens}
}

// Login checks credentials and issues an access/refresh token pair.
// The refresh token is stored so it can be revoked by Logout.
func (a *Auth) Login(ctx context.Context, payload domain.Payload) (domain.NewAuth, error) {
	creds, err := domain.NewCredentials(payload)
	if err != nil {
		return domain.NewAuth{}, err
	}

	user, err := a.storage.UserByUsername(ctx, creds.Username)
	if err != nil {
		return domain.NewAuth{}, err
	}
	if err := a.hasher.Compare(creds.Password, user.PassHash); err != nil {
		return domain.NewAuth{}, err
	}

	owner := domain.TokenOwner{Id: user.Id, Username: user.Username}
	accessToken, err := a.tokens.NewAccessToken(owner)
	if err != nil {
		return domain.NewAuth{}, err
	}
	refreshToken, err := a.tokens.NewRefreshToken(owner)
	if err != nil {
		return domain.NewAuth{}, err
	}

	if err := a.storage.AddToken(ctx, refreshToken); err != nil {
		return domain.NewAuth{}, err
	}
	return domain.NewAuth{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh issues a new access token for a valid, stored refresh token.
func (a *Auth) Refresh(ctx context.Context, payload domain.Payload) (domain.AccessToken, error) {
	refreshToken, err := domain.RefreshTokenFrom(errors.EntityRefreshAuthentication, payload)
	if err != nil {
		return "", err
	}

	owner, err := a.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	if err := a.storage.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return "", err
	}

	return a.tokens.NewAccessToken(owner)
}

// Logout revokes a stored refresh token.
func (a *Auth) Logout(ctx context.Context, payload domain.Payload) error {
	refreshToken, err := domain.RefreshTokenFrom(errors.EntityDeleteAuthentication, payload)
	if err != nil {
		return err
	}

	if err := a.storage.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return err
	}
	return a.storage.DeleteToken(ctx, refreshToken)
}
