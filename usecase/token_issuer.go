package usecase

import (
	"context"

	"vidtube/domain/apperror"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/security"
)

type ITokenIssuer interface {
	// Issue signs a new pair and stores the refresh token on the user,
	// replacing whatever was there.
	Issue(ctx context.Context, user model.User) (model.TokenPair, error)
}

type TokenIssuer struct {
	tokens security.ITokenManager
	users  repository.IUser
}

func NewTokenIssuer(tokens security.ITokenManager, users repository.IUser) ITokenIssuer {
	return &TokenIssuer{tokens: tokens, users: users}
}

func (i *TokenIssuer) Issue(ctx context.Context, user model.User) (model.TokenPair, error) {
	access, err := i.tokens.SignAccess(user)
	if err != nil {
		return model.TokenPair{}, apperror.Internal(err)
	}
	refresh, err := i.tokens.SignRefresh(user)
	if err != nil {
		return model.TokenPair{}, apperror.Internal(err)
	}
	if err := i.users.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		return model.TokenPair{}, apperror.Internal(err)
	}
	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
