package repository

import (
	"context"

	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IUser interface {
	Create(ctx context.Context, user *model.User) error
	// GetByID omits the password hash and refresh token.
	GetByID(ctx context.Context, id bson.ObjectID) (model.User, error)
	GetByIDWithSecrets(ctx context.Context, id bson.ObjectID) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	ExistsByEmailOrUserName(ctx context.Context, email, userName string) (bool, error)
	SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error
	UnsetRefreshToken(ctx context.Context, id bson.ObjectID) error
	UpdatePassword(ctx context.Context, id bson.ObjectID, hash string) error
	UpdateFullName(ctx context.Context, id bson.ObjectID, fullName string) (model.User, error)
	UpdateAvatar(ctx context.Context, id bson.ObjectID, avatar model.Asset) (model.User, error)
	UpdateCoverImage(ctx context.Context, id bson.ObjectID, cover model.Asset) (model.User, error)
	AddToWatchHistory(ctx context.Context, id, videoID bson.ObjectID) error
	GetChannelProfile(ctx context.Context, userName string, viewerID bson.ObjectID) (model.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, id bson.ObjectID) ([]model.VideoDetail, error)
}
