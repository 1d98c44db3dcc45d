package repository

import (
	"context"

	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ILike interface {
	// Create returns ErrDuplicate when userID already likes the target.
	Create(ctx context.Context, like *model.Like) error
	// Remove reports whether a like existed.
	Remove(ctx context.Context, target model.LikeTarget, userID bson.ObjectID) (bool, error)
	Find(ctx context.Context, target model.LikeTarget, userID bson.ObjectID) (model.Like, error)
	LikedVideos(ctx context.Context, userID bson.ObjectID) ([]model.LikedVideo, error)
	Summary(ctx context.Context, target model.LikeTarget) (model.LikeSummary, error)
}
