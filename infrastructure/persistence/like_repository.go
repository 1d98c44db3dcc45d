package persistence

import (
	"context"
	"time"

	"vidtube/domain/model"
	"vidtube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type LikeRepository struct {
	likes *mongo.Collection
	now   func() time.Time
}

func NewLikeRepository(db *mongo.Database) repository.ILike {
	return &LikeRepository{likes: db.Collection(CollectionLikes), now: time.Now}
}

func likeFilter(target model.LikeTarget, userID bson.ObjectID) bson.D {
	return bson.D{{Key: target.Field(), Value: target.ID}, {Key: "likedBy", Value: userID}}
}

func (r *LikeRepository) Create(ctx context.Context, like *model.Like) error {
	now := r.now().UTC()
	like.ID = bson.NewObjectID()
	like.CreatedAt = now
	like.UpdatedAt = now
	_, err := r.likes.InsertOne(ctx, like)
	return mapError("insert like", err)
}

func (r *LikeRepository) Remove(ctx context.Context, target model.LikeTarget, userID bson.ObjectID) (bool, error) {
	res, err := r.likes.DeleteOne(ctx, likeFilter(target, userID))
	if err != nil {
		return false, mapError("delete like", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *LikeRepository) Find(ctx context.Context, target model.LikeTarget, userID bson.ObjectID) (model.Like, error) {
	var like model.Like
	err := r.likes.FindOne(ctx, likeFilter(target, userID)).Decode(&like)
	return like, mapError("find like", err)
}

func (r *LikeRepository) LikedVideos(ctx context.Context, userID bson.ObjectID) ([]model.LikedVideo, error) {
	videos, err := aggregateAll[model.LikedVideo](ctx, r.likes, likedVideosPipeline(userID))
	return videos, mapError("aggregate liked videos", err)
}

func (r *LikeRepository) Summary(ctx context.Context, target model.LikeTarget) (model.LikeSummary, error) {
	summaries, err := aggregateAll[model.LikeSummary](ctx, r.likes, likeSummaryPipeline(target))
	if err != nil {
		return model.LikeSummary{}, mapError("aggregate likes", err)
	}
	if len(summaries) == 0 {
		return model.LikeSummary{LikedBy: []model.UserSummary{}}, nil
	}
	return summaries[0], nil
}
