package persistence

import (
	"context"
	"strings"
	"time"

	"vidtube/domain/model"
	"vidtube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type UserRepository struct {
	users *mongo.Collection
	now   func() time.Time
}

func NewUserRepository(db *mongo.Database) repository.IUser {
	return &UserRepository{users: db.Collection(CollectionUsers), now: time.Now}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	now := r.now().UTC()
	user.ID = bson.NewObjectID()
	user.Email = strings.ToLower(user.Email)
	user.UserName = strings.ToLower(user.UserName)
	if user.WatchHistory == nil {
		user.WatchHistory = []bson.ObjectID{}
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.users.InsertOne(ctx, user)
	return mapError("insert user", err)
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.D, withSecrets bool) (model.User, error) {
	opts := options.FindOne()
	if !withSecrets {
		opts.SetProjection(secretsProjection)
	}
	var user model.User
	err := r.users.FindOne(ctx, filter, opts).Decode(&user)
	return user, mapError("find user", err)
}

func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}}, false)
}

func (r *UserRepository) GetByIDWithSecrets(ctx context.Context, id bson.ObjectID) (model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}}, true)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: strings.ToLower(email)}}, true)
}

func (r *UserRepository) ExistsByEmailOrUserName(ctx context.Context, email, userName string) (bool, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "email", Value: strings.ToLower(email)}},
		bson.D{{Key: "userName", Value: strings.ToLower(userName)}},
	}}}
	count, err := r.users.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, mapError("count users", err)
	}
	return count > 0, nil
}

func (r *UserRepository) updateOne(ctx context.Context, id bson.ObjectID, update bson.D) error {
	res, err := r.users.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return mapError("update user", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	return r.updateOne(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "refreshToken", Value: token},
		{Key: "updatedAt", Value: r.now().UTC()},
	}}})
}

func (r *UserRepository) UnsetRefreshToken(ctx context.Context, id bson.ObjectID) error {
	return r.updateOne(ctx, id, bson.D{
		{Key: "$unset", Value: bson.D{{Key: "refreshToken", Value: 1}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: r.now().UTC()}}},
	})
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, hash string) error {
	return r.updateOne(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "password", Value: hash},
		{Key: "updatedAt", Value: r.now().UTC()},
	}}})
}

func (r *UserRepository) AddToWatchHistory(ctx context.Context, id, videoID bson.ObjectID) error {
	return r.updateOne(ctx, id, bson.D{{Key: "$addToSet", Value: bson.D{{Key: "watchHistory", Value: videoID}}}})
}

func (r *UserRepository) setAndReturn(ctx context.Context, id bson.ObjectID, set bson.D) (model.User, error) {
	set = append(set, bson.E{Key: "updatedAt", Value: r.now().UTC()})
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(secretsProjection)

	var user model.User
	err := r.users.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&user)
	return user, mapError("update user", err)
}

func (r *UserRepository) UpdateFullName(ctx context.Context, id bson.ObjectID, fullName string) (model.User, error) {
	return r.setAndReturn(ctx, id, bson.D{{Key: "fullName", Value: fullName}})
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id bson.ObjectID, avatar model.Asset) (model.User, error) {
	return r.setAndReturn(ctx, id, bson.D{{Key: "avatar", Value: avatar}})
}

func (r *UserRepository) UpdateCoverImage(ctx context.Context, id bson.ObjectID, cover model.Asset) (model.User, error) {
	return r.setAndReturn(ctx, id, bson.D{{Key: "coverImage", Value: cover}})
}

func (r *UserRepository) GetChannelProfile(ctx context.Context, userName string, viewerID bson.ObjectID) (model.ChannelProfile, error) {
	profiles, err := aggregateAll[model.ChannelProfile](ctx, r.users, channelProfilePipeline(userName, viewerID))
	if err != nil {
		return model.ChannelProfile{}, mapError("aggregate channel profile", err)
	}
	if len(profiles) == 0 {
		return model.ChannelProfile{}, repository.ErrNotFound
	}
	return profiles[0], nil
}

func (r *UserRepository) GetWatchHistory(ctx context.Context, id bson.ObjectID) ([]model.VideoDetail, error) {
	type history struct {
		WatchHistory []model.VideoDetail `bson:"watchHistory"`
	}
	results, err := aggregateAll[history](ctx, r.users, watchHistoryPipeline(id))
	if err != nil {
		return nil, mapError("aggregate watch history", err)
	}
	if len(results) == 0 {
		return nil, repository.ErrNotFound
	}
	if results[0].WatchHistory == nil {
		return []model.VideoDetail{}, nil
	}
	return results[0].WatchHistory, nil
}
