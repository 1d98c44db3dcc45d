package persistence

import (
	"context"
	"fmt"

	"vidtube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func uniqueLikeIndex(field string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: field, Value: 1}},
		Options: options.Index().
			SetName("uniq_like_" + field).
			SetUnique(true).
			SetPartialFilterExpression(bson.D{{Key: field, Value: bson.D{{Key: "$exists", Value: true}}}}),
	}
}

func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		CollectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("uniq_email").SetUnique(true)},
			{Keys: bson.D{{Key: "userName", Value: 1}}, Options: options.Index().SetName("uniq_userName").SetUnique(true)},
		},
		CollectionVideos: {
			{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}}, Options: options.Index().SetName("text_title_description")},
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("owner_createdAt")},
		},
		CollectionComments: {
			{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("video_createdAt")},
		},
		CollectionCommunityPosts: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("owner_createdAt")},
		},
		CollectionLikes: {
			uniqueLikeIndex("video"),
			uniqueLikeIndex("comment"),
			uniqueLikeIndex("communityPost"),
		},
		CollectionSubscriptions: {
			{Keys: bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}}, Options: options.Index().SetName("uniq_subscriber_channel").SetUnique(true)},
			{Keys: bson.D{{Key: "channel", Value: 1}}, Options: options.Index().SetName("channel")},
		},
	}
}

// EnsureIndexes creates the indexes the repositories rely on, including the
// unique constraints behind like and subscription toggling.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, models := range indexModels() {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
		logger.GetLogger().WithField("collection", collection).WithField("indexes", names).Debug("Indexes ensured")
	}
	return nil
}
