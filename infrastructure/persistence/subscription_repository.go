package persistence

import (
	"context"
	"time"

	"vidtube/domain/model"
	"vidtube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type SubscriptionRepository struct {
	subscriptions *mongo.Collection
	now           func() time.Time
}

func NewSubscriptionRepository(db *mongo.Database) repository.ISubscription {
	return &SubscriptionRepository{subscriptions: db.Collection(CollectionSubscriptions), now: time.Now}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	now := r.now().UTC()
	sub.ID = bson.NewObjectID()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	_, err := r.subscriptions.InsertOne(ctx, sub)
	return mapError("insert subscription", err)
}

func (r *SubscriptionRepository) Remove(ctx context.Context, subscriberID, channelID bson.ObjectID) (bool, error) {
	res, err := r.subscriptions.DeleteOne(ctx, bson.D{
		{Key: "subscriber", Value: subscriberID},
		{Key: "channel", Value: channelID},
	})
	if err != nil {
		return false, mapError("delete subscription", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *SubscriptionRepository) Subscribers(ctx context.Context, channelID bson.ObjectID) ([]model.UserSummary, error) {
	users, err := aggregateAll[model.UserSummary](ctx, r.subscriptions, subscriptionUsersPipeline("channel", channelID, "subscriber"))
	return users, mapError("aggregate subscribers", err)
}

func (r *SubscriptionRepository) SubscribedChannels(ctx context.Context, subscriberID bson.ObjectID) ([]model.UserSummary, error) {
	users, err := aggregateAll[model.UserSummary](ctx, r.subscriptions, subscriptionUsersPipeline("subscriber", subscriberID, "channel"))
	return users, mapError("aggregate subscribed channels", err)
}
