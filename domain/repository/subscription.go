package repository

import (
	"context"

	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ISubscription interface {
	Create(ctx context.Context, sub *model.Subscription) error
	Remove(ctx context.Context, subscriberID, channelID bson.ObjectID) (bool, error)
	Subscribers(ctx context.Context, channelID bson.ObjectID) ([]model.UserSummary, error)
	SubscribedChannels(ctx context.Context, subscriberID bson.ObjectID) ([]model.UserSummary, error)
}
