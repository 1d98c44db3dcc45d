package usecase

import (
	"context"
	"errors"

	"vidtube/domain/apperror"
	"vidtube/domain/model"
	"vidtube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ISubscriptionUsecase interface {
	Toggle(ctx context.Context, subscriberID bson.ObjectID, channelID string) (model.SubscriptionToggle, error)
	Subscribers(ctx context.Context, channelID string) ([]model.UserSummary, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]model.UserSummary, error)
}

type SubscriptionUsecase struct {
	subscriptions repository.ISubscription
	users         repository.IUser
	events        repository.IEventPublisher
}

func NewSubscriptionUsecase(subscriptions repository.ISubscription, users repository.IUser, events repository.IEventPublisher) ISubscriptionUsecase {
	return &SubscriptionUsecase{subscriptions: subscriptions, users: users, events: events}
}

func (u *SubscriptionUsecase) existingUser(ctx context.Context, hex, field string) (bson.ObjectID, error) {
	id, err := parseID(hex, field)
	if err != nil {
		return bson.ObjectID{}, err
	}
	if _, err := u.users.GetByID(ctx, id); err != nil {
		return bson.ObjectID{}, notFoundOr(err, "Channel not found")
	}
	return id, nil
}

func (u *SubscriptionUsecase) Toggle(ctx context.Context, subscriberID bson.ObjectID, channelID string) (model.SubscriptionToggle, error) {
	channel, err := u.existingUser(ctx, channelID, "channelId")
	if err != nil {
		return model.SubscriptionToggle{}, err
	}
	if channel == subscriberID {
		return model.SubscriptionToggle{}, apperror.BadRequest("You cannot subscribe to your own channel")
	}

	removed, err := u.subscriptions.Remove(ctx, subscriberID, channel)
	if err != nil {
		return model.SubscriptionToggle{}, apperror.Internal(err)
	}
	if removed {
		return model.SubscriptionToggle{Subscribed: false}, nil
	}

	sub := model.Subscription{Subscriber: subscriberID, Channel: channel}
	if err := u.subscriptions.Create(ctx, &sub); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.SubscriptionToggle{Subscribed: true}, nil
		}
		return model.SubscriptionToggle{}, apperror.Internal(err)
	}
	publish(ctx, u.events, model.EventSubscriptionCreated, subscriberID, channel, sub.ID)
	return model.SubscriptionToggle{Subscribed: true}, nil
}

func (u *SubscriptionUsecase) Subscribers(ctx context.Context, channelID string) ([]model.UserSummary, error) {
	id, err := u.existingUser(ctx, channelID, "channelId")
	if err != nil {
		return nil, err
	}
	users, err := u.subscriptions.Subscribers(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return nonNil(users), nil
}

func (u *SubscriptionUsecase) SubscribedChannels(ctx context.Context, subscriberID string) ([]model.UserSummary, error) {
	id, err := u.existingUser(ctx, subscriberID, "subscriberId")
	if err != nil {
		return nil, err
	}
	channels, err := u.subscriptions.SubscribedChannels(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return nonNil(channels), nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
