package usecase

import (
	"context"

	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// publish never fails the caller; broker outages only cost notifications.
func publish(ctx context.Context, publisher repository.IEventPublisher, eventType string, actor, target, resource bson.ObjectID) {
	if publisher == nil {
		return
	}
	event := model.Event{
		Type:       eventType,
		ActorID:    actor.Hex(),
		ResourceID: resource.Hex(),
	}
	if !target.IsZero() {
		event.TargetUserID = target.Hex()
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.GetLogger().WithField("error", err).WithField("type", eventType).Warn("Failed to publish event")
	}
}

// discard removes uploaded assets that ended up unused.
func discard(ctx context.Context, media repository.IMediaStorage, assets ...model.Asset) {
	for _, asset := range assets {
		if asset.PublicID == "" {
			continue
		}
		if err := media.Delete(ctx, asset.PublicID); err != nil {
			logger.GetLogger().WithField("error", err).WithField("publicId", asset.PublicID).Warn("Failed to delete media")
		}
	}
}
