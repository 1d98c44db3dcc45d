package repository

import (
	"context"

	"vidtube/domain/model"
)

type IEventPublisher interface {
	Publish(ctx context.Context, event model.Event) error
}
