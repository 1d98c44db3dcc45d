package repository

import (
	"context"

	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IVideo interface {
	Create(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error)
	GetDetail(ctx context.Context, id bson.ObjectID) (model.VideoDetail, error)
	List(ctx context.Context, query model.VideoQuery) (model.Page[model.VideoDetail], error)
	Update(ctx context.Context, id bson.ObjectID, update model.VideoUpdate) (model.Video, error)
	SetPublished(ctx context.Context, id bson.ObjectID, published bool) (model.Video, error)
	IncrementViews(ctx context.Context, id bson.ObjectID) error
	Delete(ctx context.Context, id bson.ObjectID) error
}
