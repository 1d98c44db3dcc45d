package repository

import (
	"context"

	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type IComment interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error)
	ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int) (model.Page[model.CommentDetail], error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
