package repository

import (
	"context"

	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ICommunityPost interface {
	Create(ctx context.Context, post *model.CommunityPost) error
	GetByID(ctx context.Context, id bson.ObjectID) (model.CommunityPost, error)
	ListByOwner(ctx context.Context, ownerID bson.ObjectID) ([]model.PostDetail, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.CommunityPost, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
