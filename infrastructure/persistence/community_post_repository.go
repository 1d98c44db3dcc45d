package persistence

import (
	"context"
	"time"

	"vidtube/domain/model"
	"vidtube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type CommunityPostRepository struct {
	posts *mongo.Collection
	now   func() time.Time
}

func NewCommunityPostRepository(db *mongo.Database) repository.ICommunityPost {
	return &CommunityPostRepository{posts: db.Collection(CollectionCommunityPosts), now: time.Now}
}

func (r *CommunityPostRepository) Create(ctx context.Context, post *model.CommunityPost) error {
	now := r.now().UTC()
	post.ID = bson.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now
	_, err := r.posts.InsertOne(ctx, post)
	return mapError("insert community post", err)
}

func (r *CommunityPostRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.CommunityPost, error) {
	var post model.CommunityPost
	err := r.posts.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&post)
	return post, mapError("find community post", err)
}

func (r *CommunityPostRepository) ListByOwner(ctx context.Context, ownerID bson.ObjectID) ([]model.PostDetail, error) {
	posts, err := aggregateAll[model.PostDetail](ctx, r.posts, postsByOwnerPipeline(ownerID))
	return posts, mapError("aggregate community posts", err)
}

func (r *CommunityPostRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.CommunityPost, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: r.now().UTC()},
	}}}
	var post model.CommunityPost
	err := r.posts.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&post)
	return post, mapError("update community post", err)
}

func (r *CommunityPostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.posts.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return mapError("delete community post", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
