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

type CommentRepository struct {
	comments *mongo.Collection
	now      func() time.Time
}

func NewCommentRepository(db *mongo.Database) repository.IComment {
	return &CommentRepository{comments: db.Collection(CollectionComments), now: time.Now}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	now := r.now().UTC()
	comment.ID = bson.NewObjectID()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	_, err := r.comments.InsertOne(ctx, comment)
	return mapError("insert comment", err)
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error) {
	var comment model.Comment
	err := r.comments.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment)
	return comment, mapError("find comment", err)
}

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int) (model.Page[model.CommentDetail], error) {
	page, limit = model.NormalizePage(page, limit)
	docs, total, err := aggregatePage[model.CommentDetail](ctx, r.comments, commentListPipeline(videoID, page, limit))
	if err != nil {
		return model.Page[model.CommentDetail]{}, mapError("aggregate comments", err)
	}
	return model.NewPage(docs, total, page, limit), nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: r.now().UTC()},
	}}}
	var comment model.Comment
	err := r.comments.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&comment)
	return comment, mapError("update comment", err)
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.comments.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return mapError("delete comment", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
