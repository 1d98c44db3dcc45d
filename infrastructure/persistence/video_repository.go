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

type VideoRepository struct {
	videos *mongo.Collection
	now    func() time.Time
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{videos: db.Collection(CollectionVideos), now: time.Now}
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	now := r.now().UTC()
	video.ID = bson.NewObjectID()
	video.CreatedAt = now
	video.UpdatedAt = now
	_, err := r.videos.InsertOne(ctx, video)
	return mapError("insert video", err)
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	var video model.Video
	err := r.videos.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	return video, mapError("find video", err)
}

func (r *VideoRepository) GetDetail(ctx context.Context, id bson.ObjectID) (model.VideoDetail, error) {
	details, err := aggregateAll[model.VideoDetail](ctx, r.videos, videoDetailPipeline(id))
	if err != nil {
		return model.VideoDetail{}, mapError("aggregate video", err)
	}
	if len(details) == 0 {
		return model.VideoDetail{}, repository.ErrNotFound
	}
	return details[0], nil
}

func (r *VideoRepository) List(ctx context.Context, query model.VideoQuery) (model.Page[model.VideoDetail], error) {
	query.Page, query.Limit = model.NormalizePage(query.Page, query.Limit)
	docs, total, err := aggregatePage[model.VideoDetail](ctx, r.videos, videoListPipeline(query))
	if err != nil {
		return model.Page[model.VideoDetail]{}, mapError("aggregate videos", err)
	}
	return model.NewPage(docs, total, query.Page, query.Limit), nil
}

func (r *VideoRepository) setAndReturn(ctx context.Context, id bson.ObjectID, set bson.D) (model.Video, error) {
	set = append(set, bson.E{Key: "updatedAt", Value: r.now().UTC()})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var video model.Video
	err := r.videos.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&video)
	return video, mapError("update video", err)
}

func (r *VideoRepository) Update(ctx context.Context, id bson.ObjectID, update model.VideoUpdate) (model.Video, error) {
	set := bson.D{}
	if update.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *update.Title})
	}
	if update.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *update.Description})
	}
	if update.Thumbnail != nil {
		set = append(set, bson.E{Key: "thumbnail", Value: *update.Thumbnail})
	}
	return r.setAndReturn(ctx, id, set)
}

func (r *VideoRepository) SetPublished(ctx context.Context, id bson.ObjectID, published bool) (model.Video, error) {
	return r.setAndReturn(ctx, id, bson.D{{Key: "isPublished", Value: published}})
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	res, err := r.videos.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}})
	if err != nil {
		return mapError("increment views", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.videos.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return mapError("delete video", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
