package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	CollectionUsers          = "users"
	CollectionVideos         = "videos"
	CollectionComments       = "comments"
	CollectionCommunityPosts = "communityposts"
	CollectionLikes          = "likes"
	CollectionSubscriptions  = "subscriptions"
)

// NewMongoDb connects to uri and verifies the connection with a ping.
func NewMongoDb(ctx context.Context, uri string) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	logger.GetLogger().Info("MongoDB connected successfully")
	return client, nil
}

func closeCursor(ctx context.Context, cursor *mongo.Cursor) {
	if err := cursor.Close(ctx); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
	}
}

// mapError translates driver errors into repository sentinels.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}

func aggregateAll[T any](ctx context.Context, collection *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer closeCursor(ctx, cursor)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// facetResult is the shape produced by paginatedStages.
type facetResult[T any] struct {
	Docs  []T `bson:"docs"`
	Total []struct {
		Count int64 `bson:"count"`
	} `bson:"total"`
}

func (f facetResult[T]) total() int64 {
	if len(f.Total) == 0 {
		return 0
	}
	return f.Total[0].Count
}

func aggregatePage[T any](ctx context.Context, collection *mongo.Collection, pipeline mongo.Pipeline) ([]T, int64, error) {
	results, err := aggregateAll[facetResult[T]](ctx, collection, pipeline)
	if err != nil {
		return nil, 0, err
	}
	if len(results) == 0 {
		return []T{}, 0, nil
	}
	return results[0].Docs, results[0].total(), nil
}
