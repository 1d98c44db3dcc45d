package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Video struct {
	ID          bson.ObjectID `json:"_id"         bson:"_id,omitempty"`
	VideoFile   Asset         `json:"videoFile"   bson:"videoFile"`
	Thumbnail   Asset         `json:"thumbnail"   bson:"thumbnail"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	Duration    float64       `json:"duration"    bson:"duration"`
	Views       int64         `json:"views"       bson:"views"`
	IsPublished bool          `json:"isPublished" bson:"isPublished"`
	Owner       bson.ObjectID `json:"owner"       bson:"owner"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updatedAt"`
}

// VideoDetail is a video with its owner joined in.
type VideoDetail struct {
	Video        `bson:",inline"`
	OwnerDetails UserSummary `json:"ownerDetails" bson:"ownerDetails"`
}

// VideoQuery drives the paginated video listing.
type VideoQuery struct {
	Page    int
	Limit   int
	Search  string
	SortBy  string
	SortAsc bool
	// OwnerID restricts the listing to one channel.
	OwnerID            *bson.ObjectID
	IncludeUnpublished bool
}

// VideoUpdate holds the fields an owner may change; nil means unchanged.
type VideoUpdate struct {
	Title       *string
	Description *string
	Thumbnail   *Asset
}

var VideoSortFields = map[string]bool{
	"createdAt": true,
	"views":     true,
	"duration":  true,
	"title":     true,
}
