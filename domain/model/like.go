package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// LikeKind doubles as the field name the target id is stored under.
type LikeKind string

const (
	LikeVideo         LikeKind = "video"
	LikeComment       LikeKind = "comment"
	LikeCommunityPost LikeKind = "communityPost"
)

// Like records that LikedBy likes exactly one of Video, Comment or
// CommunityPost.
type Like struct {
	ID            bson.ObjectID  `json:"_id"                     bson:"_id,omitempty"`
	Video         *bson.ObjectID `json:"video,omitempty"         bson:"video,omitempty"`
	Comment       *bson.ObjectID `json:"comment,omitempty"       bson:"comment,omitempty"`
	CommunityPost *bson.ObjectID `json:"communityPost,omitempty" bson:"communityPost,omitempty"`
	LikedBy       bson.ObjectID  `json:"likedBy"                 bson:"likedBy"`
	CreatedAt     time.Time      `json:"createdAt"               bson:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"               bson:"updatedAt"`
}

type LikeTarget struct {
	Kind LikeKind
	ID   bson.ObjectID
}

func (t LikeTarget) Field() string { return string(t.Kind) }

// NewLike builds a like of target by userID.
func NewLike(target LikeTarget, userID bson.ObjectID) Like {
	id := target.ID
	like := Like{LikedBy: userID}
	switch target.Kind {
	case LikeVideo:
		like.Video = &id
	case LikeComment:
		like.Comment = &id
	case LikeCommunityPost:
		like.CommunityPost = &id
	}
	return like
}

type LikeToggle struct {
	Liked bool  `json:"liked"`
	Like  *Like `json:"like,omitempty"`
}

type LikedVideo struct {
	LikeID  bson.ObjectID `json:"_id"     bson:"_id"`
	LikedAt time.Time     `json:"likedAt" bson:"createdAt"`
	Video   VideoDetail   `json:"video"   bson:"video"`
}

type LikeSummary struct {
	LikesCount int           `json:"likesCount" bson:"likesCount"`
	LikedBy    []UserSummary `json:"likedBy"    bson:"likedBy"`
}
