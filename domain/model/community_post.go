package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CommunityPost struct {
	ID        bson.ObjectID `json:"_id"       bson:"_id,omitempty"`
	Content   string        `json:"content"   bson:"content"`
	Owner     bson.ObjectID `json:"owner"     bson:"owner"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

type PostDetail struct {
	CommunityPost `bson:",inline"`
	OwnerDetails  UserSummary `json:"ownerDetails" bson:"ownerDetails"`
	LikesCount    int         `json:"likesCount"   bson:"likesCount"`
}
