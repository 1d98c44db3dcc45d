package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscription means Subscriber follows Channel (both users).
type Subscription struct {
	ID         bson.ObjectID `json:"_id"        bson:"_id,omitempty"`
	Subscriber bson.ObjectID `json:"subscriber" bson:"subscriber"`
	Channel    bson.ObjectID `json:"channel"    bson:"channel"`
	CreatedAt  time.Time     `json:"createdAt"  bson:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"  bson:"updatedAt"`
}

type SubscriptionToggle struct {
	Subscribed bool `json:"subscribed"`
}
