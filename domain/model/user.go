package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Asset is a file held by the media store.
type Asset struct {
	URL      string `json:"url"      bson:"url"`
	PublicID string `json:"publicId" bson:"publicId"`
}

func (a *Asset) IsZero() bool {
	return a == nil || a.PublicID == ""
}

type User struct {
	ID           bson.ObjectID   `json:"_id"                  bson:"_id,omitempty"`
	UserName     string          `json:"userName"             bson:"userName"`
	Email        string          `json:"email"                bson:"email"`
	FullName     string          `json:"fullName"             bson:"fullName"`
	Avatar       Asset           `json:"avatar"               bson:"avatar"`
	CoverImage   *Asset          `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	WatchHistory []bson.ObjectID `json:"watchHistory"         bson:"watchHistory"`
	Password     string          `json:"-"                    bson:"password,omitempty"`
	RefreshToken string          `json:"-"                    bson:"refreshToken,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"            bson:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"            bson:"updatedAt"`
}

// UserSummary is the public slice of a user embedded in joined results.
type UserSummary struct {
	ID       bson.ObjectID `json:"_id"      bson:"_id"`
	UserName string        `json:"userName" bson:"userName"`
	FullName string        `json:"fullName" bson:"fullName"`
	Avatar   Asset         `json:"avatar"   bson:"avatar"`
}

type ChannelProfile struct {
	ID                        bson.ObjectID `json:"_id"                  bson:"_id"`
	UserName                  string        `json:"userName"             bson:"userName"`
	FullName                  string        `json:"fullName"             bson:"fullName"`
	Email                     string        `json:"email"                bson:"email"`
	Avatar                    Asset         `json:"avatar"               bson:"avatar"`
	CoverImage                *Asset        `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	SubscribersCount          int           `json:"subscribersCount"     bson:"subscribersCount"`
	ChannelsSubscribedToCount int           `json:"channelsSubscribedToCount" bson:"channelsSubscribedToCount"`
	IsSubscribed              bool          `json:"isSubscribed"         bson:"isSubscribed"`
	VideosCount               int           `json:"videosCount"          bson:"videosCount"`
	CreatedAt                 time.Time     `json:"createdAt"            bson:"createdAt"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
