package persistence

import (
	"errors"
	"strings"
	"testing"

	"vidtube/domain/model"
	"vidtube/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func toJSON(t *testing.T, v interface{}) string {
	t.Helper()
	out, err := bson.MarshalExtJSON(bson.D{{Key: "v", Value: v}}, false, false)
	require.NoError(t, err)
	return strings.ReplaceAll(string(out), " ", "")
}

func TestVideoListPipeline(t *testing.T) {
	owner := bson.NewObjectID()

	t.Run("search, owner and ascending sort", func(t *testing.T) {
		js := toJSON(t, videoListPipeline(model.VideoQuery{
			Page:    3,
			Limit:   5,
			Search:  "cats",
			SortBy:  "views",
			SortAsc: true,
			OwnerID: &owner,
		}))

		assert.Contains(t, js, `{"$match":{"$text":{"$search":"cats"},"owner":{"$oid":"`+owner.Hex()+`"},"isPublished":true}}`)
		assert.Contains(t, js, `{"$sort":{"views":1,"createdAt":-1,"_id":1}}`)
		assert.Contains(t, js, `{"$skip":10}`)
		assert.Contains(t, js, `{"$limit":5}`)
		assert.Contains(t, js, `"as":"ownerDetails"`)
		assert.Contains(t, js, `"total":[{"$count":"count"}]`)
	})

	t.Run("defaults and unpublished", func(t *testing.T) {
		js := toJSON(t, videoListPipeline(model.VideoQuery{SortBy: "$where", IncludeUnpublished: true}))

		assert.Contains(t, js, `{"$match":{}}`)
		assert.Contains(t, js, `{"$sort":{"createdAt":-1,"_id":-1}}`)
		assert.Contains(t, js, `{"$skip":0}`)
		assert.Contains(t, js, `{"$limit":10}`)
		assert.NotContains(t, js, "$where")
	})
}

func TestChannelProfilePipeline(t *testing.T) {
	viewer := bson.NewObjectID()
	js := toJSON(t, channelProfilePipeline("Jane", viewer))

	assert.Contains(t, js, `{"$match":{"userName":"jane"}}`)
	assert.Contains(t, js, `"foreignField":"channel","as":"subscribers"`)
	assert.Contains(t, js, `"foreignField":"subscriber","as":"subscribedTo"`)
	assert.Contains(t, js, `"subscribersCount":{"$size":"$subscribers"}`)
	assert.Contains(t, js, `"isSubscribed":{"$in":[{"$oid":"`+viewer.Hex()+`"},"$subscribers.subscriber"]}`)
	assert.NotContains(t, js, "password")
}

func TestWatchHistoryPipeline(t *testing.T) {
	js := toJSON(t, watchHistoryPipeline(bson.NewObjectID()))

	assert.Contains(t, js, `"localField":"watchHistory","foreignField":"_id","as":"watchHistory"`)
	// owner joined inside the videos lookup
	assert.Contains(t, js, `"pipeline":[{"$lookup":{"from":"users","localField":"owner"`)
}

func TestLikePipelines(t *testing.T) {
	id := bson.NewObjectID()

	js := toJSON(t, likeSummaryPipeline(model.LikeTarget{Kind: model.LikeCommunityPost, ID: id}))
	assert.Contains(t, js, `{"$match":{"communityPost":{"$oid":"`+id.Hex()+`"}}}`)
	assert.Contains(t, js, `"likesCount":{"$sum":1}`)

	js = toJSON(t, likedVideosPipeline(id))
	assert.Contains(t, js, `"video":{"$exists":true}`)
	assert.Contains(t, js, `{"$unwind":"$video"}`)
	assert.Contains(t, js, `{"$match":{"video.isPublished":true}}`)
}

func TestCommentListPipeline(t *testing.T) {
	js := toJSON(t, commentListPipeline(bson.NewObjectID(), 2, 20))

	assert.Contains(t, js, `{"$skip":20}`)
	assert.Contains(t, js, `"foreignField":"comment","as":"likes"`)
	assert.Contains(t, js, `"likesCount":{"$size":"$likes"}`)
}

func TestSubscriptionUsersPipeline(t *testing.T) {
	js := toJSON(t, subscriptionUsersPipeline("channel", bson.NewObjectID(), "subscriber"))

	assert.Contains(t, js, `"localField":"subscriber"`)
	assert.Contains(t, js, `{"$replaceRoot":{"newRoot":"$user"}}`)
}

func TestIndexModels_LikesArePartialUnique(t *testing.T) {
	models := indexModels()[CollectionLikes]
	require.Len(t, models, 3)

	js := toJSON(t, models[1].Keys)
	assert.Equal(t, `{"v":{"likedBy":1,"comment":1}}`, js)
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError("op", nil))
	assert.ErrorIs(t, mapError("op", mongo.ErrNoDocuments), repository.ErrNotFound)

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	assert.ErrorIs(t, mapError("op", dup), repository.ErrDuplicate)

	other := errors.New("boom")
	err := mapError("insert user", other)
	assert.ErrorIs(t, err, other)
	assert.Contains(t, err.Error(), "insert user")
}

func TestFacetResultTotal(t *testing.T) {
	var empty facetResult[model.Video]
	assert.Zero(t, empty.total())

	full := facetResult[model.Video]{Total: []struct {
		Count int64 `bson:"count"`
	}{{Count: 7}}}
	assert.Equal(t, int64(7), full.total())
}
