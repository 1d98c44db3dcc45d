package persistence

import (
	"strings"

	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	secretsProjection = bson.D{{Key: "password", Value: 0}, {Key: "refreshToken", Value: 0}}
	summaryProjection = bson.D{{Key: "userName", Value: 1}, {Key: "fullName", Value: 1}, {Key: "avatar", Value: 1}}
)

// ownerStages joins the user referenced by localField as a single
// ownerDetails sub-document.
func ownerStages(localField string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionUsers},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "ownerDetails"},
			{Key: "pipeline", Value: bson.A{bson.D{{Key: "$project", Value: summaryProjection}}}},
		}}},
		{{Key: "$addFields", Value: bson.D{{Key: "ownerDetails", Value: bson.D{{Key: "$first", Value: "$ownerDetails"}}}}}},
	}
}

// likesCountStages adds likesCount for likes whose field points at _id.
func likesCountStages(field string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionLikes},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: field},
			{Key: "as", Value: "likes"},
			{Key: "pipeline", Value: bson.A{bson.D{{Key: "$project", Value: bson.D{{Key: "_id", Value: 1}}}}}},
		}}},
		{{Key: "$addFields", Value: bson.D{{Key: "likesCount", Value: bson.D{{Key: "$size", Value: "$likes"}}}}}},
		{{Key: "$project", Value: bson.D{{Key: "likes", Value: 0}}}},
	}
}

// paginatedStages splits the matched set into one page of docs (shaped by
// docStages) and the total count.
func paginatedStages(page, limit int, docStages ...bson.D) bson.D {
	page, limit = model.NormalizePage(page, limit)
	docs := bson.A{
		bson.D{{Key: "$skip", Value: int64((page - 1) * limit)}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
	}
	for _, stage := range docStages {
		docs = append(docs, stage)
	}
	return bson.D{{Key: "$facet", Value: bson.D{
		{Key: "docs", Value: docs},
		{Key: "total", Value: bson.A{bson.D{{Key: "$count", Value: "count"}}}},
	}}}
}

func videoListPipeline(q model.VideoQuery) mongo.Pipeline {
	match := bson.D{}
	if strings.TrimSpace(q.Search) != "" {
		match = append(match, bson.E{Key: "$text", Value: bson.D{{Key: "$search", Value: q.Search}}})
	}
	if q.OwnerID != nil {
		match = append(match, bson.E{Key: "owner", Value: *q.OwnerID})
	}
	if !q.IncludeUnpublished {
		match = append(match, bson.E{Key: "isPublished", Value: true})
	}

	sortBy := q.SortBy
	if !model.VideoSortFields[sortBy] {
		sortBy = "createdAt"
	}
	direction := -1
	if q.SortAsc {
		direction = 1
	}
	sort := bson.D{{Key: sortBy, Value: direction}}
	if sortBy != "createdAt" {
		sort = append(sort, bson.E{Key: "createdAt", Value: -1})
	}
	sort = append(sort, bson.E{Key: "_id", Value: direction})

	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: sort}},
		paginatedStages(q.Page, q.Limit, ownerStages("owner")...),
	}
}

func videoDetailPipeline(id bson.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}}}
	return append(pipeline, ownerStages("owner")...)
}

func channelProfilePipeline(userName string, viewerID bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "userName", Value: strings.ToLower(userName)}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionSubscriptions},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "channel"},
			{Key: "as", Value: "subscribers"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionSubscriptions},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "subscriber"},
			{Key: "as", Value: "subscribedTo"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionVideos},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "owner"},
			{Key: "as", Value: "videos"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "isPublished", Value: true}}}},
				bson.D{{Key: "$project", Value: bson.D{{Key: "_id", Value: 1}}}},
			}},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "subscribersCount", Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
			{Key: "channelsSubscribedToCount", Value: bson.D{{Key: "$size", Value: "$subscribedTo"}}},
			{Key: "videosCount", Value: bson.D{{Key: "$size", Value: "$videos"}}},
			{Key: "isSubscribed", Value: bson.D{{Key: "$in", Value: bson.A{viewerID, "$subscribers.subscriber"}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "fullName", Value: 1},
			{Key: "userName", Value: 1},
			{Key: "email", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "coverImage", Value: 1},
			{Key: "subscribersCount", Value: 1},
			{Key: "channelsSubscribedToCount", Value: 1},
			{Key: "isSubscribed", Value: 1},
			{Key: "videosCount", Value: 1},
			{Key: "createdAt", Value: 1},
		}}},
	}
}

func watchHistoryPipeline(userID bson.ObjectID) mongo.Pipeline {
	videoStages := bson.A{}
	for _, stage := range ownerStages("owner") {
		videoStages = append(videoStages, stage)
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: userID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionVideos},
			{Key: "localField", Value: "watchHistory"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "watchHistory"},
			{Key: "pipeline", Value: videoStages},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "watchHistory", Value: 1}}}},
	}
}

func commentListPipeline(videoID bson.ObjectID, page, limit int) mongo.Pipeline {
	docStages := append(ownerStages("owner"), likesCountStages(string(model.LikeComment))...)
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "video", Value: videoID}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		paginatedStages(page, limit, docStages...),
	}
}

func postsByOwnerPipeline(ownerID bson.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: ownerID}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	pipeline = append(pipeline, ownerStages("owner")...)
	return append(pipeline, likesCountStages(string(model.LikeCommunityPost))...)
}

func likedVideosPipeline(userID bson.ObjectID) mongo.Pipeline {
	videoStages := bson.A{}
	for _, stage := range ownerStages("owner") {
		videoStages = append(videoStages, stage)
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "likedBy", Value: userID},
			{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionVideos},
			{Key: "localField", Value: "video"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "video"},
			{Key: "pipeline", Value: videoStages},
		}}},
		// likes of deleted videos drop out here
		{{Key: "$unwind", Value: "$video"}},
		{{Key: "$match", Value: bson.D{{Key: "video.isPublished", Value: true}}}},
		{{Key: "$project", Value: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: 1}}}},
	}
}

func likeSummaryPipeline(target model.LikeTarget) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: target.Field(), Value: target.ID}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionUsers},
			{Key: "localField", Value: "likedBy"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
			{Key: "pipeline", Value: bson.A{bson.D{{Key: "$project", Value: summaryProjection}}}},
		}}},
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "likesCount", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "likedBy", Value: bson.D{{Key: "$push", Value: "$user"}}},
		}}},
	}
}

// subscriptionUsersPipeline lists the users on the other side of matchField.
func subscriptionUsersPipeline(matchField string, id bson.ObjectID, joinField string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: matchField, Value: id}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollectionUsers},
			{Key: "localField", Value: joinField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
			{Key: "pipeline", Value: bson.A{bson.D{{Key: "$project", Value: summaryProjection}}}},
		}}},
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$user"}}}},
	}
}
