package usecase

import (
	"vidtube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Authorization rules, one per resource type.

func CanModifyVideo(userID bson.ObjectID, video model.Video) bool {
	return !userID.IsZero() && video.Owner == userID
}

func CanModifyComment(userID bson.ObjectID, comment model.Comment) bool {
	return !userID.IsZero() && comment.Owner == userID
}

// CanDeleteComment lets the comment author or the owner of the commented
// video remove a comment.
func CanDeleteComment(userID bson.ObjectID, comment model.Comment, video *model.Video) bool {
	if CanModifyComment(userID, comment) {
		return true
	}
	return video != nil && video.ID == comment.Video && CanModifyVideo(userID, *video)
}

func CanModifyPost(userID bson.ObjectID, post model.CommunityPost) bool {
	return !userID.IsZero() && post.Owner == userID
}

// CanViewVideo hides unpublished videos from everyone but their owner.
func CanViewVideo(userID bson.ObjectID, video model.Video) bool {
	return video.IsPublished || CanModifyVideo(userID, video)
}
