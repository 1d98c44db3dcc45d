package usecase

import (
	"context"
	"errors"

	"vidtube/domain/apperror"
	"vidtube/domain/model"
	"vidtube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ILikeUsecase interface {
	Toggle(ctx context.Context, userID bson.ObjectID, kind model.LikeKind, targetID string) (model.LikeToggle, error)
	LikedVideos(ctx context.Context, userID bson.ObjectID) ([]model.LikedVideo, error)
	Likes(ctx context.Context, viewerID bson.ObjectID, kind model.LikeKind, targetID string) (model.LikeSummary, error)
}

type LikeUsecase struct {
	likes    repository.ILike
	videos   repository.IVideo
	comments repository.IComment
	posts    repository.ICommunityPost
	events   repository.IEventPublisher
}

func NewLikeUsecase(
	likes repository.ILike,
	videos repository.IVideo,
	comments repository.IComment,
	posts repository.ICommunityPost,
	events repository.IEventPublisher,
) ILikeUsecase {
	return &LikeUsecase{likes: likes, videos: videos, comments: comments, posts: posts, events: events}
}

var likeIDFields = map[model.LikeKind]string{
	model.LikeVideo:         "videoId",
	model.LikeComment:       "commentId",
	model.LikeCommunityPost: "postId",
}

// resolve validates that the target exists and returns its author so the
// like can be announced to them.
func (u *LikeUsecase) resolve(ctx context.Context, viewerID bson.ObjectID, kind model.LikeKind, targetID string) (model.LikeTarget, bson.ObjectID, error) {
	field, ok := likeIDFields[kind]
	if !ok {
		return model.LikeTarget{}, bson.ObjectID{}, apperror.BadRequest("Unknown like target")
	}
	id, err := parseID(targetID, field)
	if err != nil {
		return model.LikeTarget{}, bson.ObjectID{}, err
	}
	target := model.LikeTarget{Kind: kind, ID: id}

	switch kind {
	case model.LikeVideo:
		video, err := u.videos.GetByID(ctx, id)
		if err != nil {
			return target, bson.ObjectID{}, notFoundOr(err, "Video not found")
		}
		if !CanViewVideo(viewerID, video) {
			return target, bson.ObjectID{}, apperror.NotFound("Video not found")
		}
		return target, video.Owner, nil
	case model.LikeComment:
		comment, err := u.comments.GetByID(ctx, id)
		if err != nil {
			return target, bson.ObjectID{}, notFoundOr(err, "Comment not found")
		}
		return target, comment.Owner, nil
	default:
		post, err := u.posts.GetByID(ctx, id)
		if err != nil {
			return target, bson.ObjectID{}, notFoundOr(err, "Post not found")
		}
		return target, post.Owner, nil
	}
}

// Toggle removes the caller's like of the target if present, otherwise
// creates it. Two identical calls leave the target unliked.
func (u *LikeUsecase) Toggle(ctx context.Context, userID bson.ObjectID, kind model.LikeKind, targetID string) (model.LikeToggle, error) {
	target, author, err := u.resolve(ctx, userID, kind, targetID)
	if err != nil {
		return model.LikeToggle{}, err
	}

	removed, err := u.likes.Remove(ctx, target, userID)
	if err != nil {
		return model.LikeToggle{}, apperror.Internal(err)
	}
	if removed {
		return model.LikeToggle{Liked: false}, nil
	}

	like := model.NewLike(target, userID)
	if err := u.likes.Create(ctx, &like); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return model.LikeToggle{}, apperror.Internal(err)
		}
		// a concurrent toggle inserted it first
		existing, err := u.likes.Find(ctx, target, userID)
		if err != nil {
			return model.LikeToggle{}, notFoundOr(err, "Like not found")
		}
		return model.LikeToggle{Liked: true, Like: &existing}, nil
	}

	publish(ctx, u.events, model.EventLikeCreated, userID, author, target.ID)
	return model.LikeToggle{Liked: true, Like: &like}, nil
}

func (u *LikeUsecase) LikedVideos(ctx context.Context, userID bson.ObjectID) ([]model.LikedVideo, error) {
	videos, err := u.likes.LikedVideos(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return nonNil(videos), nil
}

func (u *LikeUsecase) Likes(ctx context.Context, viewerID bson.ObjectID, kind model.LikeKind, targetID string) (model.LikeSummary, error) {
	target, _, err := u.resolve(ctx, viewerID, kind, targetID)
	if err != nil {
		return model.LikeSummary{}, err
	}
	summary, err := u.likes.Summary(ctx, target)
	if err != nil {
		return model.LikeSummary{}, apperror.Internal(err)
	}
	summary.LikedBy = nonNil(summary.LikedBy)
	return summary, nil
}
