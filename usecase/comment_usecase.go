package usecase

import (
	"context"
	"strings"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ICommentUsecase interface {
	List(ctx context.Context, viewerID bson.ObjectID, videoID string, req dto.PaginationRequest) (model.Page[model.CommentDetail], error)
	Add(ctx context.Context, userID bson.ObjectID, videoID string, req dto.CommentRequest) (model.Comment, error)
	Update(ctx context.Context, userID bson.ObjectID, commentID string, req dto.CommentRequest) (model.Comment, error)
	Delete(ctx context.Context, userID bson.ObjectID, commentID string) error
}

type CommentUsecase struct {
	comments repository.IComment
	videos   repository.IVideo
	events   repository.IEventPublisher
}

func NewCommentUsecase(comments repository.IComment, videos repository.IVideo, events repository.IEventPublisher) ICommentUsecase {
	return &CommentUsecase{comments: comments, videos: videos, events: events}
}

func (u *CommentUsecase) visibleVideo(ctx context.Context, viewerID bson.ObjectID, videoID string) (model.Video, error) {
	id, err := parseID(videoID, "videoId")
	if err != nil {
		return model.Video{}, err
	}
	video, err := u.videos.GetByID(ctx, id)
	if err != nil {
		return model.Video{}, notFoundOr(err, "Video not found")
	}
	if !CanViewVideo(viewerID, video) {
		return model.Video{}, apperror.NotFound("Video not found")
	}
	return video, nil
}

func (u *CommentUsecase) List(ctx context.Context, viewerID bson.ObjectID, videoID string, req dto.PaginationRequest) (model.Page[model.CommentDetail], error) {
	video, err := u.visibleVideo(ctx, viewerID, videoID)
	if err != nil {
		return model.Page[model.CommentDetail]{}, err
	}
	page, err := u.comments.ListByVideo(ctx, video.ID, req.Page, req.Limit)
	if err != nil {
		return model.Page[model.CommentDetail]{}, apperror.Internal(err)
	}
	return page, nil
}

func (u *CommentUsecase) Add(ctx context.Context, userID bson.ObjectID, videoID string, req dto.CommentRequest) (model.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return model.Comment{}, apperror.Validation([]apperror.FieldError{{Field: "content", Message: "is required"}})
	}
	video, err := u.visibleVideo(ctx, userID, videoID)
	if err != nil {
		return model.Comment{}, err
	}

	comment := model.Comment{Content: content, Video: video.ID, Owner: userID}
	if err := u.comments.Create(ctx, &comment); err != nil {
		return model.Comment{}, apperror.Internal(err)
	}
	publish(ctx, u.events, model.EventCommentCreated, userID, video.Owner, comment.ID)
	return comment, nil
}

func (u *CommentUsecase) find(ctx context.Context, commentID string) (model.Comment, error) {
	id, err := parseID(commentID, "commentId")
	if err != nil {
		return model.Comment{}, err
	}
	comment, err := u.comments.GetByID(ctx, id)
	if err != nil {
		return model.Comment{}, notFoundOr(err, "Comment not found")
	}
	return comment, nil
}

func (u *CommentUsecase) Update(ctx context.Context, userID bson.ObjectID, commentID string, req dto.CommentRequest) (model.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return model.Comment{}, apperror.Validation([]apperror.FieldError{{Field: "content", Message: "is required"}})
	}
	comment, err := u.find(ctx, commentID)
	if err != nil {
		return model.Comment{}, err
	}
	if !CanModifyComment(userID, comment) {
		return model.Comment{}, apperror.Forbidden("You are not allowed to edit this comment")
	}
	updated, err := u.comments.UpdateContent(ctx, comment.ID, content)
	if err != nil {
		return model.Comment{}, notFoundOr(err, "Comment not found")
	}
	return updated, nil
}

// Delete allows the comment author and the owner of the commented video.
func (u *CommentUsecase) Delete(ctx context.Context, userID bson.ObjectID, commentID string) error {
	comment, err := u.find(ctx, commentID)
	if err != nil {
		return err
	}

	var video *model.Video
	if !CanModifyComment(userID, comment) {
		found, err := u.videos.GetByID(ctx, comment.Video)
		switch {
		case err == nil:
			video = &found
		case !isNotFound(err):
			return apperror.Internal(err)
		}
	}
	if !CanDeleteComment(userID, comment, video) {
		return apperror.Forbidden("You are not allowed to delete this comment")
	}

	if err := u.comments.Delete(ctx, comment.ID); err != nil {
		return notFoundOr(err, "Comment not found")
	}
	return nil
}
