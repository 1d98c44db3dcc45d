package usecase

import (
	"context"
	"strings"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	FolderVideos     = "videos"
	FolderThumbnails = "thumbnails"
)

type IVideoUsecase interface {
	List(ctx context.Context, viewerID bson.ObjectID, req dto.VideoListRequest) (model.Page[model.VideoDetail], error)
	Publish(ctx context.Context, ownerID bson.ObjectID, input dto.PublishVideoInput) (model.Video, error)
	Get(ctx context.Context, viewerID bson.ObjectID, videoID string) (model.VideoDetail, error)
	Update(ctx context.Context, userID bson.ObjectID, videoID string, input dto.UpdateVideoInput) (model.Video, error)
	Delete(ctx context.Context, userID bson.ObjectID, videoID string) error
	TogglePublish(ctx context.Context, userID bson.ObjectID, videoID string) (model.Video, error)
}

type VideoUsecase struct {
	videos repository.IVideo
	users  repository.IUser
	media  repository.IMediaStorage
	events repository.IEventPublisher
}

func NewVideoUsecase(
	videos repository.IVideo,
	users repository.IUser,
	media repository.IMediaStorage,
	events repository.IEventPublisher,
) IVideoUsecase {
	return &VideoUsecase{videos: videos, users: users, media: media, events: events}
}

func (u *VideoUsecase) List(ctx context.Context, viewerID bson.ObjectID, req dto.VideoListRequest) (model.Page[model.VideoDetail], error) {
	query := model.VideoQuery{
		Page:    req.Page,
		Limit:   req.Limit,
		Search:  strings.TrimSpace(req.Query),
		SortBy:  req.SortBy,
		SortAsc: req.SortType == "asc",
	}
	if query.SortBy == "" {
		query.SortBy = "createdAt"
	}
	if req.UserID != "" {
		ownerID, err := parseID(req.UserID, "userId")
		if err != nil {
			return model.Page[model.VideoDetail]{}, err
		}
		query.OwnerID = &ownerID
		query.IncludeUnpublished = !viewerID.IsZero() && ownerID == viewerID
	}

	page, err := u.videos.List(ctx, query)
	if err != nil {
		return model.Page[model.VideoDetail]{}, apperror.Internal(err)
	}
	return page, nil
}

func (u *VideoUsecase) Publish(ctx context.Context, ownerID bson.ObjectID, input dto.PublishVideoInput) (model.Video, error) {
	if input.VideoPath == "" {
		return model.Video{}, apperror.BadRequest("Video file is required")
	}
	if input.ThumbnailPath == "" {
		return model.Video{}, apperror.BadRequest("Thumbnail is required")
	}

	videoFile, err := u.media.Upload(ctx, input.VideoPath, FolderVideos)
	if err != nil {
		return model.Video{}, apperror.Internal(err)
	}
	thumbnail, err := u.media.Upload(ctx, input.ThumbnailPath, FolderThumbnails)
	if err != nil {
		discard(ctx, u.media, videoFile)
		return model.Video{}, apperror.Internal(err)
	}

	video := model.Video{
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Duration:    input.Duration,
		IsPublished: true,
		Owner:       ownerID,
	}
	if err := u.videos.Create(ctx, &video); err != nil {
		discard(ctx, u.media, videoFile, thumbnail)
		return model.Video{}, apperror.Internal(err)
	}

	publish(ctx, u.events, model.EventVideoPublished, ownerID, bson.ObjectID{}, video.ID)
	return video, nil
}

// Get returns the video with its owner, counts the view and records it in
// the viewer's watch history.
func (u *VideoUsecase) Get(ctx context.Context, viewerID bson.ObjectID, videoID string) (model.VideoDetail, error) {
	id, err := parseID(videoID, "videoId")
	if err != nil {
		return model.VideoDetail{}, err
	}
	detail, err := u.videos.GetDetail(ctx, id)
	if err != nil {
		return model.VideoDetail{}, notFoundOr(err, "Video not found")
	}
	if !CanViewVideo(viewerID, detail.Video) {
		return model.VideoDetail{}, apperror.NotFound("Video not found")
	}

	if err := u.videos.IncrementViews(ctx, id); err != nil {
		logger.GetLogger().WithField("error", err).WithField("video_id", videoID).Warn("Failed to increment views")
	} else {
		detail.Views++
	}
	if !viewerID.IsZero() {
		if err := u.users.AddToWatchHistory(ctx, viewerID, id); err != nil {
			logger.GetLogger().WithField("error", err).WithField("video_id", videoID).Warn("Failed to update watch history")
		}
	}
	return detail, nil
}

func (u *VideoUsecase) owned(ctx context.Context, userID bson.ObjectID, videoID string) (model.Video, error) {
	id, err := parseID(videoID, "videoId")
	if err != nil {
		return model.Video{}, err
	}
	video, err := u.videos.GetByID(ctx, id)
	if err != nil {
		return model.Video{}, notFoundOr(err, "Video not found")
	}
	if !CanModifyVideo(userID, video) {
		return model.Video{}, apperror.Forbidden("You are not allowed to modify this video")
	}
	return video, nil
}

func (u *VideoUsecase) Update(ctx context.Context, userID bson.ObjectID, videoID string, input dto.UpdateVideoInput) (model.Video, error) {
	video, err := u.owned(ctx, userID, videoID)
	if err != nil {
		return model.Video{}, err
	}
	if input.Title == nil && input.Description == nil && input.ThumbnailPath == "" {
		return model.Video{}, apperror.BadRequest("Nothing to update")
	}

	update := model.VideoUpdate{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		update.Title = &title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		update.Description = &description
	}
	if input.ThumbnailPath != "" {
		thumbnail, err := u.media.Upload(ctx, input.ThumbnailPath, FolderThumbnails)
		if err != nil {
			return model.Video{}, apperror.Internal(err)
		}
		update.Thumbnail = &thumbnail
	}

	updated, err := u.videos.Update(ctx, video.ID, update)
	if err != nil {
		if update.Thumbnail != nil {
			discard(ctx, u.media, *update.Thumbnail)
		}
		return model.Video{}, notFoundOr(err, "Video not found")
	}
	if update.Thumbnail != nil {
		discard(ctx, u.media, video.Thumbnail)
	}
	return updated, nil
}

func (u *VideoUsecase) Delete(ctx context.Context, userID bson.ObjectID, videoID string) error {
	video, err := u.owned(ctx, userID, videoID)
	if err != nil {
		return err
	}
	if err := u.videos.Delete(ctx, video.ID); err != nil {
		return notFoundOr(err, "Video not found")
	}
	discard(ctx, u.media, video.VideoFile, video.Thumbnail)
	publish(ctx, u.events, model.EventVideoDeleted, userID, bson.ObjectID{}, video.ID)
	return nil
}

func (u *VideoUsecase) TogglePublish(ctx context.Context, userID bson.ObjectID, videoID string) (model.Video, error) {
	video, err := u.owned(ctx, userID, videoID)
	if err != nil {
		return model.Video{}, err
	}
	updated, err := u.videos.SetPublished(ctx, video.ID, !video.IsPublished)
	if err != nil {
		return model.Video{}, notFoundOr(err, "Video not found")
	}
	return updated, nil
}
