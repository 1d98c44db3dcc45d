package http

import (
	"net/http"

	"vidtube/domain/dto"
	"vidtube/interfaces/middleware"
	"vidtube/usecase"

	"github.com/gin-gonic/gin"
)

type IVideoHandler interface {
	List(c *gin.Context) error
	Publish(c *gin.Context) error
	Get(c *gin.Context) error
	Update(c *gin.Context) error
	Delete(c *gin.Context) error
	TogglePublish(c *gin.Context) error
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
	uploadDir    string
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase, uploadDir string) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase, uploadDir: uploadDir}
}

func (h *VideoHandler) List(c *gin.Context) error {
	var req dto.VideoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindError(err)
	}
	page, err := h.videoUsecase.List(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, page, "Videos fetched successfully")
}

func (h *VideoHandler) Publish(c *gin.Context) error {
	var req dto.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		return bindError(err)
	}

	files := newUploads(h.uploadDir)
	defer files.cleanup()
	videoPath, err := files.save(c, "videoFile")
	if err != nil {
		return err
	}
	thumbnailPath, err := files.save(c, "thumbnail")
	if err != nil {
		return err
	}

	video, err := h.videoUsecase.Publish(c.Request.Context(), middleware.CurrentUserID(c), dto.PublishVideoInput{
		Title:         req.Title,
		Description:   req.Description,
		Duration:      req.Duration,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, video, "Video published successfully")
}

func (h *VideoHandler) Get(c *gin.Context) error {
	video, err := h.videoUsecase.Get(c.Request.Context(), middleware.CurrentUserID(c), c.Param("videoId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, video, "Video fetched successfully")
}

func (h *VideoHandler) Update(c *gin.Context) error {
	var req dto.UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		return bindError(err)
	}

	files := newUploads(h.uploadDir)
	defer files.cleanup()
	thumbnailPath, err := files.save(c, "thumbnail")
	if err != nil {
		return err
	}

	video, err := h.videoUsecase.Update(c.Request.Context(), middleware.CurrentUserID(c), c.Param("videoId"), dto.UpdateVideoInput{
		Title:         req.Title,
		Description:   req.Description,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, video, "Video updated successfully")
}

func (h *VideoHandler) Delete(c *gin.Context) error {
	if err := h.videoUsecase.Delete(c.Request.Context(), middleware.CurrentUserID(c), c.Param("videoId")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, gin.H{}, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) error {
	video, err := h.videoUsecase.TogglePublish(c.Request.Context(), middleware.CurrentUserID(c), c.Param("videoId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, video, "Publish status toggled successfully")
}
