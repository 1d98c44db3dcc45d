package http

import (
	"net/http"

	"vidtube/domain/model"
	"vidtube/interfaces/middleware"
	"vidtube/usecase"

	"github.com/gin-gonic/gin"
)

type ILikeHandler interface {
	ToggleVideoLike(c *gin.Context) error
	ToggleCommentLike(c *gin.Context) error
	TogglePostLike(c *gin.Context) error
	LikedVideos(c *gin.Context) error
	VideoLikes(c *gin.Context) error
	CommentLikes(c *gin.Context) error
	PostLikes(c *gin.Context) error
}

type LikeHandler struct {
	likeUsecase usecase.ILikeUsecase
}

func NewLikeHandler(likeUsecase usecase.ILikeUsecase) ILikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

func (h *LikeHandler) toggle(c *gin.Context, kind model.LikeKind, param string) error {
	res, err := h.likeUsecase.Toggle(c.Request.Context(), middleware.CurrentUserID(c), kind, c.Param(param))
	if err != nil {
		return err
	}
	if res.Liked {
		return respond(c, http.StatusCreated, res, "Liked successfully")
	}
	return respond(c, http.StatusOK, res, "Unliked successfully")
}

func (h *LikeHandler) likes(c *gin.Context, kind model.LikeKind, param string) error {
	summary, err := h.likeUsecase.Likes(c.Request.Context(), middleware.CurrentUserID(c), kind, c.Param(param))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, summary, "Likes fetched successfully")
}

func (h *LikeHandler) ToggleVideoLike(c *gin.Context) error {
	return h.toggle(c, model.LikeVideo, "videoId")
}

func (h *LikeHandler) ToggleCommentLike(c *gin.Context) error {
	return h.toggle(c, model.LikeComment, "commentId")
}

func (h *LikeHandler) TogglePostLike(c *gin.Context) error {
	return h.toggle(c, model.LikeCommunityPost, "postId")
}

func (h *LikeHandler) LikedVideos(c *gin.Context) error {
	videos, err := h.likeUsecase.LikedVideos(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, videos, "Liked videos fetched successfully")
}

func (h *LikeHandler) VideoLikes(c *gin.Context) error {
	return h.likes(c, model.LikeVideo, "videoId")
}

func (h *LikeHandler) CommentLikes(c *gin.Context) error {
	return h.likes(c, model.LikeComment, "commentId")
}

func (h *LikeHandler) PostLikes(c *gin.Context) error {
	return h.likes(c, model.LikeCommunityPost, "postId")
}
