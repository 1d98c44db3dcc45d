package http

import (
	"net/http"

	"vidtube/domain/dto"
	"vidtube/interfaces/middleware"
	"vidtube/usecase"

	"github.com/gin-gonic/gin"
)

type ICommunityPostHandler interface {
	Create(c *gin.Context) error
	ListByUser(c *gin.Context) error
	Update(c *gin.Context) error
	Delete(c *gin.Context) error
}

type CommunityPostHandler struct {
	postUsecase usecase.ICommunityPostUsecase
}

func NewCommunityPostHandler(postUsecase usecase.ICommunityPostUsecase) ICommunityPostHandler {
	return &CommunityPostHandler{postUsecase: postUsecase}
}

func (h *CommunityPostHandler) Create(c *gin.Context) error {
	var req dto.CommunityPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	post, err := h.postUsecase.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, post, "Post created successfully")
}

func (h *CommunityPostHandler) ListByUser(c *gin.Context) error {
	posts, err := h.postUsecase.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, posts, "Posts fetched successfully")
}

func (h *CommunityPostHandler) Update(c *gin.Context) error {
	var req dto.CommunityPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	post, err := h.postUsecase.Update(c.Request.Context(), middleware.CurrentUserID(c), c.Param("postId"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, post, "Post updated successfully")
}

func (h *CommunityPostHandler) Delete(c *gin.Context) error {
	if err := h.postUsecase.Delete(c.Request.Context(), middleware.CurrentUserID(c), c.Param("postId")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, gin.H{}, "Post deleted successfully")
}
