package http

import (
	"net/http"

	"vidtube/domain/dto"
	"vidtube/interfaces/middleware"
	"vidtube/usecase"

	"github.com/gin-gonic/gin"
)

type ICommentHandler interface {
	List(c *gin.Context) error
	Add(c *gin.Context) error
	Update(c *gin.Context) error
	Delete(c *gin.Context) error
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

func (h *CommentHandler) List(c *gin.Context) error {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return bindError(err)
	}
	page, err := h.commentUsecase.List(c.Request.Context(), middleware.CurrentUserID(c), c.Param("videoId"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, page, "Comments fetched successfully")
}

func (h *CommentHandler) Add(c *gin.Context) error {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	comment, err := h.commentUsecase.Add(c.Request.Context(), middleware.CurrentUserID(c), c.Param("videoId"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, comment, "Comment added successfully")
}

func (h *CommentHandler) Update(c *gin.Context) error {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	comment, err := h.commentUsecase.Update(c.Request.Context(), middleware.CurrentUserID(c), c.Param("commentId"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, comment, "Comment updated successfully")
}

func (h *CommentHandler) Delete(c *gin.Context) error {
	if err := h.commentUsecase.Delete(c.Request.Context(), middleware.CurrentUserID(c), c.Param("commentId")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, gin.H{}, "Comment deleted successfully")
}
