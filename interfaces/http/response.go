package http

import (
	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

// HandlerFunc is a gin handler that reports failures by returning them.
type HandlerFunc func(c *gin.Context) error

// Wrap renders an error returned by h as the response envelope.
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			WriteError(c, err)
		}
	}
}

func WriteError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	entry := logger.GetLogger().WithField("path", c.FullPath()).WithField("status", appErr.StatusCode)
	if appErr.StatusCode >= 500 {
		entry.WithField("error", err).Error("Request failed")
	} else {
		entry.WithField("error", appErr.Message).Debug("Request rejected")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(appErr.StatusCode, dto.NewErrorResponse(appErr))
}

func respond(c *gin.Context, status int, data interface{}, message string) error {
	c.JSON(status, dto.NewResponse(status, data, message))
	return nil
}
