package middleware

import (
	"fmt"
	"net/http"

	"vidtube/domain/apperror"
	"vidtube/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered interface{}) {
		logger.GetLogger().
			WithField("panic", fmt.Sprint(recovered)).
			WithField("path", ctx.Request.URL.Path).
			Error("Panic recovered")
		abort(ctx, apperror.New(http.StatusInternalServerError, "Something went wrong"))
	})
}
