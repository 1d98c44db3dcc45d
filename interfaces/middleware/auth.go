package middleware

import (
	"errors"
	"strings"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/security"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	ContextUser   = "user"
	ContextUserID = "user_id"

	accessTokenCookie = "accessToken"
)

// Auth accepts the access token from the accessToken cookie or a Bearer
// header and loads its user. Every failure ends the request with 401.
func Auth(tokens security.ITokenManager, userRepository repository.IUser) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := TokenFromRequest(ctx, accessTokenCookie)
		if token == "" {
			abort(ctx, apperror.Unauthorized("Unauthorized request"))
			return
		}

		claims, err := tokens.ParseAccess(token)
		if err != nil {
			message := "Invalid access token"
			if errors.Is(err, security.ErrExpiredToken) {
				message = "Access token expired"
			}
			abort(ctx, apperror.Unauthorized(message))
			return
		}

		userID, err := bson.ObjectIDFromHex(claims.ID)
		if err != nil {
			abort(ctx, apperror.Unauthorized("Invalid access token"))
			return
		}
		user, err := userRepository.GetByID(ctx.Request.Context(), userID)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				logger.GetLogger().WithField("error", err).Error("Error while loading session user")
			}
			abort(ctx, apperror.Unauthorized("Invalid access token"))
			return
		}

		ctx.Set(ContextUser, user)
		ctx.Set(ContextUserID, user.ID.Hex())
		ctx.Next()
	}
}

// TokenFromRequest reads the named cookie, falling back to the
// Authorization: Bearer header.
func TokenFromRequest(ctx *gin.Context, cookie string) string {
	if value, err := ctx.Cookie(cookie); err == nil && value != "" {
		return value
	}
	scheme, token, ok := strings.Cut(ctx.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// CurrentUser returns the user stored by Auth.
func CurrentUser(ctx *gin.Context) (model.User, bool) {
	value, ok := ctx.Get(ContextUser)
	if !ok {
		return model.User{}, false
	}
	user, ok := value.(model.User)
	return user, ok
}

// CurrentUserID is the zero id for unauthenticated requests.
func CurrentUserID(ctx *gin.Context) bson.ObjectID {
	user, _ := CurrentUser(ctx)
	return user.ID
}

func abort(ctx *gin.Context, err *apperror.Error) {
	ctx.AbortWithStatusJSON(err.StatusCode, dto.NewErrorResponse(err))
}
