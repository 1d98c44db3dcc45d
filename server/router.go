package server

import (
	"time"

	"vidtube/domain/apperror"
	"vidtube/domain/repository"
	"vidtube/infrastructure/cache"
	"vidtube/infrastructure/security"
	httpHandler "vidtube/interfaces/http"
	"vidtube/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	User          httpHandler.IUserHandler
	Video         httpHandler.IVideoHandler
	Comment       httpHandler.ICommentHandler
	Like          httpHandler.ILikeHandler
	CommunityPost httpHandler.ICommunityPostHandler
	Subscription  httpHandler.ISubscriptionHandler
	Health        httpHandler.IHealthHandler
	// Notifications streams live events to the signed in user.
	Notifications gin.HandlerFunc
}

type Options struct {
	AllowOrigins    []string
	MaxUploadMB     int
	RateLimitPrefix string
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowOriginFunc = func(string) bool { return true }
			return cfg
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	cfg.AllowOrigins = origins
	return cfg
}

func InitiateRouter(
	opts Options,
	handlers Handlers,
	tokens security.ITokenManager,
	userRepository repository.IUser,
	limiter cache.ILimiter,
) *gin.Engine {
	httpHandler.RegisterValidations()

	router := gin.New()
	if opts.MaxUploadMB > 0 {
		router.MaxMultipartMemory = int64(opts.MaxUploadMB) << 20
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(corsConfig(opts.AllowOrigins)))

	wrap := httpHandler.Wrap
	limited := middleware.RateLimit(limiter, opts.RateLimitPrefix)
	auth := middleware.Auth(tokens, userRepository)

	router.GET("/healthz", wrap(handlers.Health.Check))
	router.NoRoute(func(c *gin.Context) {
		httpHandler.WriteError(c, apperror.NotFound("Route not found"))
	})

	api := router.Group("/api/v1")

	users := api.Group("/users")
	{
		users.POST("/register", limited, wrap(handlers.User.Register))
		users.POST("/login", limited, wrap(handlers.User.Login))
		users.POST("/refresh-token", limited, wrap(handlers.User.RefreshToken))

		secured := users.Group("", auth)
		secured.POST("/logout", wrap(handlers.User.Logout))
		secured.GET("/current-user", wrap(handlers.User.CurrentUser))
		secured.PATCH("/change-password", wrap(handlers.User.ChangePassword))
		secured.PATCH("/account", wrap(handlers.User.UpdateAccount))
		secured.PATCH("/avatar", wrap(handlers.User.UpdateAvatar))
		secured.PATCH("/cover-image", wrap(handlers.User.UpdateCoverImage))
		secured.GET("/channel/:userName", wrap(handlers.User.ChannelProfile))
		secured.GET("/history", wrap(handlers.User.WatchHistory))
	}

	videos := api.Group("/videos", auth)
	{
		videos.GET("", wrap(handlers.Video.List))
		videos.POST("", wrap(handlers.Video.Publish))
		videos.GET("/:videoId", wrap(handlers.Video.Get))
		videos.PATCH("/:videoId", wrap(handlers.Video.Update))
		videos.DELETE("/:videoId", wrap(handlers.Video.Delete))
		videos.PATCH("/toggle/publish/:videoId", wrap(handlers.Video.TogglePublish))
	}

	comments := api.Group("/comments", auth)
	{
		comments.GET("/:videoId", wrap(handlers.Comment.List))
		comments.POST("/:videoId", wrap(handlers.Comment.Add))
		comments.PATCH("/c/:commentId", wrap(handlers.Comment.Update))
		comments.DELETE("/c/:commentId", wrap(handlers.Comment.Delete))
	}

	likes := api.Group("/likes", auth)
	{
		likes.POST("/toggle/v/:videoId", wrap(handlers.Like.ToggleVideoLike))
		likes.POST("/toggle/c/:commentId", wrap(handlers.Like.ToggleCommentLike))
		likes.POST("/toggle/p/:postId", wrap(handlers.Like.TogglePostLike))
		likes.GET("/videos", wrap(handlers.Like.LikedVideos))
		likes.GET("/v/:videoId", wrap(handlers.Like.VideoLikes))
		likes.GET("/c/:commentId", wrap(handlers.Like.CommentLikes))
		likes.GET("/p/:postId", wrap(handlers.Like.PostLikes))
	}

	posts := api.Group("/posts", auth)
	{
		posts.POST("", wrap(handlers.CommunityPost.Create))
		posts.GET("/user/:userId", wrap(handlers.CommunityPost.ListByUser))
		posts.PATCH("/:postId", wrap(handlers.CommunityPost.Update))
		posts.DELETE("/:postId", wrap(handlers.CommunityPost.Delete))
	}

	subscriptions := api.Group("/subscriptions", auth)
	{
		subscriptions.POST("/c/:channelId", wrap(handlers.Subscription.Toggle))
		subscriptions.GET("/c/:channelId", wrap(handlers.Subscription.Subscribers))
		subscriptions.GET("/u/:subscriberId", wrap(handlers.Subscription.SubscribedChannels))
	}

	if handlers.Notifications != nil {
		api.GET("/notifications/stream", auth, handlers.Notifications)
	}

	return router
}
