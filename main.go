package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidtube/domain/repository"
	"vidtube/infrastructure/cache"
	"vidtube/infrastructure/configuration"
	"vidtube/infrastructure/events"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/persistence"
	"vidtube/infrastructure/pubsub"
	"vidtube/infrastructure/rabbitmq"
	"vidtube/infrastructure/realtime"
	"vidtube/infrastructure/security"
	"vidtube/infrastructure/servicebus"
	"vidtube/infrastructure/storage"
	httpHandler "vidtube/interfaces/http"
	"vidtube/server"
	"vidtube/usecase"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	loaded := configuration.LoadEnvFromFile("config.env", ".env")
	logger.GetLogger().WithField("files", loaded).Info("Env files loaded")

	cfg, err := configuration.Load()
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Invalid configuration")
	}
	if err := logger.Configure(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		File:       cfg.Logger.File,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAgeDays: cfg.Logger.MaxAgeDays,
	}); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Logger configuration rejected, keeping defaults")
	}

	mongoClient, err := persistence.NewMongoDb(ctx, cfg.Database.Mongo.MongoURI())
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("MongoDB connection failed")
	}
	defer func() {
		disconnectCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()
	db := mongoClient.Database(cfg.Database.Mongo.Name)
	if err := persistence.EnsureIndexes(ctx, db); err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Error while creating indexes")
	}

	mediaStorage, err := storage.NewS3Storage(ctx, storage.Config{
		Bucket:        cfg.Storage.Bucket,
		Region:        cfg.Storage.Region,
		Endpoint:      cfg.Storage.Endpoint,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Media storage initialization failed")
	}

	checks := map[string]httpHandler.HealthCheck{
		"mongo": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
	}

	var redisClient *redis.Client
	if addr := cfg.RedisClient.Addr(); addr != "" {
		redisClient, err = cache.NewCache(ctx, addr, cfg.RedisClient.Username, cfg.RedisClient.Password, cfg.RedisClient.DB)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Redis not available - using in-process rate limiting")
			redisClient = nil
		} else {
			defer redisClient.Close()
			checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		}
	}
	limiter := newLimiter(cfg.RateLimit, redisClient)

	hub := realtime.NewNotificationHub()
	broker, closeBroker := newEventSink(ctx, cfg.Events)
	defer closeBroker()
	dispatcher := events.NewDispatcher(broker, hub)

	tokens := security.NewJWTManager(security.TokenConfig{
		AccessSecret:  cfg.Auth.AccessTokenSecret,
		AccessTTL:     cfg.Auth.AccessTokenExpiry,
		RefreshSecret: cfg.Auth.RefreshTokenSecret,
		RefreshTTL:    cfg.Auth.RefreshTokenExpiry,
	})
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	userRepository := persistence.NewUserRepository(db)
	videoRepository := persistence.NewVideoRepository(db)
	commentRepository := persistence.NewCommentRepository(db)
	postRepository := persistence.NewCommunityPostRepository(db)
	likeRepository := persistence.NewLikeRepository(db)
	subscriptionRepository := persistence.NewSubscriptionRepository(db)

	userUsecase := usecase.NewUserUsecase(userRepository, mediaStorage, hasher, tokens, dispatcher)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, userRepository, mediaStorage, dispatcher)
	commentUsecase := usecase.NewCommentUsecase(commentRepository, videoRepository, dispatcher)
	likeUsecase := usecase.NewLikeUsecase(likeRepository, videoRepository, commentRepository, postRepository, dispatcher)
	postUsecase := usecase.NewCommunityPostUsecase(postRepository, userRepository)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepository, userRepository, dispatcher)

	cookies := httpHandler.CookieConfig{
		Secure:     cfg.Auth.CookieSecure,
		Domain:     cfg.Auth.CookieDomain,
		AccessTTL:  cfg.Auth.AccessTokenExpiry,
		RefreshTTL: cfg.Auth.RefreshTokenExpiry,
	}
	handlers := server.Handlers{
		User:          httpHandler.NewUserHandler(userUsecase, cookies, cfg.App.UploadDir),
		Video:         httpHandler.NewVideoHandler(videoUsecase, cfg.App.UploadDir),
		Comment:       httpHandler.NewCommentHandler(commentUsecase),
		Like:          httpHandler.NewLikeHandler(likeUsecase),
		CommunityPost: httpHandler.NewCommunityPostHandler(postUsecase),
		Subscription:  httpHandler.NewSubscriptionHandler(subscriptionUsecase),
		Health:        httpHandler.NewHealthHandler(checks),
		Notifications: hub.Serve,
	}
	router := server.InitiateRouter(server.Options{
		AllowOrigins:    cfg.Cors.AllowOrigins,
		MaxUploadMB:     cfg.App.MaxUploadMB,
		RateLimitPrefix: cfg.RateLimit.Prefix,
	}, handlers, tokens, userRepository, limiter)

	app := cfg.App
	logger.GetLogger().WithFields(map[string]interface{}{"port": app.Port, "tls": app.TLSEnabled}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", app.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}
		if app.TLSEnabled && app.TLSCertFile != "" && app.TLSKeyFile != "" {
			logger.GetLogger().WithFields(map[string]interface{}{"cert": app.TLSCertFile, "key": app.TLSKeyFile}).Info("Serving HTTPS")
			if err := httpServer.ListenAndServeTLS(app.TLSCertFile, app.TLSKeyFile); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
		if app.TLSEnabled {
			logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

func newLimiter(cfg configuration.RateLimit, redisClient *redis.Client) cache.ILimiter {
	if !cfg.Enabled {
		return nil
	}
	limiterCfg := cache.LimiterConfig{
		Capacity:       cfg.Capacity,
		RefillTokens:   cfg.RefillTokens,
		RefillInterval: cfg.RefillInterval,
		TTL:            cfg.TTL,
	}
	if redisClient != nil {
		return cache.NewTokenBucket(redisClient, limiterCfg)
	}
	return cache.NewLocalLimiter(limiterCfg)
}

// newEventSink connects the broker selected by cfg.Driver. A broker that
// cannot be reached is skipped; the returned func releases it.
func newEventSink(ctx context.Context, cfg configuration.Events) (repository.IEventPublisher, func()) {
	noop := func() {}
	switch cfg.Driver {
	case "rabbitmq":
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.Topic)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("RabbitMQ not available - continuing without broker")
			return nil, noop
		}
		return publisher, func() { _ = publisher.Close() }
	case "pubsub":
		client, err := pubsub.NewPubSub(ctx, cfg.PubsubProjectID)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("PubSub not available - continuing without broker")
			return nil, noop
		}
		return pubsub.NewEventPublisher(client, cfg.Topic), func() { _ = client.Close() }
	case "servicebus":
		client, err := servicebus.NewServiceBus(cfg.ServiceBusConnectionString, cfg.ServiceBusNamespace)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - continuing without broker")
			return nil, noop
		}
		return servicebus.NewEventPublisher(client, cfg.Topic), func() {
			closeCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			_ = client.Close(closeCtx)
		}
	default:
		return nil, noop
	}
}
