package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danevairena/SocialMediaBackend/internal/config"
	"github.com/danevairena/SocialMediaBackend/internal/middleware"
	"github.com/danevairena/SocialMediaBackend/pkg/avatar"

	commentHttp "github.com/danevairena/SocialMediaBackend/internal/modules/comment/delivery/http"
	commentRepo "github.com/danevairena/SocialMediaBackend/internal/modules/comment/repository"
	commentService "github.com/danevairena/SocialMediaBackend/internal/modules/comment/service"

	followHttp "github.com/danevairena/SocialMediaBackend/internal/modules/follow/delivery/http"
	followRepo "github.com/danevairena/SocialMediaBackend/internal/modules/follow/repository"
	followService "github.com/danevairena/SocialMediaBackend/internal/modules/follow/service"

	likeHttp "github.com/danevairena/SocialMediaBackend/internal/modules/like/delivery/http"
	likeRepo "github.com/danevairena/SocialMediaBackend/internal/modules/like/repository"
	likeService "github.com/danevairena/SocialMediaBackend/internal/modules/like/service"

	messageHttp "github.com/danevairena/SocialMediaBackend/internal/modules/message/delivery/http"
	messageRepo "github.com/danevairena/SocialMediaBackend/internal/modules/message/repository"
	messageService "github.com/danevairena/SocialMediaBackend/internal/modules/message/service"

	notiHttp "github.com/danevairena/SocialMediaBackend/internal/modules/notification/delivery/http"
	"github.com/danevairena/SocialMediaBackend/internal/modules/notification/fanout"
	notifRepo "github.com/danevairena/SocialMediaBackend/internal/modules/notification/repository"
	notifService "github.com/danevairena/SocialMediaBackend/internal/modules/notification/service"

	postRepo "github.com/danevairena/SocialMediaBackend/internal/modules/post/repository"

	userHttp "github.com/danevairena/SocialMediaBackend/internal/modules/user/delivery/http"
	userRepo "github.com/danevairena/SocialMediaBackend/internal/modules/user/repository"
	userService "github.com/danevairena/SocialMediaBackend/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	cfg         *config.Config
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
	log         *zap.Logger

	async  *fanout.AsyncDispatcher
	worker *fanout.Worker
}

// NewServer wires every module. redisClient may be nil, in which case
// notification fan-out runs on goroutines instead of the Redis queue.
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *zap.Logger) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	avatars := avatar.NewDecorator(cfg.AvatarBaseURL, cfg.DefaultAvatarPath)

	userRepository := userRepo.NewUserRepository(db)
	profiles := userService.NewProfileResolver(userRepository, avatars)
	authSvc := userService.NewAuthService(userRepository, profiles, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := userHttp.NewAuthHandler(authSvc)

	postRepository := postRepo.NewPostRepository(db)

	// Notification Module
	notificationRepository := notifRepo.NewNotificationRepository(db)
	notificationSvc := notifService.NewNotificationService(notificationRepository, profiles)
	notificationHandler := notiHttp.NewNotificationHandler(notificationSvc)

	async := fanout.NewAsyncDispatcher(notificationSvc, log, cfg.FanoutTimeout)
	var dispatcher fanout.Dispatcher = async
	var worker *fanout.Worker
	if redisClient != nil {
		dispatcher = fanout.NewQueueDispatcher(redisClient, cfg.FanoutQueueKey, async, log)
		worker = fanout.NewWorker(redisClient, cfg.FanoutQueueKey, notificationSvc, log, cfg.FanoutTimeout)
	}

	followSvc := followService.NewFollowService(followRepo.NewFollowRepository(db), profiles, dispatcher)
	followHandler := followHttp.NewFollowHandler(followSvc)

	likeSvc := likeService.NewLikeService(likeRepo.NewLikeRepository(db), postRepository, profiles, dispatcher, log)
	likeHandler := likeHttp.NewLikeHandler(likeSvc)

	commentSvc := commentService.NewCommentService(commentRepo.NewCommentRepository(db), postRepository, profiles, dispatcher, log)
	commentHandler := commentHttp.NewCommentHandler(commentSvc)

	messageSvc := messageService.NewMessageService(messageRepo.NewMessageRepository(db), profiles)
	messageHandler := messageHttp.NewMessageHandler(messageSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics())
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	s := &Server{
		cfg:         cfg,
		engine:      router,
		db:          db,
		redisClient: redisClient,
		log:         log,
		async:       async,
		worker:      worker,
	}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running!")
	})
	router.GET("/healthz", s.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// Follow and like endpoints take explicit ids in the request
	followHandler.RegisterRoutes(api.Group("/follow"))
	followHandler.RegisterRoutes(api.Group("/followers"))

	likes := api.Group("/likes")
	{
		likes.POST("", likeHandler.Like)
		likes.DELETE("", likeHandler.Unlike)
		likes.GET("/:postId", likeHandler.Likers)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/:postId", commentHandler.GetComments)
		comments.POST("", commentHandler.CreateComment)
		comments.DELETE("/:id", commentHandler.DeleteComment)
	}

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Notification routes
		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/unread-count", notificationHandler.GetUnreadCount)
		protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.POST("/notifications", notificationHandler.CreateNotification)

		// Message routes
		protected.GET("/messages/conversations", messageHandler.GetConversations)
		protected.GET("/messages/unread-count", messageHandler.GetUnreadCount)
		protected.GET("/messages/:userId", messageHandler.GetHistory)
		protected.POST("/messages", messageHandler.SendMessage)
		protected.PUT("/messages/seen/:userId", messageHandler.MarkSeen)
	}

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests and fan-out deliveries.
func (s *Server) Run(ctx context.Context) error {
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	workerDone := make(chan struct{})
	if s.worker != nil {
		go func() {
			defer close(workerDone)
			s.worker.Start(workerCtx)
		}()
	} else {
		close(workerDone)
	}

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)

	stopWorker()
	<-workerDone
	s.async.Wait()
	return err
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"database": "ok"}
	healthy := true

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		status["database"] = "unavailable"
		healthy = false
	}

	if s.redisClient != nil {
		status["redis"] = "ok"
		if err := s.redisClient.Ping(ctx).Err(); err != nil {
			status["redis"] = "unavailable"
			healthy = false
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}

func setupCORS(router *gin.Engine, origins []string) {
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
