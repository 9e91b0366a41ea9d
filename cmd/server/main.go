package main

import (
	"log"

	"go-blog-platform/internal/api"
	"go-blog-platform/internal/middleware"
	"go-blog-platform/internal/repository"
	"go-blog-platform/internal/service"
	"go-blog-platform/pkg/cache"
	"go-blog-platform/pkg/config"
	"go-blog-platform/pkg/db"
	"go-blog-platform/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitLogger("info", false); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := db.InitDB(); err != nil {
		logger.L.Fatal("Failed to initialize database", zap.Error(err))
	}

	cfg := config.GlobalConfig

	userRepo := repository.NewUserRepository()
	groupRepo := repository.NewGroupRepository()
	postRepo := repository.NewPostRepository()
	commentRepo := repository.NewCommentRepository()
	followRepo := repository.NewFollowRepository()

	authService := service.NewAuthService(userRepo)
	postService := service.NewPostService(postRepo, groupRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	feedService := service.NewFeedService(postRepo, groupRepo, userRepo, followRepo, cfg.Feed.PageSize)
	groupService := service.NewGroupService(groupRepo)

	imageService, err := service.NewImageService(cfg.Upload.Dir, cfg.Upload.MaxImageSize)
	if err != nil {
		logger.L.Fatal("Failed to initialize image storage", zap.Error(err))
	}

	responseCache := cache.New(cfg.Feed.CacheTTL)

	authHandler := api.NewAuthHandler(authService)
	postHandler := api.NewPostHandler(postService, commentService, feedService, imageService, responseCache)
	groupHandler := api.NewGroupHandler(groupService, feedService, responseCache)
	profileHandler := api.NewProfileHandler(feedService)
	followHandler := api.NewFollowHandler(followService)
	commentHandler := api.NewCommentHandler(commentService)

	r := gin.New()
	r.Use(middleware.GinZapLogger(), gin.Recovery())

	// Uploaded images are served straight from disk by their reference.
	r.Static("/media", imageService.BaseDir())

	apiRoutes := r.Group("/api")
	{
		apiRoutes.POST("/auth/register", authHandler.Register)
		apiRoutes.POST("/auth/login", authHandler.Login)

		apiRoutes.GET("/posts", postHandler.Index)
		apiRoutes.GET("/posts/:id", postHandler.Detail)
		apiRoutes.GET("/groups", groupHandler.List)
		apiRoutes.GET("/groups/:slug", groupHandler.Posts)
	}

	// Personalized but anonymous-safe views.
	viewer := r.Group("/api", middleware.OptionalAuthMiddleware())
	{
		viewer.GET("/feed", postHandler.Feed)
		viewer.GET("/profiles/:username", profileHandler.Profile)
	}

	protected := r.Group("/api", middleware.AuthMiddleware())
	{
		protected.POST("/posts", postHandler.Create)
		protected.PUT("/posts/:id", postHandler.Update)
		protected.DELETE("/posts/:id", postHandler.Delete)
		protected.POST("/posts/:id/comments", commentHandler.Create)
		protected.POST("/groups", groupHandler.Create)
		protected.POST("/profiles/:username/follow", followHandler.Follow)
		protected.DELETE("/profiles/:username/follow", followHandler.Unfollow)
	}

	logger.L.Info("Starting server")
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.L.Fatal("Failed to start server", zap.Error(err))
	}
}
