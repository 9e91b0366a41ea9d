package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-blog-platform/internal/middleware"
	"go-blog-platform/internal/model"
	"go-blog-platform/internal/repository"
	"go-blog-platform/internal/service"
	"go-blog-platform/pkg/cache"
	"go-blog-platform/pkg/config"
	"go-blog-platform/pkg/db"
	"go-blog-platform/pkg/logger"
	"go-blog-platform/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full route surface against a fresh in-memory
// database, mirroring cmd/server. The response cache is passed in so tests
// control whether caching is active.
func newTestRouter(t *testing.T, responseCache *cache.ResponseCache) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.GlobalConfig.JWT.Secret = "test-secret"
	config.GlobalConfig.JWT.Expiration = time.Hour
	require.NoError(t, logger.InitLogger("error", false))
	require.NoError(t, db.InitTestDB())

	userRepo := repository.NewUserRepository()
	groupRepo := repository.NewGroupRepository()
	postRepo := repository.NewPostRepository()
	commentRepo := repository.NewCommentRepository()
	followRepo := repository.NewFollowRepository()

	postService := service.NewPostService(postRepo, groupRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	feedService := service.NewFeedService(postRepo, groupRepo, userRepo, followRepo, 10)
	groupService := service.NewGroupService(groupRepo)
	authService := service.NewAuthService(userRepo)

	authHandler := NewAuthHandler(authService)
	postHandler := NewPostHandler(postService, commentService, feedService, nil, responseCache)
	groupHandler := NewGroupHandler(groupService, feedService, responseCache)
	profileHandler := NewProfileHandler(feedService)
	followHandler := NewFollowHandler(followService)
	commentHandler := NewCommentHandler(commentService)

	r := gin.New()
	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/login", authHandler.Login)
	r.GET("/api/posts", postHandler.Index)
	r.GET("/api/posts/:id", postHandler.Detail)
	r.GET("/api/groups", groupHandler.List)
	r.GET("/api/groups/:slug", groupHandler.Posts)

	viewer := r.Group("/api", middleware.OptionalAuthMiddleware())
	viewer.GET("/feed", postHandler.Feed)
	viewer.GET("/profiles/:username", profileHandler.Profile)

	protected := r.Group("/api", middleware.AuthMiddleware())
	protected.POST("/posts", postHandler.Create)
	protected.PUT("/posts/:id", postHandler.Update)
	protected.DELETE("/posts/:id", postHandler.Delete)
	protected.POST("/posts/:id/comments", commentHandler.Create)
	protected.POST("/groups", groupHandler.Create)
	protected.POST("/profiles/:username/follow", followHandler.Follow)
	protected.DELETE("/profiles/:username/follow", followHandler.Unfollow)

	return r
}

// newTestUserToken creates a user directly and returns it with a login token.
func newTestUserToken(t *testing.T, username string) (*model.User, string) {
	t.Helper()
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, repository.NewUserRepository().Create(user))

	token, err := utils.GenerateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}
