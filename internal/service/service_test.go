package service

import (
	"testing"
	"time"

	"go-blog-platform/internal/model"
	"go-blog-platform/internal/repository"
	"go-blog-platform/pkg/config"
	"go-blog-platform/pkg/db"

	"github.com/stretchr/testify/require"
)

// fixtures wires every service against a fresh in-memory database.
type fixtures struct {
	users    *repository.UserRepository
	groups   *repository.GroupRepository
	posts    *repository.PostRepository
	comments *repository.CommentRepository
	follows  *repository.FollowRepository

	auth     *AuthService
	post     *PostService
	comment  *CommentService
	follow   *FollowService
	feed     *FeedService
	groupSvc *GroupService
}

func setup(t *testing.T) *fixtures {
	t.Helper()
	require.NoError(t, db.InitTestDB(), "failed to initialize test database")

	config.GlobalConfig.JWT.Secret = "test-secret"
	config.GlobalConfig.JWT.Expiration = time.Hour

	f := &fixtures{
		users:    repository.NewUserRepository(),
		groups:   repository.NewGroupRepository(),
		posts:    repository.NewPostRepository(),
		comments: repository.NewCommentRepository(),
		follows:  repository.NewFollowRepository(),
	}
	f.auth = NewAuthService(f.users)
	f.post = NewPostService(f.posts, f.groups)
	f.comment = NewCommentService(f.comments, f.posts)
	f.follow = NewFollowService(f.follows, f.users)
	f.feed = NewFeedService(f.posts, f.groups, f.users, f.follows, 10)
	f.groupSvc = NewGroupService(f.groups)
	return f
}

func (f *fixtures) user(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, f.users.Create(user))
	return user
}

func (f *fixtures) postAt(t *testing.T, authorID uint, text string, at time.Time) *model.Post {
	t.Helper()
	post := &model.Post{Text: text, AuthorID: authorID, CreatedAt: at}
	require.NoError(t, db.DB.Create(post).Error)
	return post
}

func countFollows(t *testing.T, userID, authorID uint) int64 {
	t.Helper()
	var n int64
	err := db.DB.Model(&model.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&n).Error
	require.NoError(t, err)
	return n
}
