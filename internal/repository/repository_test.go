package repository

import (
	"testing"

	"go-blog-platform/internal/model"
	"go-blog-platform/pkg/db"
)

// setupTestDB opens a fresh in-memory database for each test.
func setupTestDB(t *testing.T) {
	t.Helper()
	if err := db.InitTestDB(); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
}

func createTestUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	if err := NewUserRepository().Create(user); err != nil {
		t.Fatalf("Failed to create test user %q: %v", username, err)
	}
	return user
}

func createTestGroup(t *testing.T, slug string) *model.Group {
	t.Helper()
	group := &model.Group{
		Title:       "Group " + slug,
		Slug:        slug,
		Description: "test group",
	}
	if err := NewGroupRepository().Create(group); err != nil {
		t.Fatalf("Failed to create test group %q: %v", slug, err)
	}
	return group
}

func createTestPost(t *testing.T, authorID uint, text string, groupID *uint) *model.Post {
	t.Helper()
	post := &model.Post{
		Text:     text,
		AuthorID: authorID,
		GroupID:  groupID,
	}
	if err := NewPostRepository().Create(post); err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}
	return post
}
