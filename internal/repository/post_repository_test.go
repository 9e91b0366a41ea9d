package repository

import (
	"testing"
	"time"

	"go-blog-platform/internal/model"
	"go-blog-platform/pkg/db"
)

func TestPostRepository_CreateAndFindByID(t *testing.T) {
	setupTestDB(t)
	repo := NewPostRepository()

	author := createTestUser(t, "writer")
	post := createTestPost(t, author.ID, "hello", nil)

	found, err := repo.FindByID(post.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found == nil {
		t.Fatal("Expected to find created post, got nil")
	}
	if found.Text != "hello" {
		t.Errorf("Expected text 'hello', got %q", found.Text)
	}
	if found.GroupID != nil {
		t.Errorf("Expected no group, got %v", *found.GroupID)
	}
	if found.Author.ID != author.ID {
		t.Errorf("Expected preloaded author %d, got %d", author.ID, found.Author.ID)
	}
	if found.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set on insert")
	}
}

func TestPostRepository_UpdateContent_KeepsCreatedAtAndAuthor(t *testing.T) {
	setupTestDB(t)
	repo := NewPostRepository()

	author := createTestUser(t, "writer")
	group := createTestGroup(t, "science")
	post := createTestPost(t, author.ID, "hello", nil)

	created, _ := repo.FindByID(post.ID)
	originalTime := created.CreatedAt

	if err := repo.UpdateContent(post.ID, "edited", &group.ID, "posts/pic.png"); err != nil {
		t.Fatalf("UpdateContent() error = %v", err)
	}

	edited, err := repo.FindByID(post.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if edited.Text != "edited" {
		t.Errorf("Expected text 'edited', got %q", edited.Text)
	}
	if edited.GroupID == nil || *edited.GroupID != group.ID {
		t.Errorf("Expected group %d, got %v", group.ID, edited.GroupID)
	}
	if edited.Image != "posts/pic.png" {
		t.Errorf("Expected image reference, got %q", edited.Image)
	}
	if !edited.CreatedAt.Equal(originalTime) {
		t.Errorf("CreatedAt changed from %v to %v on edit", originalTime, edited.CreatedAt)
	}
	if edited.AuthorID != author.ID {
		t.Errorf("AuthorID changed on edit: %d", edited.AuthorID)
	}

	// Clearing the group writes NULL rather than dropping the field.
	if err := repo.UpdateContent(post.ID, "edited", nil, ""); err != nil {
		t.Fatalf("UpdateContent() error = %v", err)
	}
	cleared, _ := repo.FindByID(post.ID)
	if cleared.GroupID != nil {
		t.Errorf("Expected group cleared to nil, got %v", *cleared.GroupID)
	}
}

func TestPostRepository_FindPage_Order(t *testing.T) {
	setupTestDB(t)
	repo := NewPostRepository()

	author := createTestUser(t, "writer")

	p1 := &model.Post{Text: "first", AuthorID: author.ID, CreatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}
	p2 := &model.Post{Text: "second", AuthorID: author.ID, CreatedAt: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)}
	if err := db.DB.Create(p1).Error; err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}
	if err := db.DB.Create(p2).Error; err != nil {
		t.Fatalf("Failed to create post: %v", err)
	}

	posts, err := repo.FindPage(0, 10)
	if err != nil {
		t.Fatalf("FindPage() error = %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("Expected 2 posts, got %d", len(posts))
	}
	if posts[0].Text != "second" || posts[1].Text != "first" {
		t.Errorf("Expected [second, first], got [%s, %s]", posts[0].Text, posts[1].Text)
	}
}

func TestPostRepository_GroupFilter(t *testing.T) {
	setupTestDB(t)
	repo := NewPostRepository()

	author := createTestUser(t, "writer")
	group := createTestGroup(t, "science")

	createTestPost(t, author.ID, "grouped", &group.ID)
	createTestPost(t, author.ID, "ungrouped", nil)

	posts, err := repo.FindByGroupPage(group.ID, 0, 10)
	if err != nil {
		t.Fatalf("FindByGroupPage() error = %v", err)
	}
	if len(posts) != 1 || posts[0].Text != "grouped" {
		t.Errorf("Expected only the grouped post, got %v", posts)
	}

	count, err := repo.CountByGroup(group.ID)
	if err != nil {
		t.Fatalf("CountByGroup() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}
}

func TestPostRepository_FindByAuthorsPage(t *testing.T) {
	setupTestDB(t)
	repo := NewPostRepository()

	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	carol := createTestUser(t, "carol")

	createTestPost(t, alice.ID, "from alice", nil)
	createTestPost(t, bob.ID, "from bob", nil)
	createTestPost(t, carol.ID, "from carol", nil)

	posts, err := repo.FindByAuthorsPage([]uint{alice.ID, bob.ID}, 0, 10)
	if err != nil {
		t.Fatalf("FindByAuthorsPage() error = %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("Expected 2 posts, got %d", len(posts))
	}
	for _, p := range posts {
		if p.AuthorID == carol.ID {
			t.Error("Post from unfollowed author leaked into result")
		}
	}

	empty, err := repo.FindByAuthorsPage(nil, 0, 10)
	if err != nil {
		t.Fatalf("FindByAuthorsPage(nil) error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty result for empty author set, got %d", len(empty))
	}
}

func TestPostRepository_Delete_CascadesComments(t *testing.T) {
	setupTestDB(t)
	repo := NewPostRepository()
	commentRepo := NewCommentRepository()

	author := createTestUser(t, "writer")
	post := createTestPost(t, author.ID, "doomed", nil)

	comment := &model.Comment{PostID: post.ID, AuthorID: author.ID, Text: "a comment"}
	if err := commentRepo.Create(comment); err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}

	if err := repo.Delete(post.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if found, _ := repo.FindByID(post.ID); found != nil {
		t.Error("Expected post to be deleted")
	}
	if n, _ := commentRepo.CountByPost(post.ID); n != 0 {
		t.Errorf("Expected 0 comments after delete, got %d", n)
	}
}
