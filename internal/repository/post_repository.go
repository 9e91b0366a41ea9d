package repository

import (
	"errors"

	"go-blog-platform/internal/model"
	"go-blog-platform/pkg/db"

	"gorm.io/gorm"
)

// PostRepository handles post persistence. Every list query preloads Author
// and Group so rendering never needs per-post secondary lookups, and orders
// by creation time descending (id descending as a tie-breaker).
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository() *PostRepository {
	return &PostRepository{db: db.DB}
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

// FindByID returns nil when the post does not exist.
func (r *PostRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	err := r.db.Preload("Author").Preload("Group").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) listQuery() *gorm.DB {
	return r.db.Model(&model.Post{}).
		Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC")
}

// FindPage returns one page of all posts, newest first.
func (r *PostRepository) FindPage(offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.listQuery().Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *PostRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Count(&count).Error
	return count, err
}

// FindByGroupPage returns one page of a group's posts, newest first.
func (r *PostRepository) FindByGroupPage(groupID uint, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.listQuery().Where("group_id = ?", groupID).
		Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountByGroup(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// FindByAuthorPage returns one page of an author's posts, newest first.
func (r *PostRepository) FindByAuthorPage(authorID uint, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.listQuery().Where("author_id = ?", authorID).
		Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// FindByAuthorsPage returns one page of posts whose author is in authorIDs,
// newest first. An empty author set yields an empty page.
func (r *PostRepository) FindByAuthorsPage(authorIDs []uint, offset, limit int) ([]model.Post, error) {
	if len(authorIDs) == 0 {
		return []model.Post{}, nil
	}
	var posts []model.Post
	err := r.listQuery().Where("author_id IN ?", authorIDs).
		Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountByAuthors(authorIDs []uint) (int64, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&model.Post{}).Where("author_id IN ?", authorIDs).Count(&count).Error
	return count, err
}

// UpdateContent mutates the editable columns only. AuthorID and CreatedAt
// never change after insert; the explicit Select keeps a nil group write
// from being dropped as a zero value.
func (r *PostRepository) UpdateContent(id uint, text string, groupID *uint, image string) error {
	return r.db.Model(&model.Post{ID: id}).
		Select("text", "group_id", "image").
		Updates(map[string]interface{}{
			"text":     text,
			"group_id": groupID,
			"image":    image,
		}).Error
}

// Delete removes a post and its comments in one transaction.
func (r *PostRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}
