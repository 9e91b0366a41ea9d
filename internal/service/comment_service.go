package service

import (
	"strings"

	"go-blog-platform/internal/model"
	"go-blog-platform/internal/repository"
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	postRepo    *repository.PostRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, postRepo *repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

type CommentInput struct {
	Text string `json:"text" form:"text"`
}

// Create adds a comment by the authenticated author to an existing post.
func (s *CommentService) Create(postID, authorID uint, in CommentInput) (*model.Comment, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	if strings.TrimSpace(in.Text) == "" {
		return nil, &ValidationError{Fields: map[string]string{"text": "text is required"}}
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     in.Text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ForPost returns a post's comments, oldest first.
func (s *CommentService) ForPost(postID uint) ([]model.Comment, error) {
	return s.commentRepo.FindByPostID(postID)
}
