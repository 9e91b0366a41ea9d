package service

import (
	"strings"

	"go-blog-platform/internal/model"
	"go-blog-platform/internal/repository"
)

// PostService owns post creation, edit and deletion. The author always comes
// from the authenticated identity, never from the submission.
type PostService struct {
	postRepo  *repository.PostRepository
	groupRepo *repository.GroupRepository
}

func NewPostService(postRepo *repository.PostRepository, groupRepo *repository.GroupRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
	}
}

// PostInput is the client-editable part of a post. The image reference is
// handled separately because it comes from the upload pipeline, not the form.
type PostInput struct {
	Text    string `json:"text" form:"text"`
	GroupID *uint  `json:"group_id" form:"group_id"`
}

// validate checks the submission before anything is persisted.
func (s *PostService) validate(in PostInput) error {
	fields := make(map[string]string)

	if strings.TrimSpace(in.Text) == "" {
		fields["text"] = "text is required"
	}
	if in.GroupID != nil {
		group, err := s.groupRepo.FindByID(*in.GroupID)
		if err != nil {
			return err
		}
		if group == nil {
			fields["group_id"] = "group does not exist"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Create persists a new post for the authenticated author.
func (s *PostService) Create(authorID uint, in PostInput, image string) (*model.Post, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	post := &model.Post{
		Text:     in.Text,
		AuthorID: authorID,
		GroupID:  in.GroupID,
		Image:    image,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return s.postRepo.FindByID(post.ID)
}

// Get returns a post or ErrNotFound.
func (s *PostService) Get(postID uint) (*model.Post, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Update mutates the editable fields of a post. Only the recorded author may
// edit; anyone else gets ErrForbidden and the post stays untouched. A nil
// image keeps the current reference, an empty string clears it.
func (s *PostService) Update(postID, viewerID uint, in PostInput, image *string) (*model.Post, error) {
	post, err := s.Get(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != viewerID {
		return nil, ErrForbidden
	}

	if err := s.validate(in); err != nil {
		return nil, err
	}

	newImage := post.Image
	if image != nil {
		newImage = *image
	}
	if err := s.postRepo.UpdateContent(postID, in.Text, in.GroupID, newImage); err != nil {
		return nil, err
	}
	return s.postRepo.FindByID(postID)
}

// Delete removes a post and its comments. Author-only, like Update.
func (s *PostService) Delete(postID, viewerID uint) error {
	post, err := s.Get(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != viewerID {
		return ErrForbidden
	}
	return s.postRepo.Delete(postID)
}
