package service

import (
	"strings"

	"go-blog-platform/internal/model"
	"go-blog-platform/internal/repository"
)

type GroupService struct {
	groupRepo *repository.GroupRepository
}

func NewGroupService(groupRepo *repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

type GroupInput struct {
	Title       string `json:"title" form:"title"`
	Slug        string `json:"slug" form:"slug"`
	Description string `json:"description" form:"description"`
}

// Create validates and persists a new group.
func (s *GroupService) Create(in GroupInput) (*model.Group, error) {
	fields := make(map[string]string)
	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = "title is required"
	}
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		fields["slug"] = "slug is required"
	} else if len(slug) > 50 {
		fields["slug"] = "slug must be at most 50 characters"
	}

	if len(fields) == 0 {
		existing, err := s.groupRepo.FindBySlug(slug)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			fields["slug"] = "slug already exists"
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	group := &model.Group{
		Title:       in.Title,
		Slug:        slug,
		Description: in.Description,
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

// List returns every group ordered by title.
func (s *GroupService) List() ([]model.Group, error) {
	return s.groupRepo.FindAll()
}
