package service

import (
	"go-blog-platform/internal/model"
	"go-blog-platform/internal/repository"
)

// FollowService maintains the social graph. Following is idempotent and
// self-follows are skipped; the database constraints back both rules up
// against racing requests.
type FollowService struct {
	followRepo *repository.FollowRepository
	userRepo   *repository.UserRepository
}

func NewFollowService(followRepo *repository.FollowRepository, userRepo *repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the edge viewer→author. Following yourself or an author you
// already follow is a no-op, not an error. An unknown author is ErrNotFound.
func (s *FollowService) Follow(userID uint, authorUsername string) error {
	author, err := s.userRepo.FindByUsername(authorUsername)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrNotFound
	}
	if author.ID == userID {
		return nil
	}

	existing, err := s.followRepo.Find(userID, author.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	return s.followRepo.Create(&model.Follow{UserID: userID, AuthorID: author.ID})
}

// Unfollow removes the edge viewer→author. Unlike Follow, removing a relation
// that does not exist is ErrNotFound rather than a silent no-op.
func (s *FollowService) Unfollow(userID uint, authorUsername string) error {
	author, err := s.userRepo.FindByUsername(authorUsername)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrNotFound
	}

	affected, err := s.followRepo.Delete(userID, author.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsFollowing reports whether the viewer follows the author. Viewer ID 0
// (unauthenticated) never follows anyone.
func (s *FollowService) IsFollowing(userID, authorID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	edge, err := s.followRepo.Find(userID, authorID)
	if err != nil {
		return false, err
	}
	return edge != nil, nil
}
