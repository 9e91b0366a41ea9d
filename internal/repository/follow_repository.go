package repository

import (
	"errors"

	"go-blog-platform/internal/model"
	"go-blog-platform/pkg/db"

	"gorm.io/gorm"
)

// FollowRepository handles the directed follow edges of the social graph.
type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository() *FollowRepository {
	return &FollowRepository{db: db.DB}
}

func (r *FollowRepository) Create(follow *model.Follow) error {
	return r.db.Create(follow).Error
}

// Find returns nil when the edge does not exist.
func (r *FollowRepository) Find(userID, authorID uint) (*model.Follow, error) {
	var follow model.Follow
	err := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &follow, nil
}

// Delete removes the edge and reports how many rows were affected, so the
// caller can distinguish unfollowing a relation that never existed.
func (r *FollowRepository) Delete(userID, authorID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).Delete(&model.Follow{})
	return result.RowsAffected, result.Error
}

// AuthorIDs returns the distinct set of authors the user follows.
func (r *FollowRepository) AuthorIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Follow{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("author_id", &ids).Error
	return ids, err
}

func (r *FollowRepository) CountFollowers(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func (r *FollowRepository) CountFollowing(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
