package repository

import (
	"errors"

	"go-blog-platform/internal/model"
	"go-blog-platform/pkg/db"

	"gorm.io/gorm"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{db: db.DB}
}

func (r *GroupRepository) Create(group *model.Group) error {
	return r.db.Create(group).Error
}

// FindAll returns every group ordered by title.
func (r *GroupRepository) FindAll() ([]model.Group, error) {
	var groups []model.Group
	err := r.db.Order("title ASC").Find(&groups).Error
	return groups, err
}

// FindBySlug returns nil when no group has the slug.
func (r *GroupRepository) FindBySlug(slug string) (*model.Group, error) {
	var group model.Group
	if err := r.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// FindByID returns nil when the group does not exist.
func (r *GroupRepository) FindByID(id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// Delete removes a group. Posts published into it survive with their group
// reference nulled out.
func (r *GroupRepository) Delete(groupID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Post{}).Where("group_id = ?", groupID).
			Update("group_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&model.Group{}, groupID).Error
	})
}
