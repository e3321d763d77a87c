package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/job-tracker-backend/models"
	"gorm.io/gorm"
)

type ApplicationTagRepo struct {
	db *gorm.DB
}

func NewApplicationTagRepo(db *gorm.DB) *ApplicationTagRepo {
	return &ApplicationTagRepo{db}
}

// FindTagsByApplication returns the tags attached to an application
func (r *ApplicationTagRepo) FindTagsByApplication(ctx context.Context, applicationID uuid.UUID) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.WithContext(ctx).
		Joins("JOIN application_tags ON application_tags.tag_id = tags.id").
		Where("application_tags.application_id = ?", applicationID).
		Order("tags.name ASC").
		Find(&tags).Error
	return tags, err
}

// Exists reports whether the pair is already linked
func (r *ApplicationTagRepo) Exists(ctx context.Context, applicationID, tagID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ApplicationTag{}).
		Where("application_id = ? AND tag_id = ?", applicationID, tagID).
		Count(&count).Error
	return count > 0, err
}

// Add links a tag to an application. The unique index rejects duplicates.
func (r *ApplicationTagRepo) Add(ctx context.Context, link *models.ApplicationTag) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *ApplicationTagRepo) Delete(ctx context.Context, applicationID, tagID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND tag_id = ?", applicationID, tagID).
		Delete(&models.ApplicationTag{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
