package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/job-tracker-backend/models"
	"gorm.io/gorm"
)

type ApplicationNoteRepo struct {
	db *gorm.DB
}

func NewApplicationNoteRepo(db *gorm.DB) *ApplicationNoteRepo {
	return &ApplicationNoteRepo{db}
}

// FindByApplication returns the notes of an application, newest first
func (r *ApplicationNoteRepo) FindByApplication(ctx context.Context, applicationID uuid.UUID) ([]*models.ApplicationNote, error) {
	var notes []*models.ApplicationNote
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *ApplicationNoteRepo) Add(ctx context.Context, note *models.ApplicationNote) error {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(note).Error
}

// Delete removes a note only if it belongs to applicationID
func (r *ApplicationNoteRepo) Delete(ctx context.Context, applicationID, noteID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND application_id = ?", noteID, applicationID).
		Delete(&models.ApplicationNote{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
