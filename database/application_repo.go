package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/job-tracker-backend/models"
	"gorm.io/gorm"
)

type ApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *ApplicationRepo {
	return &ApplicationRepo{db}
}

// FindAllByUser returns the user's applications, newest date_applied first.
// A non-empty status narrows the result to that stage.
func (r *ApplicationRepo) FindAllByUser(ctx context.Context, userID uuid.UUID, status models.Status) ([]*models.Application, error) {
	var applications []*models.Application
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("date_applied DESC").Find(&applications).Error
	return applications, err
}

// FindByIDForUser returns the application only when userID owns it.
// Missing and foreign applications both yield gorm.ErrRecordNotFound.
func (r *ApplicationRepo) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// FindUpcomingReminders returns unsent reminders due at or after from, soonest first.
func (r *ApplicationRepo) FindUpcomingReminders(ctx context.Context, userID uuid.UUID, from time.Time) ([]*models.Application, error) {
	var applications []*models.Application
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND reminder_date >= ? AND is_reminder_sent = ?", userID, from, false).
		Order("reminder_date ASC").
		Find(&applications).Error
	return applications, err
}

// Add inserts a new application into the database
func (r *ApplicationRepo) Add(ctx context.Context, application *models.Application) error {
	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(application).Error
}

// Update writes every mutable column of application, scoped to its owner.
func (r *ApplicationRepo) Update(ctx context.Context, application *models.Application) error {
	res := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ? AND user_id = ?", application.ID, application.UserID).
		Select("*").
		Omit("id", "user_id").
		Updates(application)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateFields applies columns to one owned application in a single
// conditional statement and returns the stored row.
func (r *ApplicationRepo) UpdateFields(ctx context.Context, userID, id uuid.UUID, columns map[string]interface{}) (*models.Application, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(columns)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByIDForUser(ctx, userID, id)
}

// UpdateStatus moves an owned application to status and stamps last_updated.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.Status, now time.Time) (*models.Application, error) {
	return r.UpdateFields(ctx, userID, id, map[string]interface{}{
		"status":       status,
		"last_updated": now,
	})
}

// Delete removes an owned application; notes and tag links cascade.
func (r *ApplicationRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
