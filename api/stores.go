package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/job-tracker-backend/database"
	"github.com/rpupo63/job-tracker-backend/models"
)

// The handlers depend on these narrow views of the repositories so they can be
// exercised against in-memory stores.

type applicationStore interface {
	FindAllByUser(ctx context.Context, userID uuid.UUID, status models.Status) ([]*models.Application, error)
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*models.Application, error)
	FindUpcomingReminders(ctx context.Context, userID uuid.UUID, from time.Time) ([]*models.Application, error)
	Add(ctx context.Context, application *models.Application) error
	Update(ctx context.Context, application *models.Application) error
	UpdateFields(ctx context.Context, userID, id uuid.UUID, columns map[string]interface{}) (*models.Application, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.Status, now time.Time) (*models.Application, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type noteStore interface {
	FindByApplication(ctx context.Context, applicationID uuid.UUID) ([]*models.ApplicationNote, error)
	Add(ctx context.Context, note *models.ApplicationNote) error
	Delete(ctx context.Context, applicationID, noteID uuid.UUID) error
}

type tagStore interface {
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*models.Tag, error)
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*models.Tag, error)
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*models.Tag, error)
	Add(ctx context.Context, tag *models.Tag) error
}

type applicationTagStore interface {
	FindTagsByApplication(ctx context.Context, applicationID uuid.UUID) ([]*models.Tag, error)
	Exists(ctx context.Context, applicationID, tagID uuid.UUID) (bool, error)
	Add(ctx context.Context, link *models.ApplicationTag) error
	Delete(ctx context.Context, applicationID, tagID uuid.UUID) error
}

type userStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Add(ctx context.Context, user *models.User) error
}

type stores struct {
	applications    applicationStore
	notes           noteStore
	tags            tagStore
	applicationTags applicationTagStore
	users           userStore
}

func storesFrom(db database.Database) stores {
	return stores{
		applications:    db.ApplicationRepo(),
		notes:           db.ApplicationNoteRepo(),
		tags:            db.TagRepo(),
		applicationTags: db.ApplicationTagRepo(),
		users:           db.UserRepo(),
	}
}
