package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationNote is a free-text annotation attached to one application
type ApplicationNote struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ApplicationID uuid.UUID `json:"applicationId" db:"application_id" gorm:"type:uuid;not null;index:idx_application_note_application_id"`
	Content       string    `json:"content" db:"content" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime"`
}
