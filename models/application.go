package models

import (
	"time"

	"github.com/google/uuid"
)

// Application represents one job application owned by a user
type Application struct {
	ID                uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID            uuid.UUID  `json:"userId" db:"user_id" gorm:"type:uuid;not null;index:idx_application_user_id"`
	Position          string     `json:"position" db:"position" gorm:"type:text;not null"`
	CompanyName       string     `json:"company_name" db:"company_name" gorm:"type:text;not null"`
	Platform          *string    `json:"platform,omitempty" db:"platform" gorm:"type:text"`
	JobLink           *string    `json:"job_link,omitempty" db:"job_link" gorm:"type:text"`
	ContractType      *string    `json:"contract_type,omitempty" db:"contract_type" gorm:"type:text"`
	WorkModel         *string    `json:"work_model,omitempty" db:"work_model" gorm:"type:text"`
	Location          *string    `json:"location,omitempty" db:"location" gorm:"type:text"`
	SalaryExpectation *string    `json:"salary_expectation,omitempty" db:"salary_expectation" gorm:"type:text"`
	CVVersion         *string    `json:"cv_version,omitempty" db:"cv_version" gorm:"type:text"`
	Notes             *string    `json:"notes,omitempty" db:"notes" gorm:"type:text"`
	Status            Status     `json:"status" db:"status" gorm:"type:text;not null;default:APPLIED;index:idx_application_status"`
	Priority          Priority   `json:"priority" db:"priority" gorm:"type:text;not null;default:MEDIUM"`
	IsBookmarked      bool       `json:"is_bookmarked" db:"is_bookmarked" gorm:"not null;default:false"`
	DateApplied       time.Time  `json:"date_applied" db:"date_applied" gorm:"not null"`
	LastUpdated       time.Time  `json:"last_updated" db:"last_updated" gorm:"not null"`
	ReminderDate      *time.Time `json:"reminder_date,omitempty" db:"reminder_date"`
	IsReminderSent    bool       `json:"is_reminder_sent" db:"is_reminder_sent" gorm:"not null;default:false"`

	NoteEntries []ApplicationNote `json:"-" gorm:"foreignKey:ApplicationID;references:ID;constraint:OnDelete:CASCADE"`
	TagLinks    []ApplicationTag  `json:"-" gorm:"foreignKey:ApplicationID;references:ID;constraint:OnDelete:CASCADE"`
}
