package api

import (
	"time"

	"github.com/rpupo63/job-tracker-backend/models"
	"github.com/rpupo63/job-tracker-backend/pipeline"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	applicationHandler    applicationHandler
	noteHandler           noteHandler
	tagHandler            tagHandler
	applicationTagHandler applicationTagHandler
	settingsHandler       settingsHandler
	reminderHandler       reminderHandler
	exportHandler         exportHandler
	statisticsHandler     statisticsHandler
	authHandler           authHandler
	userHandler           userHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// applicationRequest is the body of create and update. Nil fields are left
// untouched on update.
type applicationRequest struct {
	Position          *string    `json:"position" validate:"omitempty,max=200"`
	CompanyName       *string    `json:"company_name" validate:"omitempty,max=200"`
	Platform          *string    `json:"platform"`
	JobLink           *string    `json:"job_link" validate:"omitempty,max=2048"`
	ContractType      *string    `json:"contract_type"`
	WorkModel         *string    `json:"work_model"`
	Location          *string    `json:"location"`
	SalaryExpectation *string    `json:"salary_expectation"`
	CVVersion         *string    `json:"cv_version"`
	Notes             *string    `json:"notes"`
	Status            *string    `json:"status" validate:"omitempty,status"`
	Priority          *string    `json:"priority" validate:"omitempty,priority"`
	IsBookmarked      *bool      `json:"is_bookmarked"`
	DateApplied       *time.Time `json:"date_applied"`
	ReminderDate      *time.Time `json:"reminder_date"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,status"`
}

type noteRequest struct {
	Content string `json:"content" validate:"required"`
}

type tagRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type applicationTagRequest struct {
	TagID string `json:"tagId" validate:"required,uuid"`
}

type settingsRequest struct {
	ApplicationID string  `json:"applicationId" validate:"required,uuid"`
	IsBookmarked  *bool   `json:"isBookmarked"`
	Priority      *string `json:"priority" validate:"omitempty,priority"`
}

type reminderRequest struct {
	ApplicationID string     `json:"applicationId" validate:"required,uuid"`
	ReminderDate  *time.Time `json:"reminderDate" validate:"required"`
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

type userResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type signupResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      userResponse `json:"user"`
}

// boardCard is an application as shown on the board, with its derived
// ghosting state.
type boardCard struct {
	*models.Application
	Ghosted          bool `json:"ghosted"`
	DaysSinceApplied int  `json:"daysSinceApplied"`
}

type boardColumn struct {
	Status       models.Status `json:"status"`
	Title        string        `json:"title"`
	Applications []boardCard   `json:"applications"`
}

type boardResponse struct {
	Columns      []boardColumn         `json:"columns"`
	Reminders    []*models.Application `json:"reminders"`
	GhostedCount int                   `json:"ghostedCount"`
}

type statisticsResponse struct {
	pipeline.Stats
	GhostedCount      int `json:"ghostedCount"`
	UpcomingReminders int `json:"upcomingReminders"`
}
