package api

import (
	"github.com/rpupo63/job-tracker-backend/auth"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(s stores, sessions *auth.Sessions, archiver archiver, secureCookies bool) *routeHandlers {
	return &routeHandlers{
		applicationHandler:    newApplicationHandler(s.applications),
		noteHandler:           newNoteHandler(s.applications, s.notes),
		tagHandler:            newTagHandler(s.tags),
		applicationTagHandler: newApplicationTagHandler(s.applications, s.tags, s.applicationTags),
		settingsHandler:       newSettingsHandler(s.applications),
		reminderHandler:       newReminderHandler(s.applications),
		exportHandler:         newExportHandler(s.applications, archiver),
		statisticsHandler:     newStatisticsHandler(s.applications),
		authHandler:           newAuthHandler(s.users, sessions, secureCookies),
		userHandler:           newUserHandler(s.users),
	}
}
