package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rpupo63/job-tracker-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type settingsHandler struct {
	responder    Responder
	logger       zerolog.Logger
	applications applicationStore
}

func newSettingsHandler(applications applicationStore) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		applications: applications,
	}
}

// updateSettings changes the bookmark flag and priority. These are display
// preferences, so last_updated is left alone.
func (h settingsHandler) updateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())

		var req settingsRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		appID := uuid.MustParse(req.ApplicationID)

		columns := map[string]interface{}{}
		if req.IsBookmarked != nil {
			columns["is_bookmarked"] = *req.IsBookmarked
		}
		if req.Priority != nil {
			columns["priority"] = models.Priority(*req.Priority)
		}

		var (
			application *models.Application
			err         error
		)
		if len(columns) == 0 {
			application, err = h.applications.FindByIDForUser(r.Context(), userID, appID)
		} else {
			application, err = h.applications.UpdateFields(r.Context(), userID, appID, columns)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "Application", err))
			return
		}
		h.responder.WriteJSON(w, application)
	}
}
