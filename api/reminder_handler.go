package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type reminderHandler struct {
	responder    Responder
	logger       zerolog.Logger
	applications applicationStore
	now          func() time.Time
}

func newReminderHandler(applications applicationStore) reminderHandler {
	logger := log.With().Str("handlerName", "reminderHandler").Logger()

	return reminderHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		applications: applications,
		now:          time.Now,
	}
}

// getReminders lists unsent reminders due from the start of today onward.
func (h reminderHandler) getReminders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())

		reminders, err := h.applications.FindUpcomingReminders(r.Context(), userID, startOfDay(h.now()))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "reminders", err))
			return
		}
		h.responder.WriteJSON(w, reminders)
	}
}

func (h reminderHandler) setReminder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())

		var req reminderRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		appID := uuid.MustParse(req.ApplicationID)

		application, err := h.applications.UpdateFields(r.Context(), userID, appID, map[string]interface{}{
			"reminder_date": *req.ReminderDate,
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("set reminder on", "Application", err))
			return
		}
		h.responder.WriteJSON(w, application)
	}
}

// markReminderSent records that the user acted on a reminder, which also
// clears the application's ghosting flag.
func (h reminderHandler) markReminderSent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		id, err := uuidParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		application, err := h.applications.UpdateFields(r.Context(), userID, id, map[string]interface{}{
			"is_reminder_sent": true,
			"last_updated":     h.now(),
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("mark reminder sent on", "Application", err))
			return
		}
		h.responder.WriteJSON(w, application)
	}
}
