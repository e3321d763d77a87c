package api

import (
	"net/http"
	"strings"

	"github.com/rpupo63/job-tracker-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type noteHandler struct {
	responder    Responder
	logger       zerolog.Logger
	applications applicationStore
	notes        noteStore
}

func newNoteHandler(applications applicationStore, notes noteStore) noteHandler {
	logger := log.With().Str("handlerName", "noteHandler").Logger()

	return noteHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		applications: applications,
		notes:        notes,
	}
}

// getNotes lists an owned application's notes, newest first.
func (h noteHandler) getNotes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		appID, err := uuidParam(r, "appId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if _, err := h.applications.FindByIDForUser(r.Context(), userID, appID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "Application", err))
			return
		}

		notes, err := h.notes.FindByApplication(r.Context(), appID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "notes", err))
			return
		}
		h.responder.WriteJSON(w, notes)
	}
}

func (h noteHandler) createNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		appID, err := uuidParam(r, "appId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req noteRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		content := strings.TrimSpace(req.Content)
		if content == "" {
			h.responder.WriteError(w, errMissing("content"))
			return
		}

		if _, err := h.applications.FindByIDForUser(r.Context(), userID, appID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "Application", err))
			return
		}

		note := &models.ApplicationNote{ApplicationID: appID, Content: content}
		if err := h.notes.Add(r.Context(), note); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "Note", err))
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, note)
	}
}

func (h noteHandler) deleteNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		appID, err := uuidParam(r, "appId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		noteID, err := uuidParam(r, "noteId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.applications.FindByIDForUser(r.Context(), userID, appID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "Application", err))
			return
		}
		if err := h.notes.Delete(r.Context(), appID, noteID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "Note", err))
			return
		}
		h.responder.WriteJSON(w, messageResponse{Message: "Note deleted successfully"})
	}
}
