package api

import (
	"net/http"
	"strings"

	"github.com/rpupo63/job-tracker-backend/errs"
	"github.com/rpupo63/job-tracker-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tags      tagStore
}

func newTagHandler(tags tagStore) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tags:      tags,
	}
}

func (h tagHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())

		tags, err := h.tags.FindAllByUser(r.Context(), userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tags", err))
			return
		}
		h.responder.WriteJSON(w, tags)
	}
}

// createTag returns the caller's tag with the given name, creating it first
// when it does not exist yet. Either way the answer is 201.
func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())

		var req tagRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		name := strings.TrimSpace(req.Name)
		if name == "" {
			h.responder.WriteError(w, errMissing("name"))
			return
		}

		tag, err := h.tags.FindByName(r.Context(), userID, name)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "Tag", err))
			return
		}
		if tag == nil {
			color := req.Color
			if color == "" {
				color = models.DefaultTagColor
			}
			tag = &models.Tag{UserID: userID, Name: name, Color: color}
			if err := h.tags.Add(r.Context(), tag); err != nil {
				dbErr := wrapDatabaseError("create", "Tag", err)
				if !errs.IsUniqueConstraintViolationError(dbErr) {
					h.responder.WriteError(w, dbErr)
					return
				}
				// a concurrent request created it first
				tag, err = h.tags.FindByName(r.Context(), userID, name)
				if err == nil && tag == nil {
					err = gorm.ErrRecordNotFound
				}
				if err != nil {
					h.responder.WriteError(w, wrapDatabaseError("find", "Tag", err))
					return
				}
			}
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, tag)
	}
}
