package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rpupo63/job-tracker-backend/errs"
	"github.com/rpupo63/job-tracker-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type applicationTagHandler struct {
	responder       Responder
	logger          zerolog.Logger
	applications    applicationStore
	tags            tagStore
	applicationTags applicationTagStore
}

func newApplicationTagHandler(applications applicationStore, tags tagStore, applicationTags applicationTagStore) applicationTagHandler {
	logger := log.With().Str("handlerName", "applicationTagHandler").Logger()

	return applicationTagHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		applications:    applications,
		tags:            tags,
		applicationTags: applicationTags,
	}
}

func (h applicationTagHandler) getApplicationTags() http.HandlerFunc {
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

		tags, err := h.applicationTags.FindTagsByApplication(r.Context(), appID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "application tags", err))
			return
		}
		h.responder.WriteJSON(w, tags)
	}
}

// addApplicationTag links one of the caller's tags to one of their
// applications. A second link of the same pair is a 400.
func (h applicationTagHandler) addApplicationTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		appID, err := uuidParam(r, "appId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req applicationTagRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		tagID := uuid.MustParse(req.TagID)

		if _, err := h.applications.FindByIDForUser(r.Context(), userID, appID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "Application", err))
			return
		}
		tag, err := h.tags.FindByIDForUser(r.Context(), userID, tagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "Tag", err))
			return
		}

		exists, err := h.applicationTags.Exists(r.Context(), appID, tagID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check", "application tag", err))
			return
		}
		if exists {
			h.responder.WriteError(w, errDuplicateTag())
			return
		}

		link := &models.ApplicationTag{ApplicationID: appID, TagID: tagID}
		if err := h.applicationTags.Add(r.Context(), link); err != nil {
			dbErr := wrapDatabaseError("create", "application tag", err)
			// a concurrent request may have linked the pair after the check
			if errs.IsUniqueConstraintViolationError(dbErr) {
				dbErr = errDuplicateTag()
			}
			h.responder.WriteError(w, dbErr)
			return
		}
		link.Tag = tag
		h.responder.WriteJSONStatus(w, http.StatusCreated, link)
	}
}

func (h applicationTagHandler) removeApplicationTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		appID, err := uuidParam(r, "appId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		tagID, err := uuidParam(r, "tagId")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.applications.FindByIDForUser(r.Context(), userID, appID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "Application", err))
			return
		}
		if _, err := h.tags.FindByIDForUser(r.Context(), userID, tagID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "Tag", err))
			return
		}
		if err := h.applicationTags.Delete(r.Context(), appID, tagID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "Tag association", err))
			return
		}
		h.responder.WriteJSON(w, messageResponse{Message: "Tag removed from application"})
	}
}

func errDuplicateTag() error {
	return errs.NewBadRequestError("Tag already associated with application")
}

func errMissing(field string) error {
	return errs.NewMissingRequiredFieldError(field)
}
