package api

import (
	"net/http"

	"github.com/rpupo63/job-tracker-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	users     userStore
}

func newUserHandler(users userStore) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		users:     users,
	}
}

// getUser returns the identity behind the session. A token for a user that
// no longer exists is treated as no session at all.
func (h userHandler) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())

		user, err := h.users.FindByID(r.Context(), userID)
		if err != nil {
			dbErr := wrapDatabaseError("find", "User", err)
			if errs.IsNotFound(dbErr) {
				dbErr = errs.Unauthorized
			}
			h.responder.WriteError(w, dbErr)
			return
		}
		h.responder.WriteJSON(w, userResponse{UserID: user.ID.String(), Username: user.Username})
	}
}
