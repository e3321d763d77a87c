package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/rpupo63/job-tracker-backend/auth"
	"github.com/rpupo63/job-tracker-backend/errs"
	"github.com/rpupo63/job-tracker-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const sessionCookieName = "session_token"

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	users         userStore
	sessions      *auth.Sessions
	secureCookies bool
	now           func() time.Time
}

func newAuthHandler(users userStore, sessions *auth.Sessions, secureCookies bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		users:         users,
		sessions:      sessions,
		secureCookies: secureCookies,
		now:           time.Now,
	}
}

// signup registers a new user with a bcrypt hashed password.
func (h authHandler) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		username := strings.TrimSpace(req.Username)
		if username == "" {
			h.responder.WriteError(w, errMissing("username"))
			return
		}

		existing, err := h.users.FindByUsername(r.Context(), username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "User", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewConflictError("Username already exists"))
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to hash password", err))
			return
		}

		user := &models.User{Username: username, Password: hash}
		if err := h.users.Add(r.Context(), user); err != nil {
			dbErr := wrapDatabaseError("create", "User", err)
			if errs.IsUniqueConstraintViolationError(dbErr) {
				dbErr = errs.NewConflictError("Username already exists")
			}
			h.responder.WriteError(w, dbErr)
			return
		}

		h.logger.Info().Str("userId", user.ID.String()).Msg("User signed up")
		h.responder.WriteJSONStatus(w, http.StatusCreated, signupResponse{
			Message: "User created successfully",
			User:    userResponse{UserID: user.ID.String(), Username: user.Username},
		})
	}
}

// login checks the credentials and hands out a session token, both in the
// body and as an HttpOnly cookie.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.users.FindByUsername(r.Context(), strings.TrimSpace(req.Username))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "User", err))
			return
		}
		if user == nil || !auth.CheckPassword(user.Password, req.Password) {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		token, err := h.sessions.Issue(user.ID, user.Username)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to issue session", err))
			return
		}
		expiresAt := h.now().Add(h.sessions.TTL())

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  expiresAt,
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
		h.responder.WriteJSON(w, loginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			User:      userResponse{UserID: user.ID.String(), Username: user.Username},
		})
	}
}

func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
		h.responder.WriteJSON(w, messageResponse{Message: "Logged out"})
	}
}
