package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rpupo63/job-tracker-backend/errs"
	"github.com/rpupo63/job-tracker-backend/metrics"
	"github.com/rpupo63/job-tracker-backend/models"
	"github.com/rpupo63/job-tracker-backend/pipeline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type applicationHandler struct {
	responder    Responder
	logger       zerolog.Logger
	applications applicationStore
	now          func() time.Time
}

func newApplicationHandler(applications applicationStore) applicationHandler {
	logger := log.With().Str("handlerName", "applicationHandler").Logger()

	return applicationHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		applications: applications,
		now:          time.Now,
	}
}

// getAllApplications lists the caller's applications, newest first.
// Without a page parameter the full filtered list is returned as an array.
func (h applicationHandler) getAllApplications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		q := r.URL.Query()

		var status models.Status
		if raw := q.Get("status"); raw != "" {
			parsed, err := models.ParseStatus(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("status", err.Error()))
				return
			}
			status = parsed
		}

		criteria := pipeline.Criteria{Search: q.Get("search")}
		var err error
		if criteria.From, err = parseDateParam(q.Get("from"), false); err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("from", err.Error()))
			return
		}
		if criteria.To, err = parseDateParam(q.Get("to"), true); err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("to", err.Error()))
			return
		}

		applications, err := h.applications.FindAllByUser(r.Context(), userID, status)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "applications", err))
			return
		}
		applications = pipeline.Filter(applications, criteria)

		if q.Get("page") == "" && q.Get("pageSize") == "" {
			h.responder.WriteJSON(w, applications)
			return
		}
		page, err := parsePageParam(q.Get("page"), 1)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("page", err.Error()))
			return
		}
		pageSize, err := parsePageParam(q.Get("pageSize"), pipeline.DefaultPageSize)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("pageSize", err.Error()))
			return
		}
		h.responder.WriteJSON(w, pipeline.Paginate(applications, page, pageSize))
	}
}

// parsePageParam reads a positive integer query value, falling back to def when absent.
func parsePageParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.New("must be a positive integer")
	}
	return n, nil
}

func (h applicationHandler) getApplication() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		id, err := uuidParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		application, err := h.applications.FindByIDForUser(r.Context(), userID, id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "Application", err))
			return
		}
		h.responder.WriteJSON(w, application)
	}
}

// createApplication stores a new application. Status defaults to APPLIED,
// priority to MEDIUM and date_applied to now.
func (h applicationHandler) createApplication() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())

		var req applicationRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if isBlank(req.Position) {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("position"))
			return
		}
		if isBlank(req.CompanyName) {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("company_name"))
			return
		}

		now := h.now()
		application := &models.Application{
			UserID:      userID,
			Status:      models.StatusApplied,
			Priority:    models.PriorityMedium,
			DateApplied: now,
			LastUpdated: now,
		}
		req.applyTo(application)

		if err := h.applications.Add(r.Context(), application); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "Application", err))
			return
		}

		h.logger.Info().Str("applicationId", application.ID.String()).Msg("Application created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, application)
	}
}

// updateApplication applies the supplied fields and stamps last_updated.
func (h applicationHandler) updateApplication() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		id, err := uuidParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req applicationRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.Position != nil && isBlank(req.Position) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("position", "must not be empty"))
			return
		}
		if req.CompanyName != nil && isBlank(req.CompanyName) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("company_name", "must not be empty"))
			return
		}

		application, err := h.applications.FindByIDForUser(r.Context(), userID, id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "Application", err))
			return
		}

		previous := application.Status
		req.applyTo(application)
		application.LastUpdated = h.now()

		if err := h.applications.Update(r.Context(), application); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "Application", err))
			return
		}
		if application.Status != previous {
			metrics.RecordStatusTransition(string(previous), string(application.Status))
		}

		h.responder.WriteJSON(w, application)
	}
}

// updateApplicationStatus moves an application to another pipeline stage.
// Any stage may follow any other.
func (h applicationHandler) updateApplicationStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		id, err := uuidParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req statusRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		status := models.Status(req.Status)

		current, err := h.applications.FindByIDForUser(r.Context(), userID, id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "Application", err))
			return
		}

		updated, err := h.applications.UpdateStatus(r.Context(), userID, id, status, h.now())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update status of", "Application", err))
			return
		}
		metrics.RecordStatusTransition(string(current.Status), string(status))

		h.logger.Debug().
			Str("applicationId", id.String()).
			Str("from", string(current.Status)).
			Str("to", string(status)).
			Msg("Application status changed")
		h.responder.WriteJSON(w, updated)
	}
}

func (h applicationHandler) deleteApplication() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		id, err := uuidParam(r, "id")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.applications.Delete(r.Context(), userID, id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "Application", err))
			return
		}
		h.responder.WriteJSON(w, messageResponse{Message: "Application deleted successfully"})
	}
}

// getBoard groups the caller's applications into one column per stage,
// each sorted for display, alongside the upcoming reminders.
func (h applicationHandler) getBoard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())
		now := h.now()

		var applications, reminders []*models.Application
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			var err error
			applications, err = h.applications.FindAllByUser(ctx, userID, "")
			return err
		})
		g.Go(func() error {
			var err error
			reminders, err = h.applications.FindUpcomingReminders(ctx, userID, startOfDay(now))
			return err
		})
		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "board", err))
			return
		}

		h.responder.WriteJSON(w, buildBoard(applications, reminders, now))
	}
}

func buildBoard(applications, reminders []*models.Application, now time.Time) boardResponse {
	byStatus := make(map[models.Status][]*models.Application, len(models.Statuses))
	for _, app := range applications {
		byStatus[app.Status] = append(byStatus[app.Status], app)
	}

	resp := boardResponse{
		Columns:   make([]boardColumn, 0, len(models.Statuses)),
		Reminders: reminders,
	}
	if resp.Reminders == nil {
		resp.Reminders = []*models.Application{}
	}
	for _, status := range models.Statuses {
		apps := byStatus[status]
		pipeline.SortForDisplay(apps)

		column := boardColumn{Status: status, Title: status.Title(), Applications: make([]boardCard, 0, len(apps))}
		for _, app := range apps {
			ghosted := pipeline.IsGhosted(app, now)
			if ghosted {
				resp.GhostedCount++
			}
			column.Applications = append(column.Applications, boardCard{
				Application:      app,
				Ghosted:          ghosted,
				DaysSinceApplied: pipeline.DaysSince(app.DateApplied, now),
			})
		}
		resp.Columns = append(resp.Columns, column)
	}
	return resp
}

func (req applicationRequest) applyTo(app *models.Application) {
	if req.Position != nil {
		app.Position = strings.TrimSpace(*req.Position)
	}
	if req.CompanyName != nil {
		app.CompanyName = strings.TrimSpace(*req.CompanyName)
	}
	setOptional(&app.Platform, req.Platform)
	setOptional(&app.JobLink, req.JobLink)
	setOptional(&app.ContractType, req.ContractType)
	setOptional(&app.WorkModel, req.WorkModel)
	setOptional(&app.Location, req.Location)
	setOptional(&app.SalaryExpectation, req.SalaryExpectation)
	setOptional(&app.CVVersion, req.CVVersion)
	setOptional(&app.Notes, req.Notes)
	if req.Status != nil {
		app.Status = models.Status(*req.Status)
	}
	if req.Priority != nil {
		app.Priority = models.Priority(*req.Priority)
	}
	if req.IsBookmarked != nil {
		app.IsBookmarked = *req.IsBookmarked
	}
	if req.DateApplied != nil {
		app.DateApplied = *req.DateApplied
	}
	if req.ReminderDate != nil {
		app.ReminderDate = req.ReminderDate
	}
}

// setOptional copies src into dst. An empty string clears the column.
func setOptional(dst **string, src *string) {
	if src == nil {
		return
	}
	if *src == "" {
		*dst = nil
		return
	}
	v := *src
	*dst = &v
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// parseDateParam accepts RFC 3339 or a bare date. A bare "to" date covers the whole day.
func parseDateParam(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
