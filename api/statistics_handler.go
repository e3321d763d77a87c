package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/job-tracker-backend/models"
	"github.com/rpupo63/job-tracker-backend/pipeline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type statisticsHandler struct {
	responder    Responder
	logger       zerolog.Logger
	applications applicationStore
	now          func() time.Time
}

func newStatisticsHandler(applications applicationStore) statisticsHandler {
	logger := log.With().Str("handlerName", "statisticsHandler").Logger()

	return statisticsHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		applications: applications,
		now:          time.Now,
	}
}

func (h statisticsHandler) getStatistics() http.HandlerFunc {
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
			h.responder.WriteError(w, wrapDatabaseError("load", "statistics", err))
			return
		}

		h.responder.WriteJSON(w, statisticsResponse{
			Stats:             pipeline.ComputeStats(applications),
			GhostedCount:      pipeline.CountGhosted(applications, now),
			UpcomingReminders: len(reminders),
		})
	}
}
