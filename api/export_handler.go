package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rpupo63/job-tracker-backend/export"
	"github.com/rpupo63/job-tracker-backend/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// archiver copies finished exports somewhere durable. *export.Archiver satisfies it.
type archiver interface {
	Archive(ctx context.Context, userID uuid.UUID, data []byte) bool
}

type exportHandler struct {
	responder    Responder
	logger       zerolog.Logger
	applications applicationStore
	archiver     archiver
}

func newExportHandler(applications applicationStore, archiver archiver) exportHandler {
	logger := log.With().Str("handlerName", "exportHandler").Logger()

	return exportHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		applications: applications,
		archiver:     archiver,
	}
}

// exportCSV streams every application of the caller as a CSV attachment.
func (h exportHandler) exportCSV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := userIDFromContext(r.Context())

		applications, err := h.applications.FindAllByUser(r.Context(), userID, "")
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "applications", err))
			return
		}

		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, applications); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			h.logger.Error().Err(err).Msg("error writing export")
			return
		}

		archived := false
		if h.archiver != nil {
			archived = h.archiver.Archive(r.Context(), userID, buf.Bytes())
		}
		metrics.RecordExport(archived)
		h.logger.Info().Int("rows", len(applications)).Bool("archived", archived).Msg("Export served")
	}
}
