package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/job-tracker-backend/models"
	"github.com/rpupo63/job-tracker-backend/pipeline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrUnknownApplication = errors.New("application is not on the board")

// StatusUpdater persists a status move. *Client satisfies it.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) (*models.Application, error)
}

// Board is a local copy of the user's applications kept in display order.
type Board struct {
	mu     sync.Mutex
	apps   []*models.Application
	server StatusUpdater
	logger zerolog.Logger
	now    func() time.Time
}

func NewBoard(server StatusUpdater, apps []*models.Application) *Board {
	b := &Board{
		apps:   make([]*models.Application, 0, len(apps)),
		server: server,
		logger: log.With().Str("component", "board").Logger(),
		now:    time.Now,
	}
	for _, app := range apps {
		cp := *app
		b.apps = append(b.apps, &cp)
	}
	pipeline.SortForDisplay(b.apps)
	return b
}

// Column returns copies of the applications in status, in display order.
func (b *Board) Column(status models.Status) []models.Application {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := []models.Application{}
	for _, app := range b.apps {
		if app.Status == status {
			out = append(out, *app)
		}
	}
	return out
}

// Get returns a copy of one application.
func (b *Board) Get(id uuid.UUID) (models.Application, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if app := b.find(id); app != nil {
		return *app, true
	}
	return models.Application{}, false
}

type statusSnapshot struct {
	status      models.Status
	lastUpdated time.Time
}

// MoveStatus shows the move immediately, then asks the server. On success
// the server's record replaces the local one; on failure the previous status
// and last_updated are restored. There is no retry.
func (b *Board) MoveStatus(ctx context.Context, id uuid.UUID, to models.Status) (*models.Application, error) {
	var change pipeline.Change[statusSnapshot]

	b.mu.Lock()
	app := b.find(id)
	if app == nil {
		b.mu.Unlock()
		return nil, ErrUnknownApplication
	}
	pending := statusSnapshot{status: to, lastUpdated: b.now()}
	if err := change.Begin(statusSnapshot{app.Status, app.LastUpdated}, pending); err != nil {
		b.mu.Unlock()
		return nil, err
	}
	app.Status, app.LastUpdated = pending.status, pending.lastUpdated
	pipeline.SortForDisplay(b.apps)
	b.mu.Unlock()

	updated, err := b.server.UpdateStatus(ctx, id, to)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		previous, rbErr := change.Rollback()
		if rbErr != nil {
			return nil, errors.Join(err, rbErr)
		}
		// leave the card alone if a later move already replaced our pending state
		if app.Status == pending.status && app.LastUpdated.Equal(pending.lastUpdated) {
			app.Status, app.LastUpdated = previous.status, previous.lastUpdated
			pipeline.SortForDisplay(b.apps)
		}
		b.logger.Warn().Err(err).
			Str("applicationId", id.String()).
			Str("status", string(to)).
			Msg("Status change rejected, rolled back")
		return nil, err
	}

	if err := change.Commit(); err != nil {
		return nil, err
	}
	*app = *updated
	pipeline.SortForDisplay(b.apps)
	result := *app
	return &result, nil
}

func (b *Board) find(id uuid.UUID) *models.Application {
	for _, app := range b.apps {
		if app.ID == id {
			return app
		}
	}
	return nil
}
