package pipeline

import (
	"math"
	"time"

	"github.com/rpupo63/job-tracker-backend/models"
)

// GhostingThresholdDays is how long an application may sit in APPLIED before it is flagged.
const GhostingThresholdDays = 14

// DaysSince returns the absolute wall-clock difference between t and now in
// days, rounded up. A difference of one hour counts as one day.
func DaysSince(t, now time.Time) int {
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// IsGhosted reports whether app has been waiting in APPLIED for at least two
// weeks without the reminder being acknowledged.
func IsGhosted(app *models.Application, now time.Time) bool {
	return app.Status == models.StatusApplied &&
		DaysSince(app.DateApplied, now) >= GhostingThresholdDays &&
		!app.IsReminderSent
}

// CountGhosted returns how many of apps are ghosted at now.
func CountGhosted(apps []*models.Application, now time.Time) int {
	n := 0
	for _, app := range apps {
		if IsGhosted(app, now) {
			n++
		}
	}
	return n
}
