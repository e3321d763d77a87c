package pipeline

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/job-tracker-backend/models"
	"github.com/stretchr/testify/assert"
)

var base = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newApp(company string, status models.Status, applied time.Time) *models.Application {
	return &models.Application{
		ID:          uuid.New(),
		Position:    "Backend Engineer",
		CompanyName: company,
		Status:      status,
		Priority:    models.PriorityMedium,
		DateApplied: applied,
		LastUpdated: applied,
	}
}

func companies(apps []*models.Application) []string {
	out := make([]string, len(apps))
	for i, a := range apps {
		out[i] = a.CompanyName
	}
	return out
}

func TestSortForDisplayBookmarkedFirst(t *testing.T) {
	low := newApp("bookmarked-low-old", models.StatusApplied, base.AddDate(0, -6, 0))
	low.IsBookmarked = true
	low.Priority = models.PriorityLow

	high := newApp("high-new", models.StatusApplied, base)
	high.Priority = models.PriorityHigh

	apps := []*models.Application{high, low}
	SortForDisplay(apps)

	assert.Equal(t, []string{"bookmarked-low-old", "high-new"}, companies(apps))
}

func TestSortForDisplayPriorityThenRecency(t *testing.T) {
	low := newApp("low", models.StatusApplied, base)
	low.Priority = models.PriorityLow
	unset := newApp("unset-old", models.StatusApplied, base.AddDate(0, 0, -3))
	unset.Priority = ""
	medium := newApp("medium-new", models.StatusApplied, base.AddDate(0, 0, -1))
	high := newApp("high", models.StatusApplied, base.AddDate(0, 0, -30))
	high.Priority = models.PriorityHigh

	apps := []*models.Application{low, unset, medium, high}
	SortForDisplay(apps)

	assert.Equal(t, []string{"high", "medium-new", "unset-old", "low"}, companies(apps))
}

func TestSortForDisplayIsStableOnFullTies(t *testing.T) {
	a := newApp("a", models.StatusApplied, base)
	b := newApp("b", models.StatusApplied, base)
	c := newApp("c", models.StatusApplied, base)

	apps := []*models.Application{b, c, a}
	SortForDisplay(apps)

	assert.Equal(t, []string{"b", "c", "a"}, companies(apps))
}
