package pipeline

import (
	"sort"

	"github.com/rpupo63/job-tracker-backend/models"
)

// Less reports whether a is displayed before b: bookmarked first, then higher
// priority, then the most recent date_applied.
func Less(a, b *models.Application) bool {
	if a.IsBookmarked != b.IsBookmarked {
		return a.IsBookmarked
	}
	if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
		return ra > rb
	}
	return a.DateApplied.After(b.DateApplied)
}

// SortForDisplay orders apps in place. Full ties keep their input order.
func SortForDisplay(apps []*models.Application) {
	sort.SliceStable(apps, func(i, j int) bool {
		return Less(apps[i], apps[j])
	})
}
