package pipeline

import (
	"strings"
	"time"

	"github.com/rpupo63/job-tracker-backend/models"
)

// DefaultPageSize matches the table view.
const DefaultPageSize = 10

// MaxPageSize caps pageSize so page arithmetic stays in range.
const MaxPageSize = 100

// Criteria narrows a list of applications. Zero fields match everything.
type Criteria struct {
	Search string
	Status models.Status
	From   *time.Time
	To     *time.Time
}

// Filter returns the applications matching c, preserving order.
func Filter(apps []*models.Application, c Criteria) []*models.Application {
	search := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]*models.Application, 0, len(apps))
	for _, app := range apps {
		if search != "" && !matchesSearch(app, search) {
			continue
		}
		if c.Status != "" && app.Status != c.Status {
			continue
		}
		if c.From != nil && app.DateApplied.Before(*c.From) {
			continue
		}
		if c.To != nil && app.DateApplied.After(*c.To) {
			continue
		}
		out = append(out, app)
	}
	return out
}

func matchesSearch(app *models.Application, needle string) bool {
	if strings.Contains(strings.ToLower(app.Position), needle) ||
		strings.Contains(strings.ToLower(app.CompanyName), needle) {
		return true
	}
	for _, field := range []*string{app.Platform, app.Notes} {
		if field != nil && strings.Contains(strings.ToLower(*field), needle) {
			return true
		}
	}
	return false
}

// Page is one slice of a paginated list.
type Page struct {
	Items      []*models.Application `json:"items"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"pageSize"`
	TotalItems int                   `json:"totalItems"`
	TotalPages int                   `json:"totalPages"`
}

// Paginate cuts page (1-based) out of apps. Pages past the end are empty.
// pageSize is clamped to MaxPageSize.
func Paginate(apps []*models.Application, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pageSize = min(pageSize, MaxPageSize)
	if page < 1 {
		page = 1
	}
	total := len(apps)
	p := Page{
		Items:      []*models.Application{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}
	if page > p.TotalPages {
		return p
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	p.Items = apps[start:end]
	return p
}
