package pipeline

import (
	"math"
	"sort"
	"time"

	"github.com/rpupo63/job-tracker-backend/models"
)

const topCompaniesLimit = 5

// CompanyCount is one entry of the top companies ranking.
type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// Stats aggregates a user's applications.
type Stats struct {
	TotalApplications   int                   `json:"totalApplications"`
	StatusDistribution  map[models.Status]int `json:"statusDistribution"`
	ResponseRate        int                   `json:"responseRate"`
	SuccessRate         int                   `json:"successRate"`
	AvgDaysToResponse   int                   `json:"avgDaysToResponse"`
	MonthlyApplications map[string]int        `json:"monthlyApplications"`
	TopCompanies        []CompanyCount        `json:"topCompanies"`
}

// responded holds the stages that count as the employer having answered.
// GHOSTED is deliberately excluded and WISHLIST entries are excluded from the denominator.
var responded = map[models.Status]bool{
	models.StatusScreening:     true,
	models.StatusInterviewHR:   true,
	models.StatusInterviewUser: true,
	models.StatusOffering:      true,
	models.StatusRejected:      true,
}

// concluded holds the terminal stages used for the time-to-response average.
var concluded = map[models.Status]bool{
	models.StatusOffering: true,
	models.StatusRejected: true,
	models.StatusGhosted:  true,
}

// ComputeStats walks apps once and derives every aggregate.
func ComputeStats(apps []*models.Application) Stats {
	stats := Stats{
		TotalApplications:   len(apps),
		StatusDistribution:  make(map[models.Status]int),
		MonthlyApplications: make(map[string]int),
		TopCompanies:        []CompanyCount{},
	}

	var (
		submitted, answered, offers int
		totalDays, daysCount        int
		companyIndex                = make(map[string]int)
		companies                   []CompanyCount
	)

	for _, app := range apps {
		stats.StatusDistribution[app.Status]++

		if app.Status != models.StatusWishlist {
			submitted++
		}
		if responded[app.Status] {
			answered++
		}
		if app.Status == models.StatusOffering {
			offers++
		}
		if concluded[app.Status] {
			if days := int(math.Floor(float64(app.LastUpdated.Sub(app.DateApplied)) / float64(24*time.Hour))); days >= 0 {
				totalDays += days
				daysCount++
			}
		}

		if !app.DateApplied.IsZero() {
			stats.MonthlyApplications[app.DateApplied.Format("2006-01")]++
		}

		if i, ok := companyIndex[app.CompanyName]; ok {
			companies[i].Count++
		} else {
			companyIndex[app.CompanyName] = len(companies)
			companies = append(companies, CompanyCount{Company: app.CompanyName, Count: 1})
		}
	}

	stats.ResponseRate = percentage(answered, submitted)
	stats.SuccessRate = percentage(offers, len(apps))
	if daysCount > 0 {
		stats.AvgDaysToResponse = int(math.Round(float64(totalDays) / float64(daysCount)))
	}

	sort.SliceStable(companies, func(i, j int) bool {
		return companies[i].Count > companies[j].Count
	})
	if len(companies) > topCompaniesLimit {
		companies = companies[:topCompaniesLimit]
	}
	stats.TopCompanies = append(stats.TopCompanies, companies...)

	return stats
}

func percentage(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
