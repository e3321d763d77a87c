package pipeline

import (
	"testing"
	"time"

	"github.com/rpupo63/job-tracker-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.TotalApplications)
	assert.Equal(t, 0, stats.ResponseRate)
	assert.Equal(t, 0, stats.SuccessRate)
	assert.Equal(t, 0, stats.AvgDaysToResponse)
	require.NotNil(t, stats.TopCompanies)
	assert.Empty(t, stats.TopCompanies)
	assert.Empty(t, stats.StatusDistribution)
	assert.Empty(t, stats.MonthlyApplications)
}

func TestComputeStats(t *testing.T) {
	jan := time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 3, 12, 0, 0, 0, time.UTC)

	offer := newApp("Acme", models.StatusOffering, jan)
	offer.LastUpdated = jan.Add(10*24*time.Hour + 5*time.Hour) // floor -> 10

	rejected := newApp("Acme", models.StatusRejected, jan)
	rejected.LastUpdated = jan.Add(20 * 24 * time.Hour)

	ghosted := newApp("Globex", models.StatusGhosted, feb)
	ghosted.LastUpdated = feb.Add(3 * 24 * time.Hour)

	// negative deltas are ignored
	skewed := newApp("Initech", models.StatusRejected, feb)
	skewed.LastUpdated = feb.Add(-48 * time.Hour)

	wishlist := newApp("Umbrella", models.StatusWishlist, feb)
	applied := newApp("Globex", models.StatusApplied, feb)
	interview := newApp("Acme", models.StatusInterviewHR, feb)

	stats := ComputeStats([]*models.Application{offer, rejected, ghosted, skewed, wishlist, applied, interview})

	assert.Equal(t, 7, stats.TotalApplications)
	assert.Equal(t, 2, stats.StatusDistribution[models.StatusRejected])
	assert.Equal(t, 1, stats.StatusDistribution[models.StatusWishlist])

	// responded: offer, rejected, skewed, interview = 4 of 6 non-wishlist
	assert.Equal(t, 67, stats.ResponseRate)
	// 1 of 7
	assert.Equal(t, 14, stats.SuccessRate)
	// (10 + 20 + 3) / 3
	assert.Equal(t, 11, stats.AvgDaysToResponse)

	assert.Equal(t, map[string]int{"2025-01": 2, "2025-02": 5}, stats.MonthlyApplications)
	assert.Equal(t, []CompanyCount{
		{Company: "Acme", Count: 3},
		{Company: "Globex", Count: 2},
		{Company: "Initech", Count: 1},
		{Company: "Umbrella", Count: 1},
	}, stats.TopCompanies)
}

func TestComputeStatsGhostedIsNotAResponse(t *testing.T) {
	apps := []*models.Application{
		newApp("a", models.StatusGhosted, base),
		newApp("b", models.StatusApplied, base),
	}
	assert.Equal(t, 0, ComputeStats(apps).ResponseRate)
}

func TestComputeStatsOnlyWishlist(t *testing.T) {
	apps := []*models.Application{newApp("a", models.StatusWishlist, base)}
	stats := ComputeStats(apps)
	assert.Equal(t, 0, stats.ResponseRate)
	assert.Equal(t, 0, stats.SuccessRate)
}

func TestComputeStatsTopCompaniesLimitedToFive(t *testing.T) {
	var apps []*models.Application
	for _, c := range []string{"a", "b", "c", "d", "e", "f", "f"} {
		apps = append(apps, newApp(c, models.StatusApplied, base))
	}
	top := ComputeStats(apps).TopCompanies
	assert.Len(t, top, 5)
	assert.Equal(t, CompanyCount{Company: "f", Count: 2}, top[0])
	assert.Equal(t, "a", top[1].Company)
}
