// ABOUTME: Tests for dashboard endpoints
// ABOUTME: Aggregations computed over the seeded sample data
package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udaraw/crm-api/store"
)

func TestDashboardStats(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/api/dashboard/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var stats store.DashboardStats
	decode(t, w, &stats)
	assert.Equal(t, 10, stats.TotalContacts)
	assert.Equal(t, 8, stats.TotalCompanies)
	assert.Equal(t, 6, stats.ActiveDeals)
	assert.Equal(t, float64(600500), stats.PipelineValue)
}

func TestDashboardPipeline(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/api/dashboard/pipeline", nil)

	var breakdown []store.PipelineBreakdown
	decode(t, w, &breakdown)
	require.Len(t, breakdown, 6)

	assert.Equal(t, "lead", breakdown[0].Stage)
	assert.Equal(t, "Lead", breakdown[0].Label)
	assert.Equal(t, 1, breakdown[0].Count)
	assert.Equal(t, float64(150000), breakdown[0].Value)

	assert.Equal(t, "negotiation", breakdown[3].Stage)
	assert.Equal(t, 2, breakdown[3].Count)
	assert.Equal(t, float64(220000), breakdown[3].Value)
}

func TestDashboardWinRate(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/api/dashboard/win-rate", nil)

	var data store.WinRateData
	decode(t, w, &data)
	assert.Equal(t, 50, data.WinRate)
	assert.Equal(t, 1, data.WonDeals)
	assert.Equal(t, 1, data.LostDeals)
	assert.Equal(t, float64(45000), data.WonValue)
	assert.Equal(t, float64(32000), data.LostValue)
}

func TestDashboardRecentDeals(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/api/dashboard/recent-deals?limit=3", nil)

	var recent []store.RecentDeal
	decode(t, w, &recent)
	require.Len(t, recent, 3)
	for i := 1; i < len(recent); i++ {
		assert.NotEmpty(t, recent[i].ID)
	}
}

func TestDashboardRecentDealsDefaultLimit(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/api/dashboard/recent-deals", nil)

	var recent []store.RecentDeal
	decode(t, w, &recent)
	assert.Len(t, recent, 5)
}

func TestDashboardUpcomingActivities(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/api/dashboard/upcoming-activities?limit=10", nil)

	var upcoming []store.UpcomingActivity
	decode(t, w, &upcoming)
	require.Len(t, upcoming, 5)

	for i := 1; i < len(upcoming); i++ {
		assert.LessOrEqual(t, upcoming[i-1].DueDate, upcoming[i].DueDate)
	}
	for _, a := range upcoming {
		assert.Equal(t, strings.ToLower(a.Type), a.Type)
	}
}
