// ABOUTME: Dashboard aggregations across the entity collections
// ABOUTME: Derives counts, sums, win rate, and top-N projections
package store

import (
	"math"
	"sort"
	"strings"

	"github.com/udaraw/crm-api/models"
)

type DashboardStats struct {
	TotalContacts  int     `json:"totalContacts"`
	TotalCompanies int     `json:"totalCompanies"`
	ActiveDeals    int     `json:"activeDeals"`
	PipelineValue  float64 `json:"pipelineValue"`
}

type PipelineBreakdown struct {
	Stage string  `json:"stage"`
	Label string  `json:"label"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type WinRateData struct {
	WinRate   int     `json:"winRate"`
	WonDeals  int     `json:"wonDeals"`
	LostDeals int     `json:"lostDeals"`
	WonValue  float64 `json:"wonValue"`
	LostValue float64 `json:"lostValue"`
}

type RecentDeal struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CompanyName string  `json:"companyName"`
	Value       float64 `json:"value"`
	Stage       string  `json:"stage"`
}

type UpcomingActivity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Subject     string `json:"subject"`
	ContactName string `json:"contactName,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// Stats counts contacts and companies and totals the open pipeline.
// A deal is active while it is neither closed-won nor closed-lost.
func (s *Store) Stats() DashboardStats {
	stats := DashboardStats{
		TotalContacts:  len(s.contacts),
		TotalCompanies: len(s.companies),
	}
	for _, d := range s.deals {
		if d.Stage == models.StageClosedWon || d.Stage == models.StageClosedLost {
			continue
		}
		stats.ActiveDeals++
		stats.PipelineValue += d.Value
	}
	return stats
}

// PipelineBreakdownByStage returns {count, value} per stage in fixed
// display order with the fixed label and color for each.
func (s *Store) PipelineBreakdownByStage() []PipelineBreakdown {
	breakdown := make([]PipelineBreakdown, 0, len(models.Stages))
	for _, stage := range models.Stages {
		entry := PipelineBreakdown{
			Stage: stage,
			Label: models.StageConfig[stage].Label,
			Color: models.StageConfig[stage].Color,
		}
		for _, d := range s.deals {
			if d.Stage == stage {
				entry.Count++
				entry.Value += d.Value
			}
		}
		breakdown = append(breakdown, entry)
	}
	return breakdown
}

// WinRate computes round(100 * won / (won+lost)), defined as 0 when no
// deals have closed, plus the summed values either side.
func (s *Store) WinRate() WinRateData {
	var data WinRateData
	for _, d := range s.deals {
		switch d.Stage {
		case models.StageClosedWon:
			data.WonDeals++
			data.WonValue += d.Value
		case models.StageClosedLost:
			data.LostDeals++
			data.LostValue += d.Value
		}
	}
	if total := data.WonDeals + data.LostDeals; total > 0 {
		data.WinRate = int(math.Round(float64(data.WonDeals) / float64(total) * 100))
	}
	return data
}

// RecentDeals returns the newest deals by createdAt, projected for the
// dashboard list.
func (s *Store) RecentDeals(limit int) []RecentDeal {
	sorted := make([]models.Deal, len(s.deals))
	copy(sorted, s.deals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}

	recent := make([]RecentDeal, 0, len(sorted))
	for _, d := range sorted {
		recent = append(recent, RecentDeal{
			ID:          d.ID,
			Name:        d.Name,
			CompanyName: d.CompanyName,
			Value:       d.Value,
			Stage:       d.Stage,
		})
	}
	return recent
}

// UpcomingActivities returns not-yet-completed activities soonest
// first. The contact name is populated only for contact-related
// activities.
func (s *Store) UpcomingActivities(limit int) []UpcomingActivity {
	var open []models.Activity
	for _, a := range s.activities {
		if a.Status != models.ActivityCompleted {
			open = append(open, a)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].DueDate < open[j].DueDate
	})
	if limit < len(open) {
		open = open[:limit]
	}

	upcoming := make([]UpcomingActivity, 0, len(open))
	for _, a := range open {
		item := UpcomingActivity{
			ID:      a.ID,
			Type:    strings.ToLower(a.Type),
			Subject: a.Subject,
			DueDate: a.DueDate,
		}
		if a.RelatedType == models.RelatedContact {
			item.ContactName = a.RelatedTo
		}
		upcoming = append(upcoming, item)
	}
	return upcoming
}
