// ABOUTME: Filter, search, and pagination layer over the collections
// ABOUTME: Predicates compose with AND; pages are 1-based and never error
package store

import (
	"sort"
	"strings"
	"time"

	"github.com/udaraw/crm-api/models"
)

// Page is the paginated list envelope.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices items into a 1-based page. An out-of-range page
// yields an empty data slice, not an error.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	data := make([]T, 0, end-start)
	data = append(data, items[start:end]...)

	return Page[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// FindContacts filters by exact status and a case-insensitive substring
// search over firstName, lastName, email, and company.
func (s *Store) FindContacts(status, search string) []models.Contact {
	result := s.contacts
	if status != "" {
		var filtered []models.Contact
		for _, c := range result {
			if c.Status == status {
				filtered = append(filtered, c)
			}
		}
		result = filtered
	}
	if search != "" {
		needle := strings.ToLower(search)
		var filtered []models.Contact
		for _, c := range result {
			if strings.Contains(strings.ToLower(c.FirstName), needle) ||
				strings.Contains(strings.ToLower(c.LastName), needle) ||
				strings.Contains(strings.ToLower(c.Email), needle) ||
				strings.Contains(strings.ToLower(c.Company), needle) {
				filtered = append(filtered, c)
			}
		}
		result = filtered
	}
	return result
}

// FindCompanies filters by case-insensitive exact industry and a
// case-insensitive substring search over name, website, and address.
func (s *Store) FindCompanies(industry, search string) []models.Company {
	result := s.companies
	if industry != "" {
		var filtered []models.Company
		for _, c := range result {
			if c.Industry != "" && strings.EqualFold(c.Industry, industry) {
				filtered = append(filtered, c)
			}
		}
		result = filtered
	}
	if search != "" {
		needle := strings.ToLower(search)
		var filtered []models.Company
		for _, c := range result {
			if strings.Contains(strings.ToLower(c.Name), needle) ||
				strings.Contains(strings.ToLower(c.Website), needle) ||
				strings.Contains(strings.ToLower(c.Address), needle) {
				filtered = append(filtered, c)
			}
		}
		result = filtered
	}
	return result
}

// Coarse date-range filters for activities.
const (
	RangeToday     = "today"
	RangeThisWeek  = "this_week"
	RangeThisMonth = "this_month"
)

// FindActivities filters by exact type, exact status, and an optional
// coarse date range over the due date, then sorts ascending by due
// date. The week starts on Sunday and range ends are inclusive.
func (s *Store) FindActivities(activityType, status, dateRange string) []models.Activity {
	result := make([]models.Activity, 0, len(s.activities))
	from, to := dateRangeBounds(dateRange, time.Now())
	for _, a := range s.activities {
		if activityType != "" && a.Type != activityType {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		if from != "" && (a.DueDate < from || a.DueDate > to) {
			continue
		}
		result = append(result, a)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DueDate < result[j].DueDate
	})
	return result
}

// dateRangeBounds returns the inclusive YYYY-MM-DD bounds for a named
// range, or empty strings when no (or an unknown) range is given.
func dateRangeBounds(dateRange string, now time.Time) (from, to string) {
	const layout = "2006-01-02"
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch dateRange {
	case RangeToday:
		return day.Format(layout), day.Format(layout)
	case RangeThisWeek:
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return start.Format(layout), start.AddDate(0, 0, 6).Format(layout)
	case RangeThisMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return start.Format(layout), start.AddDate(0, 1, -1).Format(layout)
	}
	return "", ""
}
