// ABOUTME: Activity store operations
// ABOUTME: Handles activity CRUD and the complete/incomplete status transitions
package store

import "github.com/udaraw/crm-api/models"

// Activities returns the activity collection in insertion order.
func (s *Store) Activities() []models.Activity {
	return s.activities
}

// Activity looks up an activity by id.
func (s *Store) Activity(id string) (models.Activity, bool) {
	for _, a := range s.activities {
		if a.ID == id {
			return a, true
		}
	}
	return models.Activity{}, false
}

// CreateActivity assigns a generated id and appends the activity.
func (s *Store) CreateActivity(a models.Activity) models.Activity {
	a.ID = NewID("act")
	s.activities = append(s.activities, a)
	return a
}

// UpdateActivity shallow-merges the patch into the stored activity.
func (s *Store) UpdateActivity(id string, p models.ActivityPatch) (models.Activity, bool) {
	for i := range s.activities {
		if s.activities[i].ID != id {
			continue
		}
		a := &s.activities[i]
		if p.Type != nil {
			a.Type = *p.Type
		}
		if p.Subject != nil {
			a.Subject = *p.Subject
		}
		if p.Notes != nil {
			a.Notes = *p.Notes
		}
		if p.RelatedTo != nil {
			a.RelatedTo = *p.RelatedTo
		}
		if p.RelatedType != nil {
			a.RelatedType = *p.RelatedType
		}
		if p.RelatedID != nil {
			a.RelatedID = *p.RelatedID
		}
		if p.DueDate != nil {
			a.DueDate = *p.DueDate
		}
		if p.CompletedDate.Set {
			a.CompletedDate = p.CompletedDate.Value
		}
		if p.Status != nil {
			a.Status = *p.Status
		}
		if p.AssignedTo != nil {
			a.AssignedTo = *p.AssignedTo
		}
		if p.CreatedAt != nil {
			a.CreatedAt = *p.CreatedAt
		}
		return *a, true
	}
	return models.Activity{}, false
}

// MarkComplete sets the status to Completed and stamps today's date.
func (s *Store) MarkComplete(id string) (models.Activity, bool) {
	for i := range s.activities {
		if s.activities[i].ID != id {
			continue
		}
		a := &s.activities[i]
		a.Status = models.ActivityCompleted
		d := today()
		a.CompletedDate = &d
		return *a, true
	}
	return models.Activity{}, false
}

// MarkIncomplete clears the completion date and re-derives the status:
// Overdue when the due date has passed, Pending otherwise. Due dates
// are YYYY-MM-DD strings, so the comparison is lexicographic.
func (s *Store) MarkIncomplete(id string) (models.Activity, bool) {
	for i := range s.activities {
		if s.activities[i].ID != id {
			continue
		}
		a := &s.activities[i]
		if a.DueDate < today() {
			a.Status = models.ActivityOverdue
		} else {
			a.Status = models.ActivityPending
		}
		a.CompletedDate = nil
		return *a, true
	}
	return models.Activity{}, false
}

// DeleteActivity removes the activity, reporting whether it existed.
func (s *Store) DeleteActivity(id string) bool {
	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			return true
		}
	}
	return false
}

// SeedActivities replaces the entire activity collection.
func (s *Store) SeedActivities(data []models.Activity) {
	s.activities = data
}
