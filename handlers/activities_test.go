// ABOUTME: Tests for activity endpoints
// ABOUTME: Filtered listing, validation defaults, and completion toggles
package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udaraw/crm-api/models"
)

type activityListEnvelope struct {
	Data  []models.Activity `json:"data"`
	Total int               `json:"total"`
}

func TestListActivitiesSortedByDueDate(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/api/activities", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body activityListEnvelope
	decode(t, w, &body)
	assert.Equal(t, 8, body.Total)
	for i := 1; i < len(body.Data); i++ {
		assert.LessOrEqual(t, body.Data[i-1].DueDate, body.Data[i].DueDate)
	}
}

func TestListActivitiesTypeFilter(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/api/activities?type=Call", nil)

	var body activityListEnvelope
	decode(t, w, &body)
	assert.Equal(t, 2, body.Total)
	for _, a := range body.Data {
		assert.Equal(t, "Call", a.Type)
	}
}

func TestListActivitiesStatusFilter(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/api/activities?status=Completed", nil)

	var body activityListEnvelope
	decode(t, w, &body)
	assert.Equal(t, 3, body.Total)
}

func TestGetActivity(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodGet, "/api/activities/act-001", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var activity models.Activity
	decode(t, w, &activity)
	assert.Equal(t, "Discovery call with Sarah Chen", activity.Subject)
}

func TestCreateActivityDefaults(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodPost, "/api/activities", map[string]any{
		"type":    "Call",
		"subject": "Kickoff call",
		"dueDate": "2026-09-15",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var activity models.Activity
	decode(t, w, &activity)
	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, "Contact", activity.RelatedType)
	assert.Equal(t, "Pending", activity.Status)
	assert.NotEmpty(t, activity.CreatedAt)
}

func TestCreateActivityMissingFields(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodPost, "/api/activities", map[string]any{
		"type": "Call",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields: type, subject, dueDate", errorMessage(t, w))
}

func TestMarkActivityComplete(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodPatch, "/api/activities/act-001/complete", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var activity models.Activity
	decode(t, w, &activity)
	assert.Equal(t, "Completed", activity.Status)
	require.NotNil(t, activity.CompletedDate)
}

func TestMarkActivityIncompletePastDue(t *testing.T) {
	router, _ := newTestRouter()

	// act-004 was completed and its due date is long past, so undoing
	// the completion lands it in Overdue.
	w := doRequest(t, router, http.MethodPatch, "/api/activities/act-004/incomplete", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var activity models.Activity
	decode(t, w, &activity)
	assert.Equal(t, "Overdue", activity.Status)
	assert.Nil(t, activity.CompletedDate)
}

func TestMarkActivityCompleteNotFound(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodPatch, "/api/activities/act-999/complete", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Activity not found", errorMessage(t, w))
}

func TestUpdateActivity(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodPut, "/api/activities/act-001", map[string]any{
		"notes": "Rescheduled to next week",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var activity models.Activity
	decode(t, w, &activity)
	assert.Equal(t, "Rescheduled to next week", activity.Notes)
	assert.Equal(t, "Discovery call with Sarah Chen", activity.Subject)
}

func TestDeleteActivity(t *testing.T) {
	router, _ := newTestRouter()
	w := doRequest(t, router, http.MethodDelete, "/api/activities/act-001", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "Activity deleted successfully", body["message"])
}
