// ABOUTME: Activity REST handlers
// ABOUTME: Filtered listing, CRUD, and complete/incomplete transitions
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/udaraw/crm-api/models"
	"github.com/udaraw/crm-api/store"
)

type ActivityHandlers struct {
	store *store.Store
}

func NewActivityHandlers(st *store.Store) *ActivityHandlers {
	return &ActivityHandlers{store: st}
}

// List returns activities filtered by type, status, and an optional
// coarse date range, sorted ascending by due date.
func (h *ActivityHandlers) List(c *gin.Context) {
	matched := h.store.FindActivities(c.Query("type"), c.Query("status"), c.Query("dateRange"))
	c.JSON(http.StatusOK, gin.H{"data": matched, "total": len(matched)})
}

func (h *ActivityHandlers) Get(c *gin.Context) {
	activity, ok := h.store.Activity(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (h *ActivityHandlers) Create(c *gin.Context) {
	var body models.Activity
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if body.Type == "" || body.Subject == "" || body.DueDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: type, subject, dueDate"})
		return
	}

	if body.RelatedType == "" {
		body.RelatedType = models.RelatedContact
	}
	if body.Status == "" {
		body.Status = models.ActivityPending
	}
	if body.CreatedAt == "" {
		body.CreatedAt = time.Now().Format("2006-01-02")
	}

	body.ID = ""
	c.JSON(http.StatusCreated, h.store.CreateActivity(body))
}

func (h *ActivityHandlers) Update(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Activity(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	var patch models.ActivityPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, _ := h.store.UpdateActivity(id, patch)
	c.JSON(http.StatusOK, updated)
}

func (h *ActivityHandlers) MarkComplete(c *gin.Context) {
	updated, ok := h.store.MarkComplete(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ActivityHandlers) MarkIncomplete(c *gin.Context) {
	updated, ok := h.store.MarkIncomplete(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ActivityHandlers) Delete(c *gin.Context) {
	if !h.store.DeleteActivity(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}
