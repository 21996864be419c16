// ABOUTME: Contact REST handlers
// ABOUTME: Implements paginated listing, lookup, create, update, and delete
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/udaraw/crm-api/models"
	"github.com/udaraw/crm-api/store"
)

type ContactHandlers struct {
	store *store.Store
}

func NewContactHandlers(st *store.Store) *ContactHandlers {
	return &ContactHandlers{store: st}
}

// List returns contacts filtered by status and search term, paginated.
func (h *ContactHandlers) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 10)
	status := c.Query("status")
	search := c.Query("search")

	matched := h.store.FindContacts(status, search)
	c.JSON(http.StatusOK, store.Paginate(matched, page, pageSize))
}

func (h *ContactHandlers) Get(c *gin.Context) {
	contact, ok := h.store.Contact(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandlers) Create(c *gin.Context) {
	var body models.Contact
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if body.FirstName == "" || body.LastName == "" || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "firstName, lastName, and email are required"})
		return
	}

	if body.Status == "" {
		body.Status = models.ContactStatusLead
	}
	today := time.Now().Format("2006-01-02")
	if body.LastActivity == "" {
		body.LastActivity = today
	}
	if body.CreatedAt == "" {
		body.CreatedAt = today
	}

	body.ID = ""
	c.JSON(http.StatusCreated, h.store.CreateContact(body))
}

func (h *ContactHandlers) Update(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Contact(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	var patch models.ContactPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, _ := h.store.UpdateContact(id, patch)
	c.JSON(http.StatusOK, updated)
}

func (h *ContactHandlers) Delete(c *gin.Context) {
	if !h.store.DeleteContact(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}

// intQuery parses a positive integer query parameter, falling back to
// the default on absent or unparseable values.
func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
