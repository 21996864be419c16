// ABOUTME: Settings REST handlers
// ABOUTME: Sub-resource reads and replace-wholesale updates per settings key
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udaraw/crm-api/models"
	"github.com/udaraw/crm-api/store"
)

type SettingsHandlers struct {
	store *store.Store
}

func NewSettingsHandlers(st *store.Store) *SettingsHandlers {
	return &SettingsHandlers{store: st}
}

func (h *SettingsHandlers) Get(c *gin.Context) {
	settings, ok := h.store.Settings()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": settings})
}

func (h *SettingsHandlers) GetProfile(c *gin.Context) {
	settings, ok := h.store.Settings()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": settings.Profile})
}

// UpdateProfile merges the supplied fields over the current profile
// and replaces the profile sub-object wholesale. Sibling settings keys
// are untouched.
func (h *SettingsHandlers) UpdateProfile(c *gin.Context) {
	settings, ok := h.store.Settings()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}

	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	profile := settings.Profile
	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.Email != nil {
		profile.Email = *patch.Email
	}
	if patch.Avatar.Set {
		profile.Avatar = patch.Avatar.Value
	}
	if patch.Timezone != nil {
		profile.Timezone = *patch.Timezone
	}
	if patch.Role != nil {
		profile.Role = *patch.Role
	}

	updated, _ := h.store.ReplaceProfile(profile)
	c.JSON(http.StatusOK, gin.H{"data": updated.Profile})
}

func (h *SettingsHandlers) GetPipelineStages(c *gin.Context) {
	settings, ok := h.store.Settings()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": settings.PipelineStages})
}

func (h *SettingsHandlers) UpdatePipelineStages(c *gin.Context) {
	if _, ok := h.store.Settings(); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}

	var stages []models.PipelineStage
	if err := c.ShouldBindJSON(&stages); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pipeline stages must be an array"})
		return
	}

	updated, _ := h.store.ReplacePipelineStages(stages)
	c.JSON(http.StatusOK, gin.H{"data": updated.PipelineStages})
}

func (h *SettingsHandlers) GetCustomFields(c *gin.Context) {
	settings, ok := h.store.Settings()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": settings.CustomFields})
}

func (h *SettingsHandlers) UpdateCustomFields(c *gin.Context) {
	if _, ok := h.store.Settings(); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}

	var fields []models.CustomField
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Custom fields must be an array"})
		return
	}

	updated, _ := h.store.ReplaceCustomFields(fields)
	c.JSON(http.StatusOK, gin.H{"data": updated.CustomFields})
}

func (h *SettingsHandlers) GetNotifications(c *gin.Context) {
	settings, ok := h.store.Settings()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": settings.Notifications})
}

// UpdateNotifications replaces whichever channel objects the caller
// supplies. Each channel is swapped wholesale, so callers must send
// the full set of toggles for a channel they touch.
func (h *SettingsHandlers) UpdateNotifications(c *gin.Context) {
	settings, ok := h.store.Settings()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}

	var patch models.NotificationsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	notifications := settings.Notifications
	if patch.Email != nil {
		notifications.Email = *patch.Email
	}
	if patch.InApp != nil {
		notifications.InApp = *patch.InApp
	}

	updated, _ := h.store.ReplaceNotifications(notifications)
	c.JSON(http.StatusOK, gin.H{"data": updated.Notifications})
}

func (h *SettingsHandlers) GetTimezones(c *gin.Context) {
	settings, ok := h.store.Settings()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": settings.Timezones})
}
