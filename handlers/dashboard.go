// ABOUTME: Dashboard REST handlers
// ABOUTME: Serves the aggregation projections computed by the store
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udaraw/crm-api/store"
)

type DashboardHandlers struct {
	store *store.Store
}

func NewDashboardHandlers(st *store.Store) *DashboardHandlers {
	return &DashboardHandlers{store: st}
}

func (h *DashboardHandlers) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

func (h *DashboardHandlers) Pipeline(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.PipelineBreakdownByStage())
}

func (h *DashboardHandlers) WinRate(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.WinRate())
}

func (h *DashboardHandlers) RecentDeals(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.RecentDeals(intQuery(c, "limit", 5)))
}

func (h *DashboardHandlers) UpcomingActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.UpcomingActivities(intQuery(c, "limit", 5)))
}
