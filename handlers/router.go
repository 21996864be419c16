// ABOUTME: Router assembly and shared middleware for the REST boundary
// ABOUTME: Wires resource handlers, seeding, request IDs, and error fallbacks
package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/udaraw/crm-api/store"
)

const (
	APIName = "CRM API"
	Version = "1.0.0"
)

// NewRouter builds the gin engine serving the full /api surface over
// the given store.
func NewRouter(st *store.Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Printf("panic recovered: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	router.Use(RequestID())
	router.Use(SeedOnFirstRequest(st))

	// Health check
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":      APIName,
			"version":   Version,
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")

	contacts := NewContactHandlers(st)
	api.GET("/contacts", contacts.List)
	api.GET("/contacts/:id", contacts.Get)
	api.POST("/contacts", contacts.Create)
	api.PUT("/contacts/:id", contacts.Update)
	api.DELETE("/contacts/:id", contacts.Delete)

	companies := NewCompanyHandlers(st)
	api.GET("/companies", companies.List)
	api.GET("/companies/:id", companies.Get)
	api.POST("/companies", companies.Create)
	api.PUT("/companies/:id", companies.Update)
	api.DELETE("/companies/:id", companies.Delete)

	deals := NewDealHandlers(st)
	api.GET("/deals", deals.List)
	api.GET("/deals/:id", deals.Get)
	api.POST("/deals", deals.Create)
	api.PUT("/deals/:id", deals.Update)
	api.PATCH("/deals/:id/stage", deals.MoveStage)
	api.DELETE("/deals/:id", deals.Delete)

	activities := NewActivityHandlers(st)
	api.GET("/activities", activities.List)
	api.GET("/activities/:id", activities.Get)
	api.POST("/activities", activities.Create)
	api.PUT("/activities/:id", activities.Update)
	api.PATCH("/activities/:id/complete", activities.MarkComplete)
	api.PATCH("/activities/:id/incomplete", activities.MarkIncomplete)
	api.DELETE("/activities/:id", activities.Delete)

	settings := NewSettingsHandlers(st)
	api.GET("/settings", settings.Get)
	api.GET("/settings/profile", settings.GetProfile)
	api.PUT("/settings/profile", settings.UpdateProfile)
	api.GET("/settings/pipeline-stages", settings.GetPipelineStages)
	api.PUT("/settings/pipeline-stages", settings.UpdatePipelineStages)
	api.GET("/settings/custom-fields", settings.GetCustomFields)
	api.PUT("/settings/custom-fields", settings.UpdateCustomFields)
	api.GET("/settings/notifications", settings.GetNotifications)
	api.PUT("/settings/notifications", settings.UpdateNotifications)
	api.GET("/settings/timezones", settings.GetTimezones)

	dashboard := NewDashboardHandlers(st)
	api.GET("/dashboard/stats", dashboard.Stats)
	api.GET("/dashboard/pipeline", dashboard.Pipeline)
	api.GET("/dashboard/win-rate", dashboard.WinRate)
	api.GET("/dashboard/recent-deals", dashboard.RecentDeals)
	api.GET("/dashboard/upcoming-activities", dashboard.UpcomingActivities)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router
}

// RequestID stamps every response with an X-Request-ID, generating one
// when the client did not supply it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// SeedOnFirstRequest loads the static sample data the first time any
// request arrives against an empty store.
func SeedOnFirstRequest(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !st.IsSeeded() {
			log.Println("[API] Seeding database...")
			st.SeedDefaults()
			log.Println("[API] Database seeded successfully")
		}
		c.Next()
	}
}
