// ABOUTME: Deal REST handlers
// ABOUTME: Full list, CRUD, and the dedicated stage-transition endpoint
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/udaraw/crm-api/models"
	"github.com/udaraw/crm-api/store"
)

type DealHandlers struct {
	store *store.Store
}

func NewDealHandlers(st *store.Store) *DealHandlers {
	return &DealHandlers{store: st}
}

// List returns the full deal collection. No pagination is exposed for
// deals; the kanban client wants the whole board.
func (h *DealHandlers) List(c *gin.Context) {
	deals := h.store.Deals()
	if deals == nil {
		deals = []models.Deal{}
	}
	c.JSON(http.StatusOK, gin.H{"data": deals, "total": len(deals)})
}

func (h *DealHandlers) Get(c *gin.Context) {
	deal, ok := h.store.Deal(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": deal})
}

type dealCreateRequest struct {
	Name              string                `json:"name"`
	CompanyID         string                `json:"companyId"`
	CompanyName       string                `json:"companyName"`
	ContactID         string                `json:"contactId"`
	ContactName       string                `json:"contactName"`
	Value             *float64              `json:"value"`
	Stage             string                `json:"stage"`
	Probability       int                   `json:"probability"`
	ExpectedCloseDate string                `json:"expectedCloseDate"`
	CreatedAt         string                `json:"createdAt"`
	StageHistory      []models.StageHistory `json:"stageHistory"`
}

func (h *DealHandlers) Create(c *gin.Context) {
	var body dealCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if body.Name == "" || body.CompanyID == "" || body.ContactID == "" || body.Value == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: name, companyId, contactId, value"})
		return
	}

	deal := h.store.CreateDeal(models.Deal{
		Name:              body.Name,
		CompanyID:         body.CompanyID,
		CompanyName:       body.CompanyName,
		ContactID:         body.ContactID,
		ContactName:       body.ContactName,
		Value:             *body.Value,
		Stage:             body.Stage,
		Probability:       body.Probability,
		ExpectedCloseDate: body.ExpectedCloseDate,
		CreatedAt:         body.CreatedAt,
		StageHistory:      body.StageHistory,
	})
	c.JSON(http.StatusCreated, gin.H{"data": deal})
}

// Update applies a partial update. Stage and probability can be set
// here without going through the stage machine, so a full update can
// leave them out of sync with the fixed mapping. The PATCH stage path
// is the consistent one.
func (h *DealHandlers) Update(c *gin.Context) {
	var patch models.DealPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, ok := h.store.UpdateDeal(c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// MoveStage validates the stage vocabulary and delegates the
// transition to the store, which derives the probability and appends
// the history entry.
func (h *DealHandlers) MoveStage(c *gin.Context) {
	var body struct {
		Stage string `json:"stage"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if body.Stage == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: stage"})
		return
	}
	if !models.ValidStage(body.Stage) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid stage. Must be one of: " + strings.Join(models.Stages, ", "),
		})
		return
	}

	updated, ok := h.store.MoveStage(c.Param("id"), body.Stage)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}

func (h *DealHandlers) Delete(c *gin.Context) {
	if !h.store.DeleteDeal(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deal deleted successfully"})
}
