// ABOUTME: Company REST handlers
// ABOUTME: Enforces the parent/child hierarchy guard on writes and deletes
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/udaraw/crm-api/models"
	"github.com/udaraw/crm-api/store"
)

type CompanyHandlers struct {
	store *store.Store
}

func NewCompanyHandlers(st *store.Store) *CompanyHandlers {
	return &CompanyHandlers{store: st}
}

// List returns companies filtered by industry and search term, paginated.
func (h *CompanyHandlers) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 10)
	industry := c.Query("industry")
	search := c.Query("search")

	matched := h.store.FindCompanies(industry, search)
	c.JSON(http.StatusOK, store.Paginate(matched, page, pageSize))
}

// Get returns one company; when other companies reference it as their
// parent, the response carries a children array.
func (h *CompanyHandlers) Get(c *gin.Context) {
	id := c.Param("id")
	company, ok := h.store.Company(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	response := struct {
		models.Company
		Children []models.Company `json:"children,omitempty"`
	}{Company: company, Children: h.store.Children(id)}

	c.JSON(http.StatusOK, response)
}

func (h *CompanyHandlers) Create(c *gin.Context) {
	var body models.Company
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if body.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company name is required"})
		return
	}

	if body.ParentID != nil {
		if _, ok := h.store.Company(*body.ParentID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent company not found"})
			return
		}
	}

	if body.CreatedAt == "" {
		body.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	body.ID = ""
	c.JSON(http.StatusCreated, h.store.CreateCompany(body))
}

// Update applies a partial update after running the hierarchy guard:
// a company may not be its own parent, the parent must exist, and the
// parent must not already be a child of this company. Cycles deeper
// than two levels are not detected.
func (h *CompanyHandlers) Update(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Company(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	var patch models.CompanyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if patch.ParentID.Set && patch.ParentID.Value != nil {
		parentID := *patch.ParentID.Value
		if parentID == id {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Company cannot be its own parent"})
			return
		}
		parent, ok := h.store.Company(parentID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent company not found"})
			return
		}
		if parent.ParentID != nil && *parent.ParentID == id {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Circular parent reference not allowed"})
			return
		}
	}

	updated, _ := h.store.UpdateCompany(id, patch)
	c.JSON(http.StatusOK, updated)
}

// Delete removes a company unless other companies still reference it
// as their parent.
func (h *CompanyHandlers) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Company(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	if h.store.HasChildren(id) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cannot delete company with child companies. Delete or reassign children first.",
		})
		return
	}

	h.store.DeleteCompany(id)
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
}
