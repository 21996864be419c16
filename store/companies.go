// ABOUTME: Company store operations
// ABOUTME: Handles company CRUD, child lookups, and seeding
package store

import "github.com/udaraw/crm-api/models"

// Companies returns the company collection in insertion order.
func (s *Store) Companies() []models.Company {
	return s.companies
}

// Company looks up a company by id.
func (s *Store) Company(id string) (models.Company, bool) {
	for _, c := range s.companies {
		if c.ID == id {
			return c, true
		}
	}
	return models.Company{}, false
}

// Children returns every company whose parentId references id.
func (s *Store) Children(id string) []models.Company {
	var children []models.Company
	for _, c := range s.companies {
		if c.ParentID != nil && *c.ParentID == id {
			children = append(children, c)
		}
	}
	return children
}

// HasChildren reports whether any company references id as its parent.
func (s *Store) HasChildren(id string) bool {
	for _, c := range s.companies {
		if c.ParentID != nil && *c.ParentID == id {
			return true
		}
	}
	return false
}

// CreateCompany assigns a generated id and appends the company.
func (s *Store) CreateCompany(c models.Company) models.Company {
	c.ID = NewID("comp")
	s.companies = append(s.companies, c)
	return c
}

// UpdateCompany shallow-merges the patch into the stored company.
// Hierarchy validation happens at the boundary before this is called.
func (s *Store) UpdateCompany(id string, p models.CompanyPatch) (models.Company, bool) {
	for i := range s.companies {
		if s.companies[i].ID != id {
			continue
		}
		c := &s.companies[i]
		if p.Name != nil {
			c.Name = *p.Name
		}
		if p.Industry != nil {
			c.Industry = *p.Industry
		}
		if p.Size != nil {
			c.Size = *p.Size
		}
		if p.Website != nil {
			c.Website = *p.Website
		}
		if p.Address != nil {
			c.Address = *p.Address
		}
		if p.ParentID.Set {
			c.ParentID = p.ParentID.Value
		}
		if p.ContactCount != nil {
			c.ContactCount = *p.ContactCount
		}
		if p.TotalDealValue != nil {
			c.TotalDealValue = *p.TotalDealValue
		}
		if p.CreatedAt != nil {
			c.CreatedAt = *p.CreatedAt
		}
		return *c, true
	}
	return models.Company{}, false
}

// DeleteCompany removes the company, reporting whether it existed. The
// has-children guard lives at the boundary.
func (s *Store) DeleteCompany(id string) bool {
	for i := range s.companies {
		if s.companies[i].ID == id {
			s.companies = append(s.companies[:i], s.companies[i+1:]...)
			return true
		}
	}
	return false
}

// SeedCompanies replaces the entire company collection.
func (s *Store) SeedCompanies(data []models.Company) {
	s.companies = data
}
