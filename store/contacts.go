// ABOUTME: Contact store operations
// ABOUTME: Handles contact CRUD and seeding against the in-memory collection
package store

import "github.com/udaraw/crm-api/models"

// Contacts returns the contact collection in insertion order.
func (s *Store) Contacts() []models.Contact {
	return s.contacts
}

// Contact looks up a contact by id. The second return is false when no
// contact with that id exists.
func (s *Store) Contact(id string) (models.Contact, bool) {
	for _, c := range s.contacts {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contact{}, false
}

// CreateContact assigns a generated id and appends the contact.
func (s *Store) CreateContact(c models.Contact) models.Contact {
	c.ID = NewID("c")
	s.contacts = append(s.contacts, c)
	return c
}

// UpdateContact shallow-merges the patch into the stored contact. The
// id is never changed.
func (s *Store) UpdateContact(id string, p models.ContactPatch) (models.Contact, bool) {
	for i := range s.contacts {
		if s.contacts[i].ID != id {
			continue
		}
		c := &s.contacts[i]
		if p.FirstName != nil {
			c.FirstName = *p.FirstName
		}
		if p.LastName != nil {
			c.LastName = *p.LastName
		}
		if p.Email != nil {
			c.Email = *p.Email
		}
		if p.Phone != nil {
			c.Phone = *p.Phone
		}
		if p.Company != nil {
			c.Company = *p.Company
		}
		if p.CompanyID != nil {
			c.CompanyID = *p.CompanyID
		}
		if p.Status != nil {
			c.Status = *p.Status
		}
		if p.JobTitle != nil {
			c.JobTitle = *p.JobTitle
		}
		if p.LastActivity != nil {
			c.LastActivity = *p.LastActivity
		}
		if p.CreatedAt != nil {
			c.CreatedAt = *p.CreatedAt
		}
		return *c, true
	}
	return models.Contact{}, false
}

// DeleteContact removes the contact, reporting whether it existed.
func (s *Store) DeleteContact(id string) bool {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return true
		}
	}
	return false
}

// SeedContacts replaces the entire contact collection.
func (s *Store) SeedContacts(data []models.Contact) {
	s.contacts = data
}
