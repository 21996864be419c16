// ABOUTME: Deal store operations
// ABOUTME: Handles deal CRUD, the stage transition machine, and seeding
package store

import "github.com/udaraw/crm-api/models"

// Deals returns the deal collection in insertion order.
func (s *Store) Deals() []models.Deal {
	return s.deals
}

// Deal looks up a deal by id.
func (s *Store) Deal(id string) (models.Deal, bool) {
	for _, d := range s.deals {
		if d.ID == id {
			return d, true
		}
	}
	return models.Deal{}, false
}

// CreateDeal assigns a generated id and appends the deal. The stage
// history slice is never left nil so it serializes as [].
func (s *Store) CreateDeal(d models.Deal) models.Deal {
	d.ID = NewID("deal")
	if d.StageHistory == nil {
		d.StageHistory = []models.StageHistory{}
	}
	s.deals = append(s.deals, d)
	return d
}

// UpdateDeal shallow-merges the patch into the stored deal. Stage and
// probability may be set independently here; only MoveStage keeps them
// consistent with the fixed mapping.
func (s *Store) UpdateDeal(id string, p models.DealPatch) (models.Deal, bool) {
	for i := range s.deals {
		if s.deals[i].ID != id {
			continue
		}
		d := &s.deals[i]
		if p.Name != nil {
			d.Name = *p.Name
		}
		if p.CompanyID != nil {
			d.CompanyID = *p.CompanyID
		}
		if p.CompanyName != nil {
			d.CompanyName = *p.CompanyName
		}
		if p.ContactID != nil {
			d.ContactID = *p.ContactID
		}
		if p.ContactName != nil {
			d.ContactName = *p.ContactName
		}
		if p.Value != nil {
			d.Value = *p.Value
		}
		if p.Stage != nil {
			d.Stage = *p.Stage
		}
		if p.Probability != nil {
			d.Probability = *p.Probability
		}
		if p.ExpectedCloseDate != nil {
			d.ExpectedCloseDate = *p.ExpectedCloseDate
		}
		if p.CreatedAt != nil {
			d.CreatedAt = *p.CreatedAt
		}
		if p.StageHistory != nil {
			d.StageHistory = *p.StageHistory
		}
		return *d, true
	}
	return models.Deal{}, false
}

// MoveStage moves a deal to newStage, derives the probability from the
// fixed stage mapping, and appends a dated entry to the stage history.
// The history is append-only and never truncated. Stage vocabulary is
// validated by the caller.
func (s *Store) MoveStage(id, newStage string) (models.Deal, bool) {
	for i := range s.deals {
		if s.deals[i].ID != id {
			continue
		}
		d := &s.deals[i]
		d.Stage = newStage
		d.Probability = models.StageProbability[newStage]
		d.StageHistory = append(d.StageHistory, models.StageHistory{
			Stage: newStage,
			Date:  today(),
		})
		return *d, true
	}
	return models.Deal{}, false
}

// DeleteDeal removes the deal, reporting whether it existed.
func (s *Store) DeleteDeal(id string) bool {
	for i := range s.deals {
		if s.deals[i].ID == id {
			s.deals = append(s.deals[:i], s.deals[i+1:]...)
			return true
		}
	}
	return false
}

// SeedDeals replaces the entire deal collection.
func (s *Store) SeedDeals(data []models.Deal) {
	s.deals = data
}
