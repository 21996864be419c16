// ABOUTME: Settings singleton store operations
// ABOUTME: Each top-level settings key is replaced wholesale, never deep-merged
package store

import "github.com/udaraw/crm-api/models"

// Settings returns the singleton. The second return is false until the
// store has been seeded with settings.
func (s *Store) Settings() (models.Settings, bool) {
	if s.settings == nil {
		return models.Settings{}, false
	}
	return *s.settings, true
}

// ReplaceProfile swaps the whole profile sub-object. Sibling top-level
// keys are untouched.
func (s *Store) ReplaceProfile(p models.Profile) (models.Settings, bool) {
	if s.settings == nil {
		return models.Settings{}, false
	}
	s.settings.Profile = p
	return *s.settings, true
}

// ReplacePipelineStages swaps the pipeline stage list.
func (s *Store) ReplacePipelineStages(stages []models.PipelineStage) (models.Settings, bool) {
	if s.settings == nil {
		return models.Settings{}, false
	}
	s.settings.PipelineStages = stages
	return *s.settings, true
}

// ReplaceCustomFields swaps the custom field list.
func (s *Store) ReplaceCustomFields(fields []models.CustomField) (models.Settings, bool) {
	if s.settings == nil {
		return models.Settings{}, false
	}
	s.settings.CustomFields = fields
	return *s.settings, true
}

// ReplaceNotifications swaps the whole notifications sub-object.
func (s *Store) ReplaceNotifications(n models.NotificationSettings) (models.Settings, bool) {
	if s.settings == nil {
		return models.Settings{}, false
	}
	s.settings.Notifications = n
	return *s.settings, true
}

// SeedSettings installs the settings singleton.
func (s *Store) SeedSettings(data models.Settings) {
	s.settings = &data
}
