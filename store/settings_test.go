// ABOUTME: Tests for the settings singleton store
// ABOUTME: Verifies wholesale key replacement leaves siblings intact
package store

import (
	"testing"

	"github.com/udaraw/crm-api/models"
)

func seededSettings() *Store {
	s := New()
	s.SeedSettings(models.Settings{
		Profile: models.Profile{ID: "user-1", Name: "Original Name", Email: "orig@example.com", Timezone: "UTC"},
		PipelineStages: []models.PipelineStage{
			{ID: "stage-1", Name: "Lead", Probability: 10, Order: 1},
		},
		CustomFields: []models.CustomField{
			{ID: "field-1", Name: "Referral Source", Type: "text", Entity: "contact"},
		},
		Notifications: models.NotificationSettings{
			Email: models.ChannelToggles{NewDeal: true, DealWon: true},
			InApp: models.ChannelToggles{NewContact: true},
		},
		Timezones: []models.TimezoneOption{{Value: "UTC", Label: "UTC"}},
	})
	return s
}

func TestSettingsUnseeded(t *testing.T) {
	s := New()
	if _, ok := s.Settings(); ok {
		t.Error("Settings should report missing before seeding")
	}
	if _, ok := s.ReplaceProfile(models.Profile{}); ok {
		t.Error("ReplaceProfile should report missing before seeding")
	}
}

func TestReplaceProfilePreservesSiblings(t *testing.T) {
	s := seededSettings()

	updated, ok := s.ReplaceProfile(models.Profile{ID: "user-1", Name: "New Name", Email: "new@example.com"})
	if !ok {
		t.Fatal("ReplaceProfile reported missing settings")
	}
	if updated.Profile.Name != "New Name" {
		t.Errorf("Profile not replaced, got %q", updated.Profile.Name)
	}
	if len(updated.PipelineStages) != 1 || len(updated.CustomFields) != 1 {
		t.Error("Sibling keys must survive a profile replacement")
	}
	if !updated.Notifications.Email.NewDeal {
		t.Error("Notification settings must survive a profile replacement")
	}
}

func TestReplacePipelineStages(t *testing.T) {
	s := seededSettings()

	stages := []models.PipelineStage{
		{ID: "stage-1", Name: "Prospect", Probability: 5, Order: 1},
		{ID: "stage-2", Name: "Committed", Probability: 90, Order: 2},
	}
	updated, ok := s.ReplacePipelineStages(stages)
	if !ok {
		t.Fatal("ReplacePipelineStages reported missing settings")
	}
	if len(updated.PipelineStages) != 2 {
		t.Fatalf("Expected 2 stages, got %d", len(updated.PipelineStages))
	}
	if updated.Profile.Name != "Original Name" {
		t.Error("Profile must survive a pipeline replacement")
	}
}

func TestReplaceNotificationsIsWholesale(t *testing.T) {
	s := seededSettings()

	updated, ok := s.ReplaceNotifications(models.NotificationSettings{
		Email: models.ChannelToggles{DealLost: true},
	})
	if !ok {
		t.Fatal("ReplaceNotifications reported missing settings")
	}
	if updated.Notifications.Email.NewDeal {
		t.Error("Old email toggles should not survive a wholesale replace")
	}
	if !updated.Notifications.Email.DealLost {
		t.Error("New email toggle not applied")
	}
	if updated.Notifications.InApp.NewContact {
		t.Error("InApp channel should be zeroed by a wholesale replace")
	}
}
