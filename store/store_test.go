// ABOUTME: Tests for the store container and ID generation
// ABOUTME: Covers seeding checks, reset, and identifier format
package store

import (
	"strings"
	"testing"

	"github.com/udaraw/crm-api/models"
)

func TestNewIDPrefix(t *testing.T) {
	for _, prefix := range []string{"c", "comp", "deal", "act"} {
		id := NewID(prefix)
		if !strings.HasPrefix(id, prefix+"-") {
			t.Errorf("Expected id %q to start with %q", id, prefix+"-")
		}
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := NewID("c")
		if seen[id] {
			t.Fatalf("Duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestIsSeeded(t *testing.T) {
	s := New()
	if s.IsSeeded() {
		t.Error("Empty store reported as seeded")
	}

	s.SeedContacts([]models.Contact{{ID: "c1", FirstName: "Ada"}})
	if !s.IsSeeded() {
		t.Error("Store with contacts reported as unseeded")
	}
}

func TestSeedDefaults(t *testing.T) {
	s := New()
	s.SeedDefaults()

	if got := len(s.Contacts()); got != 10 {
		t.Errorf("Expected 10 seed contacts, got %d", got)
	}
	if got := len(s.Companies()); got != 8 {
		t.Errorf("Expected 8 seed companies, got %d", got)
	}
	if got := len(s.Deals()); got != 8 {
		t.Errorf("Expected 8 seed deals, got %d", got)
	}
	if got := len(s.Activities()); got != 8 {
		t.Errorf("Expected 8 seed activities, got %d", got)
	}
	if _, ok := s.Settings(); !ok {
		t.Error("Settings were not seeded")
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.SeedDefaults()
	s.Reset()

	if s.IsSeeded() {
		t.Error("Store still seeded after Reset")
	}
	if _, ok := s.Settings(); ok {
		t.Error("Settings survived Reset")
	}
}
