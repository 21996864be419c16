// ABOUTME: In-memory record store for the CRM demo
// ABOUTME: Owns the entity collections, settings slot, and ID generation
package store

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/udaraw/crm-api/models"
)

// Store holds every entity collection plus the settings singleton.
// Collections keep insertion order. There is no locking: request
// handling mutates the store from a single goroutine's perspective per
// operation, and the demo accepts the single-writer model the original
// runs under.
type Store struct {
	contacts   []models.Contact
	companies  []models.Company
	deals      []models.Deal
	activities []models.Activity
	settings   *models.Settings
}

// New returns an empty store. Call SeedDefaults (or the per-collection
// seed methods) before serving traffic.
func New() *Store {
	return &Store{}
}

// IsSeeded reports whether the store holds data, checked the same way
// the seed middleware does: a non-empty contact collection.
func (s *Store) IsSeeded() bool {
	return len(s.contacts) > 0
}

// Reset drops every collection and the settings slot. Used by tests.
func (s *Store) Reset() {
	s.contacts = nil
	s.companies = nil
	s.deals = nil
	s.activities = nil
	s.settings = nil
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID builds a collision-resistant identifier of the form
// {prefix}-{millisecond timestamp}-{9 random base36 chars}. Unique with
// overwhelming probability within a process; not coordinated across
// processes.
func NewID(prefix string) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}

// today returns the process-local date as YYYY-MM-DD.
func today() string {
	return time.Now().Format("2006-01-02")
}
