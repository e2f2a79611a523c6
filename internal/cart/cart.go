// Package cart implements the persistent shopping cart. The cart is an
// ordered sequence of product snapshots, not a set: adding the same product
// twice occupies two positions, and removal shifts later entries left. Every
// mutation persists the full sequence to durable storage; persistence
// failures never take down the session, the in-memory sequence stays
// authoritative.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"neonmart/internal/catalog"
	"neonmart/internal/logging"
	"neonmart/internal/storage"
)

// StorageKey is the durable key-value key holding the serialized cart.
const StorageKey = "cart"

// ErrIndexOutOfRange is returned by Remove for an invalid position. The UI
// should never produce one, but the store guards rather than corrupt state.
var ErrIndexOutOfRange = errors.New("cart: index out of range")

// Entry is a snapshot of a product at the moment it was added. It carries
// the full product fields so later catalog changes never reach the cart.
type Entry struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Badge       string  `json:"badge,omitempty"`
	Description string  `json:"desc"`
}

func snapshot(p catalog.Product) Entry {
	return Entry{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Image:       p.Image,
		Rating:      p.Rating,
		Badge:       p.Badge,
		Description: p.Description,
	}
}

// EventKind classifies cart storage events surfaced to the user.
type EventKind int

const (
	// EventPersistFailed means a write to durable storage failed; the
	// in-memory cart is still valid for the session.
	EventPersistFailed EventKind = iota

	// EventRestoredEmpty means stored content was malformed or unreadable
	// and the cart recovered to an empty sequence.
	EventRestoredEmpty
)

// Event describes a non-fatal storage condition.
type Event struct {
	Kind EventKind
	Err  error
}

// EventFunc receives storage events. Supplied at construction so the cart
// core stays independent of the notification surface.
type EventFunc func(Event)

// Store holds the cart sequence and its persistence wiring.
type Store struct {
	storage storage.Store
	report  EventFunc
	entries []Entry
}

// New creates a cart store over the given durable storage. report may be
// nil, in which case storage events are only logged.
func New(st storage.Store, report EventFunc) *Store {
	return &Store{storage: st, report: report}
}

// Restore loads the persisted cart sequence. A missing key yields an empty
// cart silently; malformed content yields an empty cart and an
// EventRestoredEmpty event instead of a propagated parse error.
func (s *Store) Restore() {
	s.entries = nil

	data, err := s.storage.Get(StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logging.Cart("no persisted cart, starting empty")
			return
		}
		logging.StorageWarn("cart restore failed: %v", err)
		s.emit(Event{Kind: EventRestoredEmpty, Err: err})
		return
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		logging.StorageWarn("cart content malformed, recovered empty: %v", err)
		s.emit(Event{Kind: EventRestoredEmpty, Err: err})
		return
	}

	s.entries = entries
	logging.Cart("restored %d entries", len(entries))
}

// Add appends a snapshot of p to the cart, persists, and returns the new
// cart length.
func (s *Store) Add(p catalog.Product) int {
	s.entries = append(s.entries, snapshot(p))
	logging.Cart("added %q at position %d", p.Name, len(s.entries)-1)
	s.persist()
	return len(s.entries)
}

// Remove deletes the entry at index, shifting later entries left, and
// persists. Returns ErrIndexOutOfRange for an invalid index; the cart is
// left untouched in that case.
func (s *Store) Remove(index int) error {
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, len(s.entries))
	}
	removed := s.entries[index]
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	logging.Cart("removed %q from position %d", removed.Name, index)
	s.persist()
	return nil
}

// Clear empties the cart and removes the persisted key.
func (s *Store) Clear() error {
	s.entries = nil
	return s.storage.Delete(StorageKey)
}

// Total returns the sum of entry prices rounded to 2 decimal places.
// Computed fresh on every call so display totals cannot drift.
func (s *Store) Total() float64 {
	var sum float64
	for _, e := range s.entries {
		sum += e.Price
	}
	return math.Round(sum*100) / 100
}

// Count returns the current cart length.
func (s *Store) Count() int {
	return len(s.entries)
}

// Items returns a copy of the cart sequence in insertion order.
func (s *Store) Items() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// persist serializes the full sequence to durable storage. Failure is
// reported, never returned: the session continues on in-memory state.
func (s *Store) persist() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		// Entries are plain values; marshal cannot realistically fail,
		// but the guard keeps the policy uniform.
		s.emit(Event{Kind: EventPersistFailed, Err: err})
		return
	}
	if err := s.storage.Set(StorageKey, data); err != nil {
		logging.StorageWarn("cart persist failed: %v", err)
		s.emit(Event{Kind: EventPersistFailed, Err: err})
	}
}

func (s *Store) emit(ev Event) {
	if s.report != nil {
		s.report(ev)
	}
}
