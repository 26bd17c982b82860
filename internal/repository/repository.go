// Package repository implements the in-memory Domain Store for Happenings.
// Collections are replaced wholesale on every write and deep-copied on every
// read, so no caller ever holds a reference into store-owned state.
package repository

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/Shivanand-hulikatti/happenings/internal/model"
)

// ErrNotFound is returned when a command targets an unknown media item or event.
var ErrNotFound = errors.New("not found")

// Store owns the canonical media, event and artist collections.
type Store struct {
	mu      sync.RWMutex
	media   []model.MediaItem
	events  []model.PublicEvent
	artists []model.Artist
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewSeededStore returns a store loaded with the illustrative fixture.
func NewSeededStore() *Store {
	s := NewStore()
	s.Load(SeedMedia(), SeedEvents(), SeedArtists())
	return s
}

// Load replaces every collection with copies of the given records.
func (s *Store) Load(media []model.MediaItem, events []model.PublicEvent, artists []model.Artist) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.media = cloneMedia(media)
	s.events = cloneEvents(events)
	s.artists = slices.Clone(artists)
}

// Snapshot is a point-in-time copy of every collection.
type Snapshot struct {
	Media   []model.MediaItem
	Events  []model.PublicEvent
	Artists []model.Artist
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot(_ context.Context) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Media:   cloneMedia(s.media),
		Events:  cloneEvents(s.events),
		Artists: slices.Clone(s.artists),
	}
}

func cloneMedia(in []model.MediaItem) []model.MediaItem {
	if in == nil {
		return nil
	}
	out := make([]model.MediaItem, len(in))
	for i, m := range in {
		out[i] = m.Clone()
	}
	return out
}

func cloneEvents(in []model.PublicEvent) []model.PublicEvent {
	if in == nil {
		return nil
	}
	out := make([]model.PublicEvent, len(in))
	for i, e := range in {
		out[i] = e.Clone()
	}
	return out
}
