package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/Shivanand-hulikatti/happenings/internal/model"
)

// InsertEvent prepends a fully formed event to the collection.
func (s *Store) InsertEvent(_ context.Context, event model.PublicEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.events, func(e model.PublicEvent) bool { return e.ID == event.ID }) {
		return fmt.Errorf("insert event: duplicate id %q", event.ID)
	}

	next := make([]model.PublicEvent, 0, len(s.events)+1)
	next = append(next, event.Clone())
	next = append(next, s.events...)
	s.events = next
	return nil
}

// ListEvents returns every event in collection order.
func (s *Store) ListEvents(_ context.Context) []model.PublicEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEvents(s.events)
}

// GetEvent returns a single event or ErrNotFound.
func (s *Store) GetEvent(_ context.Context, id string) (*model.PublicEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.events, func(e model.PublicEvent) bool { return e.ID == id })
	if i < 0 {
		return nil, ErrNotFound
	}
	event := s.events[i].Clone()
	return &event, nil
}

// AppendSignup adds a signup to the end of an event's signup list.
// Duplicate users and dates outside the schedule are accepted.
func (s *Store) AppendSignup(_ context.Context, eventID string, signup model.EventSignup) (*model.PublicEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.events, func(e model.PublicEvent) bool { return e.ID == eventID })
	if i < 0 {
		return nil, ErrNotFound
	}

	updated := s.events[i].Clone()
	updated.Signups = append(updated.Signups, signup)

	next := slices.Clone(s.events)
	next[i] = updated
	s.events = next

	out := updated.Clone()
	return &out, nil
}
