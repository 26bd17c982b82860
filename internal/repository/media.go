package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/Shivanand-hulikatti/happenings/internal/model"
)

// InsertMedia prepends a fully formed item to the collection (newest first).
func (s *Store) InsertMedia(_ context.Context, item model.MediaItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.media, func(m model.MediaItem) bool { return m.ID == item.ID }) {
		return fmt.Errorf("insert media: duplicate id %q", item.ID)
	}

	next := make([]model.MediaItem, 0, len(s.media)+1)
	next = append(next, item.Clone())
	next = append(next, s.media...)
	s.media = next
	return nil
}

// ListMedia returns every media item, newest first.
func (s *Store) ListMedia(_ context.Context) []model.MediaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMedia(s.media)
}

// GetMedia returns a single item or ErrNotFound.
func (s *Store) GetMedia(_ context.Context, id string) (*model.MediaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.media, func(m model.MediaItem) bool { return m.ID == id })
	if i < 0 {
		return nil, ErrNotFound
	}
	item := s.media[i].Clone()
	return &item, nil
}

// UpdateMedia replaces the item with the given id by fn's result and returns
// the new value. The collection is rebuilt rather than edited in place.
func (s *Store) UpdateMedia(_ context.Context, id string, fn func(model.MediaItem) model.MediaItem) (*model.MediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.media, func(m model.MediaItem) bool { return m.ID == id })
	if i < 0 {
		return nil, ErrNotFound
	}

	updated := fn(s.media[i].Clone())
	updated.ID = id

	next := slices.Clone(s.media)
	next[i] = updated
	s.media = next

	out := updated.Clone()
	return &out, nil
}
