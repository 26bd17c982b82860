package repository

import (
	"context"
	"slices"
	"strings"

	"github.com/Shivanand-hulikatti/happenings/internal/model"
)

// ListArtists returns the artist roster.
func (s *Store) ListArtists(_ context.Context) []model.Artist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.artists)
}

// GetArtistByHandle looks an artist up by handle, ignoring case.
func (s *Store) GetArtistByHandle(_ context.Context, handle string) (*model.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.artists, func(a model.Artist) bool { return strings.EqualFold(a.Handle, handle) })
	if i < 0 {
		return nil, ErrNotFound
	}
	a := s.artists[i]
	return &a, nil
}
