package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/happenings/internal/model"
	"github.com/Shivanand-hulikatti/happenings/internal/repository"
)

// EventService orchestrates event creation and signups.
type EventService struct {
	store    *repository.Store
	identity model.Identity
	clock    *stamper
}

// NewEventService constructs an EventService. A nil clock means time.Now.
func NewEventService(store *repository.Store, identity model.Identity, clock Clock) *EventService {
	return &EventService{
		store:    store,
		identity: identity,
		clock:    newStamper(clock),
	}
}

// CreateEvent validates the draft and stores a new event, created by the
// active identity, at the front of the collection. Dates are sorted and the
// earliest becomes the display date.
func (s *EventService) CreateEvent(ctx context.Context, draft model.EventDraft) (*model.PublicEvent, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Description = strings.TrimSpace(draft.Description)
	draft.Location = strings.TrimSpace(draft.Location)
	switch {
	case draft.Name == "":
		return nil, invalid("name", "is required")
	case draft.Description == "":
		return nil, invalid("description", "is required")
	case draft.Location == "":
		return nil, invalid("location", "is required")
	case len(draft.EventDates) == 0:
		return nil, invalid("event_dates", "needs at least one date")
	case !draft.Category.Valid():
		return nil, invalid("category", "must be one of music, art, food, tech, other")
	}
	if slices.ContainsFunc(draft.EventDates, time.Time.IsZero) {
		return nil, invalid("event_dates", "cannot contain an empty date")
	}
	if c := draft.Coordinates; c != nil && (c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180) {
		return nil, invalid("coordinates", "are out of range")
	}

	dates := slices.Clone(draft.EventDates)
	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })

	photos := make([]model.MediaItem, len(draft.Photos))
	for i, p := range draft.Photos {
		photos[i] = p.Clone()
	}

	event := model.PublicEvent{
		ID:                newID("event_"),
		Name:              draft.Name,
		Location:          draft.Location,
		Description:       draft.Description,
		Date:              dates[0],
		EventDates:        dates,
		Thumbnail:         strings.TrimSpace(draft.Thumbnail),
		Photos:            photos,
		CreatorID:         s.identity.UserID,
		CreatorName:       s.identity.UserName,
		Category:          draft.Category,
		AssociatedArtists: cleanList(draft.AssociatedArtists),
		IsLive:            draft.IsLive,
		Coordinates:       draft.Coordinates,
		Signups:           []model.EventSignup{},
	}

	if err := s.store.InsertEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return &event, nil
}

// SignupForEvent appends a pending signup to the event. The selected date is
// not checked against the schedule and repeat signups are allowed.
func (s *EventService) SignupForEvent(ctx context.Context, eventID string, draft model.SignupDraft) (*model.EventSignup, error) {
	draft.UserID = strings.TrimSpace(draft.UserID)
	draft.UserName = strings.TrimSpace(draft.UserName)
	draft.ArtistName = strings.TrimSpace(draft.ArtistName)
	draft.ProfileName = strings.TrimSpace(draft.ProfileName)
	switch {
	case eventID == "":
		return nil, invalid("event_id", "is required")
	case draft.UserID == "":
		return nil, invalid("user_id", "is required")
	case draft.UserName == "":
		return nil, invalid("user_name", "is required")
	case draft.SelectedDate.IsZero():
		return nil, invalid("selected_date", "is required")
	}

	switch draft.Type {
	case model.SignupPerformer:
		if draft.ArtistName == "" {
			return nil, invalid("artist_name", "is required for performers")
		}
		if draft.ProfileName == "" {
			return nil, invalid("profile_name", "is required for performers")
		}
	case model.SignupAttendee:
		draft.ArtistName, draft.ProfileName = "", ""
	default:
		return nil, invalid("type", "must be performer or attendee")
	}

	signup := model.EventSignup{
		ID:           newID("signup_"),
		UserID:       draft.UserID,
		UserName:     draft.UserName,
		ArtistName:   draft.ArtistName,
		ProfileName:  draft.ProfileName,
		Type:         draft.Type,
		SelectedDate: draft.SelectedDate,
		Status:       model.SignupPending,
		SignupDate:   s.clock.next(),
	}

	if _, err := s.store.AppendSignup(ctx, eventID, signup); err != nil {
		return nil, fmt.Errorf("sign up for event %s: %w", eventID, err)
	}
	return &signup, nil
}

// ListEvents returns every event in collection order.
func (s *EventService) ListEvents(ctx context.Context) []model.PublicEvent {
	return s.store.ListEvents(ctx)
}

// GetEvent returns a single event by id.
func (s *EventService) GetEvent(ctx context.Context, id string) (*model.PublicEvent, error) {
	if id == "" {
		return nil, invalid("event_id", "is required")
	}
	return s.store.GetEvent(ctx, id)
}

// ListArtists returns the artist roster.
func (s *EventService) ListArtists(ctx context.Context) []model.Artist {
	return s.store.ListArtists(ctx)
}

// GetArtist returns the artist with the given handle.
func (s *EventService) GetArtist(ctx context.Context, handle string) (*model.Artist, error) {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if handle == "" {
		return nil, invalid("handle", "is required")
	}
	return s.store.GetArtistByHandle(ctx, handle)
}

// Snapshot returns one consistent copy of every collection, for readers that
// combine media, events and artists.
func (s *EventService) Snapshot(ctx context.Context) repository.Snapshot {
	return s.store.Snapshot(ctx)
}
