// Package model defines the core domain types for the Happenings media and events store.
package model

import (
	"slices"
	"time"
)

// MediaType is the kind of captured media.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Valid reports whether t is a known media type.
func (t MediaType) Valid() bool {
	return t == MediaImage || t == MediaVideo
}

// MediaStatus is the moderation state of a media item.
// Items start pending and move to approved or rejected.
type MediaStatus string

const (
	StatusPending  MediaStatus = "pending"
	StatusApproved MediaStatus = "approved"
	StatusRejected MediaStatus = "rejected"
)

// Category classifies events and artists.
type Category string

const (
	CategoryMusic Category = "music"
	CategoryArt   Category = "art"
	CategoryFood  Category = "food"
	CategoryTech  Category = "tech"
	CategoryOther Category = "other"

	// CategoryAll is a filter value only; no entity carries it.
	CategoryAll Category = "all"
)

// Categories lists every entity category in display order.
var Categories = []Category{CategoryMusic, CategoryArt, CategoryFood, CategoryTech, CategoryOther}

// Valid reports whether c is an entity category.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// Coordinates is a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NFTMetadata describes a minted token. Value is optional.
type NFTMetadata struct {
	Blockchain  string   `json:"blockchain"`
	TokenID     string   `json:"token_id"`
	Collection  string   `json:"collection"`
	Value       *float64 `json:"value,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Price returns the token value, or 0 when unset.
func (m *NFTMetadata) Price() float64 {
	if m == nil || m.Value == nil {
		return 0
	}
	return *m.Value
}

// MediaItem is a captured or uploaded photo/video.
// When IsNFT is true, NFTMetadata is non-nil.
type MediaItem struct {
	ID           string       `json:"id"`
	Src          string       `json:"src"`
	Type         MediaType    `json:"type"`
	Title        string       `json:"title"`
	Tags         []string     `json:"tags"`
	TaggedPeople []string     `json:"tagged_people"`
	Status       MediaStatus  `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	CapturedBy   string       `json:"captured_by"`
	Likes        int          `json:"likes"`
	Shares       int          `json:"shares"`
	Earnings     float64      `json:"earnings"`
	EventID      string       `json:"event_id,omitempty"`
	IsNFT        bool         `json:"is_nft"`
	NFTMetadata  *NFTMetadata `json:"nft_metadata,omitempty"`
}

// Clone returns a deep copy so callers can never alias store-owned slices.
func (m MediaItem) Clone() MediaItem {
	m.Tags = slices.Clone(m.Tags)
	m.TaggedPeople = slices.Clone(m.TaggedPeople)
	if m.NFTMetadata != nil {
		meta := *m.NFTMetadata
		if meta.Value != nil {
			v := *meta.Value
			meta.Value = &v
		}
		m.NFTMetadata = &meta
	}
	return m
}

// SignupType distinguishes performers from attendees.
type SignupType string

const (
	SignupPerformer SignupType = "performer"
	SignupAttendee  SignupType = "attendee"
)

// SignupStatus is the lifecycle state of an event signup.
type SignupStatus string

const (
	SignupPending   SignupStatus = "pending"
	SignupConfirmed SignupStatus = "confirmed"
	SignupCancelled SignupStatus = "cancelled"
)

// EventSignup is a user's registration for one date of an event.
type EventSignup struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	UserName     string       `json:"user_name"`
	ArtistName   string       `json:"artist_name,omitempty"`
	ProfileName  string       `json:"profile_name,omitempty"`
	Type         SignupType   `json:"type"`
	SelectedDate time.Time    `json:"selected_date"`
	Status       SignupStatus `json:"status"`
	SignupDate   time.Time    `json:"signup_date"`
}

// EventAnalytics is the summary shown on event cards and profiles.
type EventAnalytics struct {
	TotalShows      int     `json:"total_shows"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalLikes      int     `json:"total_likes"`
	TotalShares     int     `json:"total_shares"`
	AttendeesCount  int     `json:"attendees_count"`
	PerformersCount int     `json:"performers_count"`
}

// PublicEvent is a scheduled event with its own photo gallery and signups.
// Photos is a private copy owned by the event, not a view of the global
// media collection.
type PublicEvent struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Location          string        `json:"location"`
	Description       string        `json:"description"`
	Date              time.Time     `json:"date"`
	EventDates        []time.Time   `json:"event_dates"`
	Thumbnail         string        `json:"thumbnail"`
	Photos            []MediaItem   `json:"photos"`
	CreatorID         string        `json:"creator_id"`
	CreatorName       string        `json:"creator_name"`
	Category          Category      `json:"category"`
	AssociatedArtists []string      `json:"associated_artists,omitempty"`
	IsLive            bool          `json:"is_live"`
	Coordinates       *Coordinates  `json:"coordinates,omitempty"`
	Signups           []EventSignup `json:"signups"`
}

// PhotoCount returns the number of photos in the event gallery.
func (e *PublicEvent) PhotoCount() int {
	return len(e.Photos)
}

// Analytics projects the event summary from its dates, photos and signups.
// Shows are the dates already reached by now. Cancelled signups are not counted.
func (e *PublicEvent) Analytics(now time.Time) EventAnalytics {
	var a EventAnalytics
	for _, d := range e.EventDates {
		if !d.After(now) {
			a.TotalShows++
		}
	}
	for _, p := range e.Photos {
		a.TotalRevenue += p.Earnings
		a.TotalLikes += p.Likes
		a.TotalShares += p.Shares
	}
	for _, s := range e.Signups {
		if s.Status == SignupCancelled {
			continue
		}
		switch s.Type {
		case SignupAttendee:
			a.AttendeesCount++
		case SignupPerformer:
			a.PerformersCount++
		}
	}
	return a
}

// LastDate returns the latest scheduled date, falling back to Date when
// EventDates is empty.
func (e *PublicEvent) LastDate() time.Time {
	if len(e.EventDates) == 0 {
		return e.Date
	}
	return slices.MaxFunc(e.EventDates, func(a, b time.Time) int { return a.Compare(b) })
}

// IsUpcoming reports whether any scheduled date is strictly after now.
func (e *PublicEvent) IsUpcoming(now time.Time) bool {
	return e.LastDate().After(now)
}

// UpcomingDates returns the scheduled dates strictly after now, in schedule order.
func (e *PublicEvent) UpcomingDates(now time.Time) []time.Time {
	var out []time.Time
	for _, d := range e.EventDates {
		if d.After(now) {
			out = append(out, d)
		}
	}
	return out
}

// NextDate returns the nearest scheduled date strictly after now.
func (e *PublicEvent) NextDate(now time.Time) (time.Time, bool) {
	upcoming := e.UpcomingDates(now)
	if len(upcoming) == 0 {
		return time.Time{}, false
	}
	return slices.MinFunc(upcoming, func(a, b time.Time) int { return a.Compare(b) }), true
}

// Clone returns a deep copy of the event, including photos and signups.
func (e PublicEvent) Clone() PublicEvent {
	e.EventDates = slices.Clone(e.EventDates)
	e.AssociatedArtists = slices.Clone(e.AssociatedArtists)
	e.Signups = slices.Clone(e.Signups)
	if e.Photos != nil {
		photos := make([]MediaItem, len(e.Photos))
		for i, p := range e.Photos {
			photos[i] = p.Clone()
		}
		e.Photos = photos
	}
	if e.Coordinates != nil {
		c := *e.Coordinates
		e.Coordinates = &c
	}
	return e
}

// Artist is a performer or creator that events reference by handle.
type Artist struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Handle      string      `json:"handle"`
	Avatar      string      `json:"avatar"`
	Category    Category    `json:"category"`
	IsLive      bool        `json:"is_live"`
	Followers   int         `json:"followers"`
	Location    string      `json:"location"`
	Coordinates Coordinates `json:"coordinates"`
}

// Identity is the active user on whose behalf commands run.
type Identity struct {
	UserID   string
	UserName string
}

// ─── Command payloads ─────────────────────────────────────────────────────────

// MediaDraft is the payload for adding a media item. The store assigns
// id, timestamp, capturer and counters.
type MediaDraft struct {
	Src          string    `json:"src"`
	Type         MediaType `json:"type"`
	Title        string    `json:"title"`
	Tags         []string  `json:"tags"`
	TaggedPeople []string  `json:"tagged_people"`
	EventID      string    `json:"event_id,omitempty"`
}

// EventDraft is the payload for creating an event. The store assigns id,
// creator and an empty signup list.
type EventDraft struct {
	Name              string       `json:"name"`
	Location          string       `json:"location"`
	Description       string       `json:"description"`
	EventDates        []time.Time  `json:"event_dates"`
	Thumbnail         string       `json:"thumbnail"`
	Photos            []MediaItem  `json:"photos"`
	Category          Category     `json:"category"`
	AssociatedArtists []string     `json:"associated_artists,omitempty"`
	IsLive            bool         `json:"is_live"`
	Coordinates       *Coordinates `json:"coordinates,omitempty"`
}

// SignupDraft is the payload for signing up to an event. The store assigns
// id, signup date and pending status.
type SignupDraft struct {
	UserID       string     `json:"user_id"`
	UserName     string     `json:"user_name"`
	ArtistName   string     `json:"artist_name,omitempty"`
	ProfileName  string     `json:"profile_name,omitempty"`
	Type         SignupType `json:"type"`
	SelectedDate time.Time  `json:"selected_date"`
}
