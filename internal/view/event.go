package view

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/happenings/internal/model"
)

// EventSort orders the event list.
type EventSort string

const (
	EventSortRecent   EventSort = "recent"
	EventSortPopular  EventSort = "popular"
	EventSortUpcoming EventSort = "upcoming"
)

// ParseEventSort validates an event sort key.
func ParseEventSort(s string) (EventSort, error) {
	switch v := EventSort(strings.ToLower(strings.TrimSpace(s))); v {
	case EventSortRecent, EventSortPopular, EventSortUpcoming:
		return v, nil
	case "":
		return EventSortRecent, nil
	default:
		return "", fmt.Errorf("unknown sort %q (want recent, popular or upcoming)", s)
	}
}

// ParseCategory validates a category filter. Empty means all.
func ParseCategory(s string) (model.Category, error) {
	c := model.Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" || c == model.CategoryAll {
		return model.CategoryAll, nil
	}
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// SortEvents returns a sorted copy. Ties keep input order.
//
// For upcoming, events with a future date come first, nearest first; events
// that are over follow, most recent first, then by id.
func SortEvents(events []model.PublicEvent, by EventSort, now time.Time) []model.PublicEvent {
	out := slices.Clone(events)
	switch by {
	case EventSortPopular:
		slices.SortStableFunc(out, func(a, b model.PublicEvent) int {
			return cmp.Compare(b.Analytics(now).TotalLikes, a.Analytics(now).TotalLikes)
		})
	case EventSortUpcoming:
		slices.SortStableFunc(out, func(a, b model.PublicEvent) int {
			an, aFuture := a.NextDate(now)
			bn, bFuture := b.NextDate(now)
			switch {
			case aFuture && bFuture:
				return an.Compare(bn)
			case aFuture:
				return -1
			case bFuture:
				return 1
			}
			if c := b.Date.Compare(a.Date); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
	default:
		slices.SortStableFunc(out, func(a, b model.PublicEvent) int { return b.Date.Compare(a.Date) })
	}
	return out
}

// FilterEvents keeps the events matching query and category. The query is a
// case-insensitive substring of the name, location, creator or any associated
// artist handle.
func FilterEvents(events []model.PublicEvent, query string, category model.Category) []model.PublicEvent {
	q := strings.ToLower(strings.TrimSpace(query))
	return filter(events, func(e model.PublicEvent) bool {
		if !matchesCategory(e.Category, category) {
			return false
		}
		return containsFold(q, e.Name, e.Location, e.CreatorName) || containsFold(q, e.AssociatedArtists...)
	})
}

// FilterArtists keeps the artists whose name, handle or location contains
// query and whose category matches.
func FilterArtists(artists []model.Artist, query string, category model.Category) []model.Artist {
	q := strings.ToLower(strings.TrimSpace(query))
	return filter(artists, func(a model.Artist) bool {
		return matchesCategory(a.Category, category) && containsFold(q, a.Name, a.Handle, a.Location)
	})
}

func matchesCategory(c, want model.Category) bool {
	return want == "" || want == model.CategoryAll || c == want
}

// LiveEvents returns the events flagged live.
func LiveEvents(events []model.PublicEvent) []model.PublicEvent {
	return filter(events, func(e model.PublicEvent) bool { return e.IsLive })
}

// LiveArtists returns the artists currently live.
func LiveArtists(artists []model.Artist) []model.Artist {
	return filter(artists, func(a model.Artist) bool { return a.IsLive })
}

// UpcomingEvents returns the events that still have a future date.
func UpcomingEvents(events []model.PublicEvent, now time.Time) []model.PublicEvent {
	return filter(events, func(e model.PublicEvent) bool { return e.IsUpcoming(now) })
}

// EventsByCreator returns the creator's events, latest first.
func EventsByCreator(events []model.PublicEvent, creatorID string) []model.PublicEvent {
	out := filter(events, func(e model.PublicEvent) bool { return e.CreatorID == creatorID })
	slices.SortStableFunc(out, func(a, b model.PublicEvent) int { return b.Date.Compare(a.Date) })
	return out
}

// EventsWithArtist returns the events that list handle among their artists.
func EventsWithArtist(events []model.PublicEvent, handle string) []model.PublicEvent {
	return filter(events, func(e model.PublicEvent) bool {
		return slices.ContainsFunc(e.AssociatedArtists, func(h string) bool { return strings.EqualFold(h, handle) })
	})
}

// First returns at most n leading elements.
func First[T any](in []T, n int) []T {
	if n < 0 || len(in) <= n {
		return in
	}
	return in[:n]
}

// FindEvent looks an event up by id.
func FindEvent(events []model.PublicEvent, id string) (model.PublicEvent, bool) {
	i := slices.IndexFunc(events, func(e model.PublicEvent) bool { return e.ID == id })
	if i < 0 {
		return model.PublicEvent{}, false
	}
	return events[i], true
}

// ResolveArtists maps handles to artists. Unknown handles are skipped.
func ResolveArtists(artists []model.Artist, handles []string) []model.Artist {
	var out []model.Artist
	for _, h := range handles {
		i := slices.IndexFunc(artists, func(a model.Artist) bool { return strings.EqualFold(a.Handle, h) })
		if i >= 0 {
			out = append(out, artists[i])
		}
	}
	return out
}
