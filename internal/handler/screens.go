package handler

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Shivanand-hulikatti/happenings/internal/model"
	"github.com/Shivanand-hulikatti/happenings/internal/view"
)

const (
	homeLimit      = 6
	taggedLimit    = 8
	signupLimit    = 5
	topNFTLimit    = 3
	profileRecents = 3
)

// GalleryQuery selects what the gallery shows.
type GalleryQuery struct {
	Search string
	Band   view.PriceBand
	Sort   view.NFTSort
}

// EventsQuery selects what the events screen shows.
type EventsQuery struct {
	Search   string
	Category model.Category
	Sort     view.EventSort
}

// Home renders the landing feed: stats over approved shots, nearby events,
// live artists and recent shots.
func (h *Handler) Home(ctx context.Context, w io.Writer) error {
	media, events, artists := h.state(ctx)
	now := h.now()
	approved := view.Approved(media)

	fmt.Fprintf(w, "Happenings · %s\n", h.identity.UserName)
	fmt.Fprintf(w, "Earnings %s · Likes %s · NFTs %d\n",
		money(view.TotalEarnings(approved)), count(view.TotalLikes(approved)), view.CountNFTs(approved))

	nearby := view.First(events, homeLimit)
	section(w, fmt.Sprintf("Nearby events (%d live)", len(view.LiveEvents(nearby))))
	rows := make([]string, 0, len(nearby))
	for _, e := range nearby {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%d photos\t%s",
			e.ID, e.Name, dateLabel(e.Date, now), e.Category, e.PhotoCount(), liveTag(e.IsLive)))
	}
	table(w, "ID\tNAME\tWHEN\tCATEGORY\tPHOTOS\t", rows)

	live := view.First(view.LiveArtists(artists), homeLimit)
	section(w, "Live artists")
	rows = rows[:0]
	for _, a := range live {
		rows = append(rows, fmt.Sprintf("%s\t@%s\t%s\t%s\t%s", a.Name, a.Handle, a.Category, count(a.Followers), a.Location))
	}
	table(w, "NAME\tHANDLE\tCATEGORY\tFOLLOWERS\tLOCATION", rows)

	section(w, "Recent shots")
	recent := view.First(approved, homeLimit)
	if len(recent) == 0 {
		fmt.Fprintln(w, "No approved shots yet.")
		return nil
	}
	rows = rows[:0]
	for _, m := range recent {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s", m.ID, m.Title, m.CapturedBy, count(m.Likes), money(m.Earnings)))
	}
	table(w, "ID\tTITLE\tBY\tLIKES\tEARNINGS", rows)
	return nil
}

// Inbox renders the moderation queue.
func (h *Handler) Inbox(ctx context.Context, w io.Writer) error {
	pending := view.Pending(h.media.ListMedia(ctx))
	now := h.now()

	if len(pending) == 0 {
		fmt.Fprintln(w, "Inbox empty. You're all caught up!")
		return nil
	}
	fmt.Fprintf(w, "%d %s pending review\n\n", len(pending), plural(len(pending), "item", "items"))

	rows := make([]string, 0, len(pending))
	for _, m := range pending {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s",
			m.ID, m.Title, m.CapturedBy, list(m.Tags), list(m.TaggedPeople), timestampLabel(m.CreatedAt, now)))
	}
	table(w, "ID\tTITLE\tBY\tTAGS\tPEOPLE\tUPLOADED", rows)
	return nil
}

// Gallery renders the NFT marketplace.
func (h *Handler) Gallery(ctx context.Context, w io.Writer, q GalleryQuery) error {
	nfts := view.NFTs(h.media.ListMedia(ctx))

	fmt.Fprintf(w, "NFT Gallery · %d items · %s total · %d creators\n",
		len(nfts), eth(view.TotalNFTValue(nfts)), view.DistinctCreators(nfts))

	shown := view.SortNFTs(view.SearchNFTs(nfts, q.Search, q.Band), q.Sort)
	section(w, fmt.Sprintf("Collection (%d shown)", len(shown)))
	if len(shown) == 0 {
		fmt.Fprintln(w, "No NFTs match your filters.")
	} else {
		rows := make([]string, 0, len(shown))
		for _, m := range shown {
			meta := m.NFTMetadata
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s #%s\t%s\t%s",
				m.ID, m.Title, eth(meta.Price()), meta.Blockchain, meta.Collection, meta.TokenID, count(m.Likes), m.CreatedAt.Format("Jan 2")))
		}
		table(w, "ID\tTITLE\tPRICE\tCHAIN\tTOKEN\tLIKES\tMINTED", rows)
	}

	section(w, "Collections")
	summaries := view.CollectionSummaries(nfts)
	rows := make([]string, 0, len(summaries))
	for _, c := range summaries {
		rows = append(rows, fmt.Sprintf("%s\t%d\t%s\t%s\t%d", c.Name, c.Items, eth(c.Floor), eth(c.TotalValue), c.Owners))
	}
	table(w, "NAME\tITEMS\tFLOOR\tVOLUME\tOWNERS", rows)

	section(w, "Top performers")
	for i, m := range view.TopByLikes(nfts, topNFTLimit) {
		fmt.Fprintf(w, "%d. %s (%s likes, %s)\n", i+1, m.Title, count(m.Likes), eth(m.NFTMetadata.Price()))
	}
	return nil
}

// Events renders the discovery screen: matching events and artists.
func (h *Handler) Events(ctx context.Context, w io.Writer, q EventsQuery) error {
	_, events, artists := h.state(ctx)
	now := h.now()

	shown := view.SortEvents(view.FilterEvents(events, q.Search, q.Category), q.Sort, now)
	section(w, fmt.Sprintf("Events (%d)", len(shown)))
	if len(shown) == 0 {
		fmt.Fprintln(w, "No events found.")
	} else {
		rows := make([]string, 0, len(shown))
		for _, e := range shown {
			status := "Past"
			if e.IsUpcoming(now) {
				status = "Upcoming"
			}
			if e.IsLive {
				status += " · Live"
			}
			rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s",
				e.ID, e.Name, e.Date.Format("Jan 2, 2006"), e.Location, e.Category, e.PhotoCount(), count(e.Analytics(now).TotalLikes), status))
		}
		table(w, "ID\tNAME\tDATE\tLOCATION\tCATEGORY\tPHOTOS\tLIKES\tSTATUS", rows)
	}

	matched := view.FilterArtists(artists, q.Search, q.Category)
	section(w, fmt.Sprintf("Artists (%d)", len(matched)))
	if len(matched) == 0 {
		fmt.Fprintln(w, "No artists found.")
		return nil
	}
	rows := make([]string, 0, len(matched))
	for _, a := range matched {
		rows = append(rows, fmt.Sprintf("%s\t@%s\t%s\t%s\t%s\t%s", a.Name, a.Handle, a.Category, count(a.Followers), a.Location, liveTag(a.IsLive)))
	}
	table(w, "NAME\tHANDLE\tCATEGORY\tFOLLOWERS\tLOCATION\t", rows)
	return nil
}

// EventProfile renders one event in full.
func (h *Handler) EventProfile(ctx context.Context, w io.Writer, id string) error {
	event, err := h.events.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	artists := h.events.ListArtists(ctx)
	now := h.now()

	fmt.Fprintf(w, "%s  [%s]%s\n", event.Name, event.Category, liveSuffix(event.IsLive))
	fmt.Fprintf(w, "by %s · %s\n", event.CreatorName, event.Location)
	if c := event.Coordinates; c != nil {
		fmt.Fprintf(w, "at %.4f, %.4f\n", c.Lat, c.Lng)
	}
	fmt.Fprintf(w, "\n%s\n", event.Description)

	section(w, "Dates")
	upcoming := event.UpcomingDates(now)
	for _, d := range event.EventDates {
		marker := " "
		if slices.ContainsFunc(upcoming, d.Equal) {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s (%s)\n", marker, longDate(d), dateLabel(d, now))
	}
	if len(upcoming) == 0 {
		fmt.Fprintln(w, "This event has ended.")
	} else {
		fmt.Fprintf(w, "%d upcoming %s open for signup.\n", len(upcoming), plural(len(upcoming), "date", "dates"))
	}

	a := event.Analytics(now)
	section(w, "Analytics")
	table(w, "SHOWS\tREVENUE\tLIKES\tSHARES\tATTENDEES\tPERFORMERS", []string{
		fmt.Sprintf("%d\t%s\t%s\t%s\t%d\t%d", a.TotalShows, money(a.TotalRevenue), count(a.TotalLikes), count(a.TotalShares), a.AttendeesCount, a.PerformersCount),
	})

	section(w, fmt.Sprintf("Photos (%d)", event.PhotoCount()))
	rows := make([]string, 0, len(event.Photos))
	for _, p := range event.Photos {
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s", p.ID, p.Title, p.CapturedBy, count(p.Likes)))
	}
	table(w, "ID\tTITLE\tBY\tLIKES", rows)

	people := view.DistinctTaggedPeople(event.Photos)
	section(w, fmt.Sprintf("Tagged people (%d)", len(people)))
	shown := view.First(people, taggedLimit)
	fmt.Fprint(w, list(shown))
	if extra := len(people) - len(shown); extra > 0 {
		fmt.Fprintf(w, " and %d more", extra)
	}
	fmt.Fprintln(w)

	section(w, "Artists")
	resolved := view.ResolveArtists(artists, event.AssociatedArtists)
	for _, handle := range event.AssociatedArtists {
		i := slices.IndexFunc(resolved, func(a model.Artist) bool { return strings.EqualFold(a.Handle, handle) })
		if i < 0 {
			fmt.Fprintf(w, "@%s\n", handle)
			continue
		}
		fmt.Fprintf(w, "@%s  %s · %s followers%s\n", handle, resolved[i].Name, count(resolved[i].Followers), liveSuffix(resolved[i].IsLive))
	}

	section(w, fmt.Sprintf("Signups (%d)", len(event.Signups)))
	if len(event.Signups) == 0 {
		fmt.Fprintln(w, "No signups yet.")
		return nil
	}
	rows = rows[:0]
	for _, s := range view.First(event.Signups, signupLimit) {
		who := s.UserName
		if s.Type == model.SignupPerformer {
			who = fmt.Sprintf("%s (%s)", s.ArtistName, s.ProfileName)
		}
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
			who, s.Type, s.SelectedDate.Format("Jan 2"), s.Status, humanize.RelTime(s.SignupDate, now, "ago", "from now")))
	}
	table(w, "WHO\tTYPE\tDATE\tSTATUS\tSIGNED UP", rows)
	return nil
}

// Artist renders one artist and the events they appear in.
func (h *Handler) Artist(ctx context.Context, w io.Writer, handle string) error {
	artist, err := h.events.GetArtist(ctx, handle)
	if err != nil {
		return err
	}
	now := h.now()

	fmt.Fprintf(w, "%s  @%s  [%s]%s\n", artist.Name, artist.Handle, artist.Category, liveSuffix(artist.IsLive))
	fmt.Fprintf(w, "%s followers · %s (%.4f, %.4f)\n", count(artist.Followers), artist.Location, artist.Coordinates.Lat, artist.Coordinates.Lng)

	appearances := view.SortEvents(view.EventsWithArtist(h.events.ListEvents(ctx), artist.Handle), view.EventSortUpcoming, now)
	section(w, fmt.Sprintf("Events (%d)", len(appearances)))
	if len(appearances) == 0 {
		fmt.Fprintln(w, "Not booked for any event yet.")
		return nil
	}
	rows := make([]string, 0, len(appearances))
	for _, e := range appearances {
		when := "ended"
		if next, ok := e.NextDate(now); ok {
			when = dateLabel(next, now)
		}
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s", e.ID, e.Name, e.Location, when))
	}
	table(w, "ID\tNAME\tLOCATION\tNEXT", rows)
	return nil
}

// Profile renders the active identity's stats and event timeline.
func (h *Handler) Profile(ctx context.Context, w io.Writer) error {
	media, events, _ := h.state(ctx)
	tags := view.TagStatsFor(media, h.handles)
	mine := view.EventsByCreator(events, h.identity.UserID)
	now := h.now()

	fmt.Fprintf(w, "%s (%s)\n", h.identity.UserName, h.identity.UserID)
	section(w, "Overview")
	table(w, "PHOTOS\tLIKES\tSHARES\tREVENUE\tNFTS\tTAGGED\tTAGGERS", []string{
		fmt.Sprintf("%d\t%s\t%s\t%s\t%d\t%d\t%d",
			len(media), count(view.TotalLikes(media)), count(view.TotalShares(media)), money(view.TotalEarnings(media)),
			view.CountNFTs(media), tags.TimesTagged, tags.DistinctTaggers),
	})

	section(w, fmt.Sprintf("My events (%d)", len(mine)))
	if len(mine) == 0 {
		fmt.Fprintln(w, "No events yet. Create one with create-event.")
		return nil
	}
	for i, e := range mine {
		a := e.Analytics(now)
		connector := "├─"
		if i == len(mine)-1 {
			connector = "└─"
		}
		fmt.Fprintf(w, "%s %s  %s  (%s)\n", connector, e.Date.Format("Jan 2, 2006"), e.Name, e.ID)
		if i < profileRecents {
			fmt.Fprintf(w, "   %d shows · %d photos · %s likes · %s\n", a.TotalShows, e.PhotoCount(), count(a.TotalLikes), money(a.TotalRevenue))
		}
	}
	return nil
}

func liveTag(live bool) string {
	if live {
		return "LIVE"
	}
	return ""
}

func liveSuffix(live bool) string {
	if live {
		return " · LIVE"
	}
	return ""
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
