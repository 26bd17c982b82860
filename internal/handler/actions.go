package handler

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/happenings/internal/capture"
	"github.com/Shivanand-hulikatti/happenings/internal/model"
	"github.com/Shivanand-hulikatti/happenings/internal/service"
)

// Capture takes a simulated shot, optionally for an event, and submits it for
// review.
func (h *Handler) Capture(ctx context.Context, w io.Writer, mode model.MediaType, eventID string) (*model.MediaItem, error) {
	var event *model.PublicEvent
	if eventID != "" {
		e, err := h.events.GetEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		event = e
	}

	draft, err := h.camera.Capture(ctx, mode, event)
	if err != nil {
		return nil, err
	}
	item, err := h.media.AddMediaItem(ctx, draft)
	if err != nil {
		return nil, err
	}

	h.log.Printf("captured %s %s (event %q)", item.Type, item.ID, item.EventID)
	fmt.Fprintf(w, "✓ Captured %q (%s), pending review\n", item.Title, item.ID)
	if len(item.TaggedPeople) > 0 {
		fmt.Fprintf(w, "  tagged: %s\n", list(item.TaggedPeople))
	}
	return item, nil
}

// Upload submits one item per selected source.
func (h *Handler) Upload(ctx context.Context, w io.Writer, form capture.Upload) ([]model.MediaItem, error) {
	drafts, err := form.Drafts()
	if err != nil {
		return nil, err
	}

	items := make([]model.MediaItem, 0, len(drafts))
	for _, d := range drafts {
		item, err := h.media.AddMediaItem(ctx, d)
		if err != nil {
			return items, err
		}
		h.log.Printf("uploaded %s", item.ID)
		items = append(items, *item)
	}

	fmt.Fprintf(w, "✓ Uploaded %d %s, pending review\n", len(items), plural(len(items), "photo", "photos"))
	for _, it := range items {
		fmt.Fprintf(w, "  %s  %s\n", it.ID, it.Src)
	}
	return items, nil
}

// Approve accepts a pending item.
func (h *Handler) Approve(ctx context.Context, w io.Writer, id string) error {
	return h.review(ctx, w, id, model.StatusApproved)
}

// Reject declines a pending item.
func (h *Handler) Reject(ctx context.Context, w io.Writer, id string) error {
	return h.review(ctx, w, id, model.StatusRejected)
}

func (h *Handler) review(ctx context.Context, w io.Writer, id string, status model.MediaStatus) error {
	item, err := h.media.UpdateMediaStatus(ctx, id, status)
	if err != nil {
		return err
	}
	h.log.Printf("media %s %s", id, status)
	fmt.Fprintf(w, "✓ %q %s\n", item.Title, status)
	return nil
}

// Mint tokenizes an item on the simulated chain. The call blocks for the
// configured mint delay.
func (h *Handler) Mint(ctx context.Context, w io.Writer, id string, value *float64) (*model.MediaItem, error) {
	fmt.Fprintln(w, "Minting NFT...")
	start := time.Now()
	item, err := h.media.MintWithChain(ctx, id, value)
	if err != nil {
		return nil, err
	}

	meta := item.NFTMetadata
	h.log.Printf("minted %s as %s #%s in %s", id, meta.Collection, meta.TokenID, time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(w, "✓ Minted %q on %s: %s #%s", item.Title, meta.Blockchain, meta.Collection, meta.TokenID)
	if meta.Value != nil {
		fmt.Fprintf(w, " at %s", eth(*meta.Value))
	}
	fmt.Fprintln(w)
	return item, nil
}

// CreateEvent publishes a new event for the active identity.
func (h *Handler) CreateEvent(ctx context.Context, w io.Writer, draft model.EventDraft) (*model.PublicEvent, error) {
	event, err := h.events.CreateEvent(ctx, draft)
	if err != nil {
		return nil, err
	}

	h.log.Printf("created event %s with %d dates", event.ID, len(event.EventDates))
	fmt.Fprintf(w, "✓ Created %q (%s), first date %s\n", event.Name, event.ID, longDate(event.Date))
	return event, nil
}

// Signup registers the draft's user for one of the event's upcoming dates.
// The user defaults to the active identity.
func (h *Handler) Signup(ctx context.Context, w io.Writer, eventID string, draft model.SignupDraft) (*model.EventSignup, error) {
	event, err := h.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	date, ok := matchDate(event.UpcomingDates(h.now()), draft.SelectedDate)
	if !ok {
		return nil, &service.ValidationError{Field: "selected_date", Msg: "is not an upcoming date of this event"}
	}
	draft.SelectedDate = date
	if strings.TrimSpace(draft.UserID) == "" {
		draft.UserID = h.identity.UserID
	}
	if strings.TrimSpace(draft.UserName) == "" {
		draft.UserName = h.identity.UserName
	}

	signup, err := h.events.SignupForEvent(ctx, eventID, draft)
	if err != nil {
		return nil, err
	}

	h.log.Printf("signup %s for %s as %s", signup.ID, eventID, signup.Type)
	fmt.Fprintf(w, "✓ Signed up for %q on %s as %s, pending confirmation\n", event.Name, longDate(signup.SelectedDate), signup.Type)
	return signup, nil
}

// matchDate finds the scheduled date on the same calendar day as want.
func matchDate(dates []time.Time, want time.Time) (time.Time, bool) {
	y, m, d := want.Date()
	for _, t := range dates {
		if ty, tm, td := t.Date(); ty == y && tm == m && td == d {
			return t, true
		}
	}
	return time.Time{}, false
}
