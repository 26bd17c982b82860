package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Shivanand-hulikatti/happenings/internal/minting"
	"github.com/Shivanand-hulikatti/happenings/internal/model"
	"github.com/Shivanand-hulikatti/happenings/internal/repository"
)

var (
	testNow      = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	testIdentity = model.Identity{UserID: "current_user", UserName: "Alex Chen"}
)

func fixedClock() time.Time { return testNow }

type stubMinter struct {
	meta  *model.NFTMetadata
	err   error
	calls int
}

func (m *stubMinter) Mint(_ context.Context, req minting.MintRequest) (*model.NFTMetadata, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	meta := *m.meta
	meta.Value = req.Value
	return &meta, nil
}

func newMediaService(minter Minter) (*MediaService, *repository.Store) {
	store := repository.NewSeededStore()
	return NewMediaService(store, testIdentity, fixedClock, minter), store
}

func newEventService() (*EventService, *repository.Store) {
	store := repository.NewSeededStore()
	return NewEventService(store, testIdentity, fixedClock), store
}

func TestAddMediaItem(t *testing.T) {
	t.Run("should prepend pending items with strictly increasing timestamps", func(t *testing.T) {
		svc, _ := newMediaService(nil)
		ctx := context.Background()

		for i := range 3 {
			_, err := svc.AddMediaItem(ctx, model.MediaDraft{
				Src:   "data:image/jpeg;base64,AAAA",
				Type:  model.MediaImage,
				Title: "Shot " + string(rune('A'+i)),
			})
			if err != nil {
				t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
			}
		}

		items := svc.ListMedia(ctx)
		for i := 0; i < 2; i++ {
			if !items[i].CreatedAt.After(items[i+1].CreatedAt) {
				t.Fatalf("item %d (%v) not newer than item %d (%v)", i, items[i].CreatedAt, i+1, items[i+1].CreatedAt)
			}
		}
		if items[0].Title != "Shot C" {
			t.Fatalf("\nwanted:\nShot C\ngot:\n%s", items[0].Title)
		}
		for _, it := range items[:3] {
			if it.Status != model.StatusPending || it.Likes != 0 || it.Shares != 0 || it.Earnings != 0 {
				t.Fatalf("new item not zeroed: %+v", it)
			}
			if it.CapturedBy != "Alex Chen" {
				t.Fatalf("\nwanted:\nAlex Chen\ngot:\n%s", it.CapturedBy)
			}
			if it.IsNFT || it.NFTMetadata != nil {
				t.Fatalf("new item should not be an NFT: %+v", it)
			}
		}
	})

	t.Run("should assign distinct ids", func(t *testing.T) {
		svc, _ := newMediaService(nil)
		draft := model.MediaDraft{Src: "a.jpg", Type: model.MediaImage, Title: "A"}
		a, _ := svc.AddMediaItem(context.Background(), draft)
		b, _ := svc.AddMediaItem(context.Background(), draft)
		if a.ID == b.ID {
			t.Fatalf("duplicate id %s", a.ID)
		}
	})

	t.Run("should reject incomplete drafts", func(t *testing.T) {
		svc, store := newMediaService(nil)
		before := len(store.ListMedia(context.Background()))

		tests := []model.MediaDraft{
			{Type: model.MediaImage, Title: "no src"},
			{Src: "a.jpg", Type: model.MediaImage, Title: "   "},
			{Src: "a.jpg", Type: "gif", Title: "bad type"},
		}
		for _, draft := range tests {
			_, err := svc.AddMediaItem(context.Background(), draft)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrValidation, err)
			}
		}
		if after := len(store.ListMedia(context.Background())); after != before {
			t.Fatalf("\nwanted:\n%d items\ngot:\n%d", before, after)
		}
	})

	t.Run("should drop blank tags", func(t *testing.T) {
		svc, _ := newMediaService(nil)
		item, err := svc.AddMediaItem(context.Background(), model.MediaDraft{
			Src: "a.jpg", Type: model.MediaImage, Title: "A",
			Tags: []string{" music ", "", "live"},
		})
		if err != nil {
			t.Fatal(err)
		}
		if strings.Join(item.Tags, ",") != "music,live" {
			t.Fatalf("\nwanted:\nmusic,live\ngot:\n%v", item.Tags)
		}
		if item.TaggedPeople == nil {
			t.Fatal("tagged people should be an empty list, not nil")
		}
	})
}

func TestUpdateMediaStatus(t *testing.T) {
	t.Run("should let the last decision win", func(t *testing.T) {
		svc, _ := newMediaService(nil)
		ctx := context.Background()

		if _, err := svc.UpdateMediaStatus(ctx, "2", model.StatusApproved); err != nil {
			t.Fatal(err)
		}
		item, err := svc.UpdateMediaStatus(ctx, "2", model.StatusRejected)
		if err != nil {
			t.Fatal(err)
		}
		if item.Status != model.StatusRejected {
			t.Fatalf("\nwanted:\nrejected\ngot:\n%s", item.Status)
		}
		stored, _ := svc.GetMedia(ctx, "2")
		if stored.Status != model.StatusRejected {
			t.Fatalf("\nwanted:\nrejected\ngot:\n%s", stored.Status)
		}
	})

	t.Run("should report unknown ids", func(t *testing.T) {
		svc, _ := newMediaService(nil)
		_, err := svc.UpdateMediaStatus(context.Background(), "missing", model.StatusApproved)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", repository.ErrNotFound, err)
		}
	})

	t.Run("should refuse to move an item back to pending", func(t *testing.T) {
		svc, _ := newMediaService(nil)
		_, err := svc.UpdateMediaStatus(context.Background(), "2", model.StatusPending)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrValidation, err)
		}
	})
}

func TestMintNFT(t *testing.T) {
	t.Run("should keep the metadata of the last mint", func(t *testing.T) {
		svc, _ := newMediaService(nil)
		ctx := context.Background()
		v1, v2 := 1.0, 4.2

		if _, err := svc.MintNFT(ctx, "2", model.NFTMetadata{Blockchain: "Ethereum", TokenID: "1", Collection: "A", Value: &v1}); err != nil {
			t.Fatal(err)
		}
		item, err := svc.MintNFT(ctx, "2", model.NFTMetadata{Blockchain: "Polygon", TokenID: "2", Collection: "B", Value: &v2})
		if err != nil {
			t.Fatal(err)
		}
		if !item.IsNFT || item.NFTMetadata == nil {
			t.Fatalf("item not minted: %+v", item)
		}
		if item.NFTMetadata.Blockchain != "Polygon" || item.NFTMetadata.TokenID != "2" || item.NFTMetadata.Price() != 4.2 {
			t.Fatalf("\nwanted:\nPolygon #2 4.2\ngot:\n%+v", item.NFTMetadata)
		}
	})

	t.Run("should validate metadata before touching the store", func(t *testing.T) {
		svc, _ := newMediaService(nil)
		neg := -1.0
		tests := []model.NFTMetadata{
			{TokenID: "1", Collection: "A"},
			{Blockchain: "Ethereum", Collection: "A"},
			{Blockchain: "Ethereum", TokenID: "1"},
			{Blockchain: "Ethereum", TokenID: "1", Collection: "A", Value: &neg},
		}
		for _, meta := range tests {
			if _, err := svc.MintNFT(context.Background(), "2", meta); !errors.Is(err, ErrValidation) {
				t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrValidation, err)
			}
		}
		item, _ := svc.GetMedia(context.Background(), "2")
		if item.IsNFT {
			t.Fatal("item should not have been minted")
		}
	})

	t.Run("should report unknown ids", func(t *testing.T) {
		svc, _ := newMediaService(nil)
		_, err := svc.MintNFT(context.Background(), "missing", model.NFTMetadata{Blockchain: "E", TokenID: "1", Collection: "C"})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", repository.ErrNotFound, err)
		}
	})
}

func TestMintWithChain(t *testing.T) {
	t.Run("should attach metadata returned by the minter", func(t *testing.T) {
		minter := &stubMinter{meta: &model.NFTMetadata{Blockchain: "Ethereum", TokenID: "42", Collection: "Creative Moments"}}
		svc, _ := newMediaService(minter)
		v := 2.0

		item, err := svc.MintWithChain(context.Background(), "2", &v)
		if err != nil {
			t.Fatal(err)
		}
		if !item.IsNFT || item.NFTMetadata.TokenID != "42" || item.NFTMetadata.Price() != 2 {
			t.Fatalf("unexpected item: %+v", item.NFTMetadata)
		}
	})

	t.Run("should leave the item untouched when the mint fails", func(t *testing.T) {
		minter := &stubMinter{err: minting.ErrMintFailed}
		svc, _ := newMediaService(minter)

		_, err := svc.MintWithChain(context.Background(), "2", nil)
		if !errors.Is(err, minting.ErrMintFailed) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", minting.ErrMintFailed, err)
		}
		item, _ := svc.GetMedia(context.Background(), "2")
		if item.IsNFT {
			t.Fatal("item should not have been minted")
		}
	})

	t.Run("should not contact the chain for unknown ids", func(t *testing.T) {
		minter := &stubMinter{meta: &model.NFTMetadata{}}
		svc, _ := newMediaService(minter)

		_, err := svc.MintWithChain(context.Background(), "missing", nil)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", repository.ErrNotFound, err)
		}
		if minter.calls != 0 {
			t.Fatalf("\nwanted:\n0 calls\ngot:\n%d", minter.calls)
		}
	})
}

func validEventDraft() model.EventDraft {
	return model.EventDraft{
		Name:        "Rooftop Jazz",
		Location:    "Downtown",
		Description: "Evening set",
		EventDates: []time.Time{
			time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		Category: model.CategoryMusic,
	}
}

func TestCreateEvent(t *testing.T) {
	t.Run("should store the event first with sorted dates and the active creator", func(t *testing.T) {
		svc, _ := newEventService()
		ctx := context.Background()

		event, err := svc.CreateEvent(ctx, validEventDraft())
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(event.ID, "event_") {
			t.Fatalf("\nwanted:\nevent_ prefix\ngot:\n%s", event.ID)
		}
		if !event.Date.Equal(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("\nwanted:\n2025-08-01\ngot:\n%v", event.Date)
		}
		if !event.EventDates[0].Before(event.EventDates[1]) {
			t.Fatalf("dates not sorted: %v", event.EventDates)
		}
		if event.CreatorID != "current_user" || event.CreatorName != "Alex Chen" {
			t.Fatalf("unexpected creator: %s %s", event.CreatorID, event.CreatorName)
		}
		if event.Signups == nil || len(event.Signups) != 0 {
			t.Fatalf("\nwanted:\nempty signups\ngot:\n%v", event.Signups)
		}
		if got := svc.ListEvents(ctx)[0].ID; got != event.ID {
			t.Fatalf("\nwanted:\n%s first\ngot:\n%s", event.ID, got)
		}
	})

	t.Run("should start with zero analytics", func(t *testing.T) {
		svc, _ := newEventService()
		event, err := svc.CreateEvent(context.Background(), validEventDraft())
		if err != nil {
			t.Fatal(err)
		}
		if got := event.Analytics(testNow); got != (model.EventAnalytics{}) {
			t.Fatalf("\nwanted:\nzero analytics\ngot:\n%+v", got)
		}
	})

	t.Run("should reject invalid drafts", func(t *testing.T) {
		svc, _ := newEventService()
		tests := []struct {
			name   string
			mutate func(*model.EventDraft)
		}{
			{"missing name", func(d *model.EventDraft) { d.Name = " " }},
			{"missing description", func(d *model.EventDraft) { d.Description = "" }},
			{"missing location", func(d *model.EventDraft) { d.Location = "" }},
			{"no dates", func(d *model.EventDraft) { d.EventDates = nil }},
			{"zero date", func(d *model.EventDraft) { d.EventDates = []time.Time{{}} }},
			{"bad category", func(d *model.EventDraft) { d.Category = model.CategoryAll }},
			{"bad coordinates", func(d *model.EventDraft) { d.Coordinates = &model.Coordinates{Lat: 91} }},
		}
		for _, tt := range tests {
			draft := validEventDraft()
			tt.mutate(&draft)
			if _, err := svc.CreateEvent(context.Background(), draft); !errors.Is(err, ErrValidation) {
				t.Fatalf("%s\nwanted:\n%v\ngot:\n%v", tt.name, ErrValidation, err)
			}
		}
	})
}

func TestSignupForEvent(t *testing.T) {
	attendee := model.SignupDraft{
		UserID:       "u1",
		UserName:     "Jamie",
		Type:         model.SignupAttendee,
		SelectedDate: time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC),
	}

	t.Run("should append a pending signup", func(t *testing.T) {
		svc, _ := newEventService()
		ctx := context.Background()
		before, _ := svc.GetEvent(ctx, "event2")

		signup, err := svc.SignupForEvent(ctx, "event2", attendee)
		if err != nil {
			t.Fatal(err)
		}
		after, _ := svc.GetEvent(ctx, "event2")
		if len(after.Signups) != len(before.Signups)+1 {
			t.Fatalf("\nwanted:\n%d\ngot:\n%d", len(before.Signups)+1, len(after.Signups))
		}
		last := after.Signups[len(after.Signups)-1]
		if last.ID != signup.ID || last.Status != model.SignupPending {
			t.Fatalf("unexpected signup: %+v", last)
		}
		if last.SignupDate.Before(testNow) {
			t.Fatalf("signup date %v before call time %v", last.SignupDate, testNow)
		}
		if !strings.HasPrefix(last.ID, "signup_") {
			t.Fatalf("\nwanted:\nsignup_ prefix\ngot:\n%s", last.ID)
		}
	})

	t.Run("should leave every event unchanged for an unknown id", func(t *testing.T) {
		svc, _ := newEventService()
		ctx := context.Background()
		counts := map[string]int{}
		for _, e := range svc.ListEvents(ctx) {
			counts[e.ID] = len(e.Signups)
		}

		_, err := svc.SignupForEvent(ctx, "nope", attendee)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", repository.ErrNotFound, err)
		}
		for _, e := range svc.ListEvents(ctx) {
			if len(e.Signups) != counts[e.ID] {
				t.Fatalf("event %s changed: %d -> %d", e.ID, counts[e.ID], len(e.Signups))
			}
		}
	})

	t.Run("should require performer details", func(t *testing.T) {
		svc, _ := newEventService()
		draft := attendee
		draft.Type = model.SignupPerformer
		draft.ArtistName = "DJ Nova"

		_, err := svc.SignupForEvent(context.Background(), "event2", draft)
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "profile_name" {
			t.Fatalf("\nwanted:\nprofile_name validation error\ngot:\n%v", err)
		}
	})

	t.Run("should drop performer fields from attendee signups", func(t *testing.T) {
		svc, _ := newEventService()
		draft := attendee
		draft.ArtistName = "ignored"

		signup, err := svc.SignupForEvent(context.Background(), "event2", draft)
		if err != nil {
			t.Fatal(err)
		}
		if signup.ArtistName != "" || signup.ProfileName != "" {
			t.Fatalf("attendee kept performer fields: %+v", signup)
		}
	})

	t.Run("should count the new signup in analytics", func(t *testing.T) {
		svc, _ := newEventService()
		ctx := context.Background()
		before, _ := svc.GetEvent(ctx, "event2")

		if _, err := svc.SignupForEvent(ctx, "event2", attendee); err != nil {
			t.Fatal(err)
		}
		after, _ := svc.GetEvent(ctx, "event2")
		if after.Analytics(testNow).AttendeesCount != before.Analytics(testNow).AttendeesCount+1 {
			t.Fatalf("\nwanted:\n%d\ngot:\n%d", before.Analytics(testNow).AttendeesCount+1, after.Analytics(testNow).AttendeesCount)
		}
	})
}

func TestGetArtist(t *testing.T) {
	svc, _ := newEventService()
	ctx := context.Background()

	a, err := svc.GetArtist(ctx, " @chef_maria ")
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != "Chef Maria" {
		t.Fatalf("\nwanted:\nChef Maria\ngot:\n%s", a.Name)
	}
	if _, err := svc.GetArtist(ctx, "@"); !errors.Is(err, ErrValidation) {
		t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrValidation, err)
	}
}

func TestStamper(t *testing.T) {
	t.Run("should never repeat a timestamp under a frozen clock", func(t *testing.T) {
		s := newStamper(fixedClock)
		a, b := s.next(), s.next()
		if !b.After(a) {
			t.Fatalf("\nwanted:\n%v after %v", b, a)
		}
		if !a.Equal(testNow) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", testNow, a)
		}
	})
}
