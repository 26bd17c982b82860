// cmd/main.go is the application entry point.
// It wires together all layers and runs one command or an interactive shell.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"

	"github.com/Shivanand-hulikatti/happenings/internal/capture"
	"github.com/Shivanand-hulikatti/happenings/internal/config"
	"github.com/Shivanand-hulikatti/happenings/internal/handler"
	"github.com/Shivanand-hulikatti/happenings/internal/minting"
	"github.com/Shivanand-hulikatti/happenings/internal/model"
	"github.com/Shivanand-hulikatti/happenings/internal/repository"
	"github.com/Shivanand-hulikatti/happenings/internal/service"
	"github.com/Shivanand-hulikatti/happenings/internal/view"
)

func main() {
	var cli args
	p := arg.MustParse(&cli)
	if p.Subcommand() == nil {
		p.Fail("missing command")
	}

	// ── 1. Load configuration ─────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(os.Stderr, "happenings: ", log.LstdFlags)
	}

	// ── 2. Load the store ─────────────────────────────────────────────────
	store := repository.NewStore()
	if cfg.Seed {
		store = repository.NewSeededStore()
		logger.Println("✓ Loaded seed data")
	}

	// ── 3. Wire up layers ─────────────────────────────────────────────────
	identity := cfg.Identity()
	mediaSvc := service.NewMediaService(store, identity, nil, minting.NewMockChainClient(cfg))
	eventSvc := service.NewEventService(store, identity, nil)
	h := handler.New(mediaSvc, eventSvc, capture.NewCamera(cfg), cfg, logger)
	logger.Printf("✓ Signed in as %s (%s)", identity.UserName, identity.UserID)

	// ── 4. Run until done or interrupted ──────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, ok := p.Subcommand().(*shellCmd); ok {
		if err := runShell(ctx, h, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("shell: %v", err)
		}
		return
	}
	if err := run(ctx, h, os.Stdout, p.Subcommand()); err != nil {
		fmt.Fprintln(os.Stderr, handler.Message(err))
		os.Exit(1)
	}
}

// run executes one parsed subcommand.
func run(ctx context.Context, h *handler.Handler, w io.Writer, cmd any) error {
	switch c := cmd.(type) {
	case *homeCmd:
		return h.Home(ctx, w)
	case *inboxCmd:
		return h.Inbox(ctx, w)
	case *profileCmd:
		return h.Profile(ctx, w)

	case *galleryCmd:
		band, err := view.ParsePriceBand(c.Price)
		if err != nil {
			return err
		}
		sort, err := view.ParseNFTSort(c.Sort)
		if err != nil {
			return err
		}
		return h.Gallery(ctx, w, handler.GalleryQuery{Search: c.Search, Band: band, Sort: sort})

	case *eventsCmd:
		category, err := view.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		sort, err := view.ParseEventSort(c.Sort)
		if err != nil {
			return err
		}
		return h.Events(ctx, w, handler.EventsQuery{Search: c.Search, Category: category, Sort: sort})

	case *eventCmd:
		return h.EventProfile(ctx, w, c.ID)
	case *artistCmd:
		return h.Artist(ctx, w, c.Handle)

	case *captureCmd:
		mode := model.MediaImage
		if c.Video {
			mode = model.MediaVideo
		}
		_, err := h.Capture(ctx, w, mode, c.Event)
		return err

	case *uploadCmd:
		_, err := h.Upload(ctx, w, capture.Upload{Sources: c.Sources, Title: c.Title, Tags: c.Tags, TaggedPeople: c.People})
		return err

	case *approveCmd:
		return h.Approve(ctx, w, c.ID)
	case *rejectCmd:
		return h.Reject(ctx, w, c.ID)

	case *mintCmd:
		_, err := h.Mint(ctx, w, c.ID, c.Value)
		return err

	case *createEventCmd:
		draft, err := c.draft()
		if err != nil {
			return err
		}
		_, err = h.CreateEvent(ctx, w, draft)
		return err

	case *signupCmd:
		_, err := h.Signup(ctx, w, c.EventID, c.draft())
		return err

	case *shellCmd:
		return errors.New("already in a shell")
	}
	return fmt.Errorf("unknown command %T", cmd)
}

func (c *createEventCmd) draft() (model.EventDraft, error) {
	draft := model.EventDraft{
		Name:              c.Name,
		Location:          c.Location,
		Description:       c.Description,
		Thumbnail:         c.Thumbnail,
		Category:          model.Category(c.Category),
		AssociatedArtists: capture.ParseList(c.Artists),
		IsLive:            c.Live,
	}
	for _, d := range c.Dates {
		draft.EventDates = append(draft.EventDates, d.Time)
	}
	switch {
	case c.Lat != nil && c.Lng != nil:
		draft.Coordinates = &model.Coordinates{Lat: *c.Lat, Lng: *c.Lng}
	case c.Lat != nil || c.Lng != nil:
		return model.EventDraft{}, errors.New("--lat and --lng must be given together")
	}
	return draft, nil
}

func (c *signupCmd) draft() model.SignupDraft {
	d := model.SignupDraft{
		UserID:       c.UserID,
		UserName:     c.UserName,
		Type:         model.SignupAttendee,
		SelectedDate: c.Date.Time,
	}
	if c.Performer {
		d.Type = model.SignupPerformer
		d.ArtistName = c.Artist
		d.ProfileName = c.Profile
	}
	return d
}
