// Package capture simulates the device camera and the upload picker. Neither
// touches hardware: a capture waits a configured delay and produces a draft
// describing the shot, ready for the media service.
package capture

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/happenings/internal/config"
	"github.com/Shivanand-hulikatti/happenings/internal/model"
)

var (
	// ErrPermissionDenied is returned when camera access has been refused.
	ErrPermissionDenied = errors.New("camera permission denied")
	// ErrInvalidUpload wraps every malformed upload form.
	ErrInvalidUpload = errors.New("upload")
)

const mockFrame = "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?w=600&h=600&fit=crop"

var whitespace = regexp.MustCompile(`\s+`)

// Camera produces simulated shots.
type Camera struct {
	delay  time.Duration
	denied bool
	now    func() time.Time
}

// NewCamera builds a camera from the capture settings in cfg.
func NewCamera(cfg *config.Config) *Camera {
	return &Camera{
		delay:  cfg.CaptureDelay,
		denied: cfg.CameraDenied,
		now:    time.Now,
	}
}

// Capture takes a shot in the given mode, optionally attributed to an event.
// It returns early with the context error if ctx ends during the delay.
func (c *Camera) Capture(ctx context.Context, mode model.MediaType, event *model.PublicEvent) (model.MediaDraft, error) {
	if c.denied {
		return model.MediaDraft{}, ErrPermissionDenied
	}
	if !mode.Valid() {
		return model.MediaDraft{}, fmt.Errorf("capture: unsupported mode %q", mode)
	}

	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return model.MediaDraft{}, fmt.Errorf("capture: %w", ctx.Err())
	case <-timer.C:
	}

	return Draft(mode, event, c.now()), nil
}

// Draft describes a shot taken at the given time. With an event the title,
// tags and tagged people come from it; without one the shot is a plain
// captured photo.
func Draft(mode model.MediaType, event *model.PublicEvent, at time.Time) model.MediaDraft {
	clock := at.Format("3:04:05 PM")
	draft := model.MediaDraft{
		Src:          fmt.Sprintf("%s&t=%d", mockFrame, at.UnixMilli()),
		Type:         mode,
		Title:        "Photo - " + clock,
		Tags:         []string{"captured"},
		TaggedPeople: []string{},
	}
	if event == nil {
		return draft
	}

	draft.Title = event.Name + " - " + clock
	draft.Tags = []string{string(event.Category), Slug(event.Name)}
	draft.TaggedPeople = append([]string{}, event.AssociatedArtists...)
	draft.EventID = event.ID
	return draft
}

// Slug lowercases s and joins whitespace runs with underscores.
func Slug(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(s), "_")
}

// ParseList splits a comma-separated field, trimming entries and dropping
// empty ones.
func ParseList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Upload is the form state of the upload screen.
type Upload struct {
	Sources      []string
	Title        string
	Tags         string
	TaggedPeople string
}

// Drafts returns one image draft per selected source, all sharing the form's
// title, tags and people.
func (u Upload) Drafts() ([]model.MediaDraft, error) {
	title := strings.TrimSpace(u.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidUpload)
	}
	var sources []string
	for _, src := range u.Sources {
		if src = strings.TrimSpace(src); src != "" {
			sources = append(sources, src)
		}
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: select at least one photo", ErrInvalidUpload)
	}

	tags, people := ParseList(u.Tags), ParseList(u.TaggedPeople)
	drafts := make([]model.MediaDraft, len(sources))
	for i, src := range sources {
		drafts[i] = model.MediaDraft{
			Src:          src,
			Type:         model.MediaImage,
			Title:        title,
			Tags:         append([]string{}, tags...),
			TaggedPeople: append([]string{}, people...),
		}
	}
	return drafts, nil
}
