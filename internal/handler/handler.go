// Package handler is the presentation boundary of the application. Each screen
// method renders derived views of the store as text, and each action method
// turns user input into a service command.
package handler

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Shivanand-hulikatti/happenings/internal/capture"
	"github.com/Shivanand-hulikatti/happenings/internal/config"
	"github.com/Shivanand-hulikatti/happenings/internal/minting"
	"github.com/Shivanand-hulikatti/happenings/internal/model"
	"github.com/Shivanand-hulikatti/happenings/internal/repository"
	"github.com/Shivanand-hulikatti/happenings/internal/service"
)

// Handler serves every screen and action for the active identity.
type Handler struct {
	media    *service.MediaService
	events   *service.EventService
	camera   *capture.Camera
	identity model.Identity
	handles  []string
	now      func() time.Time
	log      *log.Logger
}

// New constructs a Handler.
func New(media *service.MediaService, events *service.EventService, camera *capture.Camera, cfg *config.Config, logger *log.Logger) *Handler {
	return &Handler{
		media:    media,
		events:   events,
		camera:   camera,
		identity: cfg.Identity(),
		handles:  cfg.TaggedHandles,
		now:      time.Now,
		log:      logger,
	}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func (h *Handler) state(ctx context.Context) ([]model.MediaItem, []model.PublicEvent, []model.Artist) {
	snap := h.events.Snapshot(ctx)
	return snap.Media, snap.Events, snap.Artists
}

// Message returns the text shown to the user for a failed action.
func Message(err error) string {
	var verr *service.ValidationError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, repository.ErrNotFound):
		return "Not found: " + err.Error()
	case errors.As(err, &verr):
		return "Invalid input: " + verr.Error()
	case errors.Is(err, capture.ErrInvalidUpload):
		return "Invalid input: " + err.Error()
	case errors.Is(err, capture.ErrPermissionDenied):
		return "Camera access denied. Allow camera permission to capture photos."
	case errors.Is(err, minting.ErrMintFailed):
		return "Minting failed. Please try again."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Cancelled."
	default:
		return "Error: " + err.Error()
	}
}
