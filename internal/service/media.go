package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shivanand-hulikatti/happenings/internal/minting"
	"github.com/Shivanand-hulikatti/happenings/internal/model"
	"github.com/Shivanand-hulikatti/happenings/internal/repository"
)

// Minter produces token metadata for a media item.
type Minter interface {
	Mint(ctx context.Context, req minting.MintRequest) (*model.NFTMetadata, error)
}

// MediaService orchestrates media capture, moderation and minting.
type MediaService struct {
	store    *repository.Store
	identity model.Identity
	clock    *stamper
	minter   Minter
}

// NewMediaService constructs a MediaService. A nil clock means time.Now.
func NewMediaService(store *repository.Store, identity model.Identity, clock Clock, minter Minter) *MediaService {
	return &MediaService{
		store:    store,
		identity: identity,
		clock:    newStamper(clock),
		minter:   minter,
	}
}

// AddMediaItem validates the draft and stores it as a new pending item at the
// front of the collection, credited to the active identity.
func (s *MediaService) AddMediaItem(ctx context.Context, draft model.MediaDraft) (*model.MediaItem, error) {
	draft.Src = strings.TrimSpace(draft.Src)
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Src == "" {
		return nil, invalid("src", "is required")
	}
	if draft.Title == "" {
		return nil, invalid("title", "is required")
	}
	if !draft.Type.Valid() {
		return nil, invalid("type", "must be image or video")
	}

	item := model.MediaItem{
		ID:           newID(""),
		Src:          draft.Src,
		Type:         draft.Type,
		Title:        draft.Title,
		Tags:         cleanList(draft.Tags),
		TaggedPeople: cleanList(draft.TaggedPeople),
		Status:       model.StatusPending,
		CreatedAt:    s.clock.next(),
		CapturedBy:   s.identity.UserName,
		EventID:      strings.TrimSpace(draft.EventID),
	}

	if err := s.store.InsertMedia(ctx, item); err != nil {
		return nil, fmt.Errorf("add media item: %w", err)
	}
	return &item, nil
}

// UpdateMediaStatus moves an item to approved or rejected. Repeating or
// reversing a decision simply overwrites it.
func (s *MediaService) UpdateMediaStatus(ctx context.Context, id string, status model.MediaStatus) (*model.MediaItem, error) {
	if status != model.StatusApproved && status != model.StatusRejected {
		return nil, invalid("status", "must be approved or rejected")
	}

	item, err := s.store.UpdateMedia(ctx, id, func(m model.MediaItem) model.MediaItem {
		m.Status = status
		return m
	})
	if err != nil {
		return nil, fmt.Errorf("update media %s: %w", id, err)
	}
	return item, nil
}

// MintNFT marks an item as an NFT with the given metadata. Minting an item
// that is already an NFT replaces its metadata.
func (s *MediaService) MintNFT(ctx context.Context, id string, meta model.NFTMetadata) (*model.MediaItem, error) {
	if err := validateMetadata(&meta); err != nil {
		return nil, err
	}

	item, err := s.store.UpdateMedia(ctx, id, func(m model.MediaItem) model.MediaItem {
		m.IsNFT = true
		m.NFTMetadata = &meta
		return m
	})
	if err != nil {
		return nil, fmt.Errorf("mint media %s: %w", id, err)
	}
	return item, nil
}

// MintWithChain asks the minter for fresh token metadata and attaches it.
// The item must exist before the chain is contacted.
func (s *MediaService) MintWithChain(ctx context.Context, id string, value *float64) (*model.MediaItem, error) {
	if s.minter == nil {
		return nil, fmt.Errorf("mint media %s: no minter configured", id)
	}

	item, err := s.store.GetMedia(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mint media %s: %w", id, err)
	}

	meta, err := s.minter.Mint(ctx, minting.MintRequest{
		MediaID:     item.ID,
		Title:       item.Title,
		Value:       value,
		Description: item.Title,
	})
	if err != nil {
		return nil, err
	}
	return s.MintNFT(ctx, id, *meta)
}

// ListMedia returns every media item, newest first.
func (s *MediaService) ListMedia(ctx context.Context) []model.MediaItem {
	return s.store.ListMedia(ctx)
}

// GetMedia returns a single media item.
func (s *MediaService) GetMedia(ctx context.Context, id string) (*model.MediaItem, error) {
	return s.store.GetMedia(ctx, id)
}

func validateMetadata(meta *model.NFTMetadata) error {
	meta.Blockchain = strings.TrimSpace(meta.Blockchain)
	meta.TokenID = strings.TrimSpace(meta.TokenID)
	meta.Collection = strings.TrimSpace(meta.Collection)
	switch {
	case meta.Blockchain == "":
		return invalid("blockchain", "is required")
	case meta.TokenID == "":
		return invalid("token_id", "is required")
	case meta.Collection == "":
		return invalid("collection", "is required")
	case meta.Value != nil && *meta.Value < 0:
		return invalid("value", "cannot be negative")
	}
	return nil
}
