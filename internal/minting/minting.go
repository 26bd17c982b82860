// Package minting simulates an NFT minting backend. No chain is contacted:
// a mint waits a fixed delay and then succeeds or fails at a configured rate.
package minting

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/Shivanand-hulikatti/happenings/internal/config"
	"github.com/Shivanand-hulikatti/happenings/internal/model"
)

// ErrMintFailed is returned when the simulated chain rejects a mint.
var ErrMintFailed = errors.New("mint rejected by chain")

// MintRequest describes the item to tokenize.
type MintRequest struct {
	MediaID     string
	Title       string
	Value       *float64
	Description string
}

// MockChainClient mints tokens against a fake chain.
type MockChainClient struct {
	delay       time.Duration
	successRate float64
	blockchain  string
	collection  string
	rng         *rand.Rand
	sleep       func(time.Duration)
}

// NewMockChainClient builds a client from the mint settings in cfg.
func NewMockChainClient(cfg *config.Config) *MockChainClient {
	return &MockChainClient{
		delay:       cfg.MintDelay,
		successRate: cfg.MintSuccessRate,
		blockchain:  cfg.MintBlockchain,
		collection:  cfg.MintCollection,
		rng:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		sleep:       time.Sleep,
	}
}

// Mint returns the metadata of a freshly minted token.
// A context already done is honoured; once the simulated chain call starts it
// runs to completion.
func (c *MockChainClient) Mint(ctx context.Context, req MintRequest) (*model.NFTMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("mint %s: %w", req.MediaID, err)
	}

	c.sleep(c.delay)

	if c.rng.Float64() >= c.successRate {
		return nil, fmt.Errorf("mint %s: %w", req.MediaID, ErrMintFailed)
	}

	meta := &model.NFTMetadata{
		Blockchain:  c.blockchain,
		TokenID:     strconv.Itoa(c.rng.IntN(10000)),
		Collection:  c.collection,
		Description: req.Description,
	}
	if req.Value != nil {
		v := *req.Value
		meta.Value = &v
	}
	return meta, nil
}
