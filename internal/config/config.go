// Package config reads runtime settings from environment variables, falling
// back to local-development defaults. An optional .env file is loaded first.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Shivanand-hulikatti/happenings/internal/model"
)

// Config holds every knob the application reads at startup.
type Config struct {
	// Active identity
	UserID   string
	UserName string

	// Simulated minting
	MintDelay       time.Duration
	MintSuccessRate float64
	MintBlockchain  string
	MintCollection  string

	// Simulated camera
	CaptureDelay  time.Duration
	CameraDenied  bool
	TaggedHandles []string

	Seed    bool
	Verbose bool
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		UserID:   getEnv("HAPPENINGS_USER_ID", "current_user"),
		UserName: getEnv("HAPPENINGS_USER_NAME", "Alex Chen"),

		MintDelay:       getEnvDuration("HAPPENINGS_MINT_DELAY", 2*time.Second),
		MintSuccessRate: getEnvFloat("HAPPENINGS_MINT_SUCCESS_RATE", 1.0),
		MintBlockchain:  getEnv("HAPPENINGS_MINT_BLOCKCHAIN", "Ethereum"),
		MintCollection:  getEnv("HAPPENINGS_MINT_COLLECTION", "Creative Moments"),

		CaptureDelay:  getEnvDuration("HAPPENINGS_CAPTURE_DELAY", 500*time.Millisecond),
		CameraDenied:  getEnvBool("HAPPENINGS_CAMERA_DENIED", false),
		TaggedHandles: getEnvList("HAPPENINGS_TAGGED_HANDLES", []string{"alex_chen", "alexchen"}),

		Seed:    getEnvBool("HAPPENINGS_SEED", true),
		Verbose: getEnvBool("HAPPENINGS_VERBOSE", false),
	}

	if cfg.MintSuccessRate < 0 || cfg.MintSuccessRate > 1 {
		return nil, fmt.Errorf("HAPPENINGS_MINT_SUCCESS_RATE must be between 0 and 1, got %v", cfg.MintSuccessRate)
	}
	if cfg.MintDelay < 0 || cfg.CaptureDelay < 0 {
		return nil, fmt.Errorf("simulated delays cannot be negative")
	}
	return cfg, nil
}

// Identity returns the user on whose behalf commands run.
func (c *Config) Identity() model.Identity {
	return model.Identity{UserID: c.UserID, UserName: c.UserName}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return d
}

func getEnvList(key string, fallback []string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
