package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HAPPENINGS_USER_NAME", "")
	t.Setenv("HAPPENINGS_MINT_DELAY", "")
	t.Setenv("HAPPENINGS_SEED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
	}
	if cfg.UserName != "Alex Chen" {
		t.Fatalf("\nwanted:\n%q\ngot:\n%q", "Alex Chen", cfg.UserName)
	}
	if cfg.MintDelay != 2*time.Second {
		t.Fatalf("\nwanted:\n%v\ngot:\n%v", 2*time.Second, cfg.MintDelay)
	}
	if !cfg.Seed {
		t.Fatal("seed should default to true")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HAPPENINGS_USER_ID", "u42")
	t.Setenv("HAPPENINGS_MINT_DELAY", "150ms")
	t.Setenv("HAPPENINGS_MINT_SUCCESS_RATE", "0.25")
	t.Setenv("HAPPENINGS_CAMERA_DENIED", "true")
	t.Setenv("HAPPENINGS_SEED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
	}
	if got := cfg.Identity().UserID; got != "u42" {
		t.Fatalf("\nwanted:\n%q\ngot:\n%q", "u42", got)
	}
	if cfg.MintDelay != 150*time.Millisecond {
		t.Fatalf("\nwanted:\n150ms\ngot:\n%v", cfg.MintDelay)
	}
	if cfg.MintSuccessRate != 0.25 {
		t.Fatalf("\nwanted:\n0.25\ngot:\n%v", cfg.MintSuccessRate)
	}
	if !cfg.CameraDenied || cfg.Seed {
		t.Fatalf("boolean overrides not applied: %+v", cfg)
	}
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("HAPPENINGS_CAPTURE_DELAY", "soon")
	t.Setenv("HAPPENINGS_VERBOSE", "loud")

	cfg, _ := Load()
	if cfg.CaptureDelay != 500*time.Millisecond {
		t.Fatalf("\nwanted:\n500ms\ngot:\n%v", cfg.CaptureDelay)
	}
	if cfg.Verbose {
		t.Fatal("malformed bool should fall back to false")
	}
}

func TestLoad_TaggedHandles(t *testing.T) {
	t.Setenv("HAPPENINGS_TAGGED_HANDLES", " jamie , ,jamie_k")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.TaggedHandles) != 2 || cfg.TaggedHandles[0] != "jamie" || cfg.TaggedHandles[1] != "jamie_k" {
		t.Fatalf("\nwanted:\n[jamie jamie_k]\ngot:\n%v", cfg.TaggedHandles)
	}
}

func TestLoad_RejectsOutOfRangeSuccessRate(t *testing.T) {
	t.Setenv("HAPPENINGS_MINT_SUCCESS_RATE", "1.5")

	if _, err := Load(); err == nil {
		t.Fatal("\nwanted:\nerror\ngot:\nnil")
	}
}
