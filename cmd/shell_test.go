package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/Shivanand-hulikatti/happenings/internal/capture"
	"github.com/Shivanand-hulikatti/happenings/internal/config"
	"github.com/Shivanand-hulikatti/happenings/internal/handler"
	"github.com/Shivanand-hulikatti/happenings/internal/minting"
	"github.com/Shivanand-hulikatti/happenings/internal/repository"
	"github.com/Shivanand-hulikatti/happenings/internal/service"
)

func newShellHandler() *handler.Handler {
	cfg := &config.Config{UserID: "current_user", UserName: "Alex Chen", MintSuccessRate: 1}
	store := repository.NewSeededStore()
	media := service.NewMediaService(store, cfg.Identity(), nil, minting.NewMockChainClient(cfg))
	events := service.NewEventService(store, cfg.Identity(), nil)
	return handler.New(media, events, capture.NewCamera(cfg), cfg, log.New(io.Discard, "", 0))
}

func TestRunShell(t *testing.T) {
	t.Run("should keep state between lines", func(t *testing.T) {
		in := strings.NewReader("inbox\napprove 1\ninbox\nexit\nhome\n")
		var out bytes.Buffer

		if err := runShell(context.Background(), newShellHandler(), in, &out); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		got := out.String()
		if !strings.Contains(got, "1 item pending review") || !strings.Contains(got, "caught up") {
			t.Fatalf("state not kept between lines:\n%s", got)
		}
		if strings.Contains(got, "Nearby events") {
			t.Fatal("lines after exit should not run")
		}
	})

	t.Run("should report errors and keep going", func(t *testing.T) {
		in := strings.NewReader("approve nope\nbogus\ngallery --search \"ocean waves\"\n")
		var out bytes.Buffer

		if err := runShell(context.Background(), newShellHandler(), in, &out); err != nil {
			t.Fatal(err)
		}
		got := out.String()
		if !strings.Contains(got, "Not found") {
			t.Fatalf("missing not-found message:\n%s", got)
		}
		if !strings.Contains(got, "error:") {
			t.Fatalf("missing parse error:\n%s", got)
		}
		if !strings.Contains(got, "Collection (1 shown)") {
			t.Fatalf("quoted argument not kept together:\n%s", got)
		}
	})

	t.Run("should refuse a nested shell", func(t *testing.T) {
		var out bytes.Buffer
		if err := runShell(context.Background(), newShellHandler(), strings.NewReader("shell\n"), &out); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out.String(), "already in a shell") {
			t.Fatalf("unexpected output:\n%s", out.String())
		}
	})
}

func TestDateArg(t *testing.T) {
	var d dateArg
	if err := d.UnmarshalText([]byte("2025-09-12")); err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC); !d.Equal(want) {
		t.Fatalf("\nwanted:\n%v\ngot:\n%v", want, d.Time)
	}
	if err := d.UnmarshalText([]byte("12/09/2025")); err == nil {
		t.Fatal("\nwanted:\nerror\ngot:\nnil")
	}
}

func TestCreateEventDraft(t *testing.T) {
	lat := 40.7
	c := &createEventCmd{Name: "Market", Lat: &lat}
	if _, err := c.draft(); err == nil {
		t.Fatal("lat without lng accepted")
	}

	lng := -74.0
	c.Lng = &lng
	c.Artists = "a, b,"
	draft, err := c.draft()
	if err != nil {
		t.Fatal(err)
	}
	if draft.Coordinates == nil || len(draft.AssociatedArtists) != 2 {
		t.Fatalf("unexpected draft: %+v", draft)
	}
}
