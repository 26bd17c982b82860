package main

import (
	"fmt"
	"time"
)

// args is the command line of both one-shot runs and shell lines.
type args struct {
	Home        *homeCmd        `arg:"subcommand:home" help:"show the home feed"`
	Inbox       *inboxCmd       `arg:"subcommand:inbox" help:"list items awaiting review"`
	Gallery     *galleryCmd     `arg:"subcommand:gallery" help:"browse minted NFTs"`
	Events      *eventsCmd      `arg:"subcommand:events" help:"discover events and artists"`
	Event       *eventCmd       `arg:"subcommand:event" help:"show one event"`
	Artist      *artistCmd      `arg:"subcommand:artist" help:"show one artist and their events"`
	Profile     *profileCmd     `arg:"subcommand:profile" help:"show your stats and events"`
	Capture     *captureCmd     `arg:"subcommand:capture" help:"take a simulated photo or video"`
	Upload      *uploadCmd      `arg:"subcommand:upload" help:"upload photos for review"`
	Approve     *approveCmd     `arg:"subcommand:approve" help:"approve a pending item"`
	Reject      *rejectCmd      `arg:"subcommand:reject" help:"reject a pending item"`
	Mint        *mintCmd        `arg:"subcommand:mint" help:"mint an item as an NFT"`
	CreateEvent *createEventCmd `arg:"subcommand:create-event" help:"publish a new event"`
	Signup      *signupCmd      `arg:"subcommand:signup" help:"sign up for an event date"`
	Shell       *shellCmd       `arg:"subcommand:shell" help:"start an interactive session"`
}

// Description is printed above the usage text.
func (args) Description() string {
	return "Happenings: capture, tag and monetize event photography.\n"
}

type (
	homeCmd    struct{}
	inboxCmd   struct{}
	profileCmd struct{}
	shellCmd   struct{}
)

type galleryCmd struct {
	Search string `arg:"-s,--search" help:"match title or tag"`
	Price  string `arg:"--price" default:"all" help:"all, under-1, 1-5 or over-5"`
	Sort   string `arg:"--sort" default:"recent" help:"recent, price-high, price-low or popular"`
}

type eventsCmd struct {
	Search   string `arg:"-s,--search" help:"match name, location, creator or artist handle"`
	Category string `arg:"-c,--category" default:"all" help:"all, music, art, food, tech or other"`
	Sort     string `arg:"--sort" default:"recent" help:"recent, popular or upcoming"`
}

type eventCmd struct {
	ID string `arg:"positional,required" help:"event id"`
}

type artistCmd struct {
	Handle string `arg:"positional,required" help:"artist handle"`
}

type captureCmd struct {
	Event string `arg:"-e,--event" help:"attribute the shot to this event id"`
	Video bool   `arg:"--video" help:"record video instead of a photo"`
}

type uploadCmd struct {
	Sources []string `arg:"positional,required" help:"image URLs"`
	Title   string   `arg:"-t,--title,required"`
	Tags    string   `arg:"--tags" help:"comma-separated tags"`
	People  string   `arg:"--people" help:"comma-separated handles to tag"`
}

type approveCmd struct {
	ID string `arg:"positional,required" help:"media id"`
}

type rejectCmd struct {
	ID string `arg:"positional,required" help:"media id"`
}

type mintCmd struct {
	ID    string   `arg:"positional,required" help:"media id"`
	Value *float64 `arg:"--value" help:"listing price in ETH"`
}

type createEventCmd struct {
	Name        string    `arg:"--name,required"`
	Location    string    `arg:"--location,required"`
	Description string    `arg:"--description,required"`
	Dates       []dateArg `arg:"--date,required,separate" help:"event date (YYYY-MM-DD), repeatable"`
	Category    string    `arg:"--category" default:"other"`
	Artists     string    `arg:"--artists" help:"comma-separated artist handles"`
	Thumbnail   string    `arg:"--thumbnail"`
	Live        bool      `arg:"--live"`
	Lat         *float64  `arg:"--lat"`
	Lng         *float64  `arg:"--lng"`
}

type signupCmd struct {
	EventID   string  `arg:"positional,required" help:"event id"`
	Date      dateArg `arg:"--date,required" help:"one of the event's upcoming dates (YYYY-MM-DD)"`
	Performer bool    `arg:"--performer" help:"sign up to perform rather than attend"`
	Artist    string  `arg:"--artist" help:"stage name, required for performers"`
	Profile   string  `arg:"--profile" help:"profile name, required for performers"`
	UserID    string  `arg:"--user" help:"defaults to the active identity"`
	UserName  string  `arg:"--name" help:"defaults to the active identity"`
}

// dateArg is a calendar date flag.
type dateArg struct {
	time.Time
}

func (d *dateArg) UnmarshalText(b []byte) error {
	t, err := time.Parse(time.DateOnly, string(b))
	if err != nil {
		return fmt.Errorf("want YYYY-MM-DD, got %q", b)
	}
	d.Time = t
	return nil
}
