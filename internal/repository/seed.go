package repository

import (
	"time"

	"github.com/Shivanand-hulikatti/happenings/internal/model"
)

const unsplash = "https://images.unsplash.com/"

// SeedMedia returns the sample media collection, newest first.
func SeedMedia() []model.MediaItem {
	return []model.MediaItem{
		{
			ID: "1", Src: unsplash + "photo-1618005182384-a83a8bd57fbe?w=500&h=500&fit=crop", Type: model.MediaImage,
			Title: "Digital Art Piece", Tags: []string{"digital", "abstract"}, TaggedPeople: []string{"alice", "bob"},
			Status: model.StatusPending, CreatedAt: parseDate("2025-08-07"), CapturedBy: "Alex Chen",
			Likes: 142, Shares: 23, Earnings: 350.75,
			IsNFT: true,
			NFTMetadata: &model.NFTMetadata{
				Blockchain: "Ethereum", TokenID: "1234", Collection: "Digital Dreams", Value: price(2.5),
				Description: "Exclusive digital artwork capturing the essence of abstract creativity",
			},
		},
		{
			ID: "2", Src: unsplash + "photo-1470229722913-7c0e2dbbafd3?w=500&h=500&fit=crop", Type: model.MediaImage,
			Title: "Concert Performance", Tags: []string{"concert", "performance", "music"}, TaggedPeople: []string{"charlie"},
			Status: model.StatusApproved, CreatedAt: parseDate("2025-08-06"), CapturedBy: "Sarah Johnson",
			Likes: 89, Shares: 12, Earnings: 245.50,
		},
		{
			ID: "3", Src: unsplash + "photo-1519741497674-611481863552?w=500&h=500&fit=crop", Type: model.MediaImage,
			Title: "Wedding Ceremony", Tags: []string{"wedding", "ceremony", "celebration"}, TaggedPeople: []string{},
			Status: model.StatusApproved, CreatedAt: parseDate("2025-08-05"), CapturedBy: "Mike Rodriguez",
			Likes: 156, Shares: 31, Earnings: 890.25,
		},
		{
			ID: "4", Src: unsplash + "photo-1493225457124-a3eb161ffa5f?w=500&h=500&fit=crop", Type: model.MediaImage,
			Title: "Live Music Performance", Tags: []string{"music", "performance", "live"}, TaggedPeople: []string{"david", "jazz_master"},
			Status: model.StatusApproved, CreatedAt: parseDate("2025-08-04"), CapturedBy: "Emma Davis",
			Likes: 203, Shares: 45, Earnings: 1250.75,
		},
		{
			ID: "5", Src: unsplash + "photo-1518837695005-2083093ee35b?w=500&h=500&fit=crop", Type: model.MediaImage,
			Title: "Ocean Waves", Tags: []string{"ocean", "waves"}, TaggedPeople: []string{},
			Status: model.StatusApproved, CreatedAt: parseDate("2025-08-03"), CapturedBy: "Alex Chen",
			Likes: 178, Shares: 29, Earnings: 520.30,
			IsNFT: true,
			NFTMetadata: &model.NFTMetadata{
				Blockchain: "Polygon", TokenID: "5678", Collection: "Ocean Dreams", Value: price(1.8),
				Description: "Mesmerizing capture of ocean waves in perfect harmony",
			},
		},
		{
			ID: "6", Src: unsplash + "photo-1583939003579-730e3918a45a?w=500&h=500&fit=crop", Type: model.MediaImage,
			Title: "Theater Performance", Tags: []string{"theater", "performance", "stage"}, TaggedPeople: []string{"emma"},
			Status: model.StatusApproved, CreatedAt: parseDate("2025-08-02"), CapturedBy: "David Kim",
			Likes: 94, Shares: 18, Earnings: 325.00,
		},
		{
			ID: "7", Src: unsplash + "photo-1493225457124-a3eb161ffa5f?w=500&h=500&fit=crop", Type: model.MediaImage,
			Title: "Live Music Event", Tags: []string{"music", "concert", "live"}, TaggedPeople: []string{"frank", "grace"},
			Status: model.StatusApproved, CreatedAt: parseDate("2025-08-01"), CapturedBy: "Lisa Wong",
			Likes: 267, Shares: 52, Earnings: 675.30,
			IsNFT: true,
			NFTMetadata: &model.NFTMetadata{
				Blockchain: "Ethereum", TokenID: "9999", Collection: "Live Moments", Value: price(3.2),
				Description: "Iconic moment from an unforgettable live performance",
			},
		},
	}
}

// SeedArtists returns the five sample artists.
func SeedArtists() []model.Artist {
	return []model.Artist{
		{ID: "artist1", Name: "Luna Dreams", Handle: "lunar_dreams", Avatar: unsplash + "photo-1534528741775-53994a69daeb?w=150&h=150&fit=crop",
			Category: model.CategoryMusic, IsLive: true, Followers: 15200, Location: "Downtown Studio", Coordinates: model.Coordinates{Lat: 40.7128, Lng: -74.0060}},
		{ID: "artist2", Name: "Paint Wizard", Handle: "paint_wizard", Avatar: unsplash + "photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop",
			Category: model.CategoryArt, IsLive: true, Followers: 8900, Location: "Art District", Coordinates: model.Coordinates{Lat: 40.7180, Lng: -74.0020}},
		{ID: "artist3", Name: "Jazz Master", Handle: "jazz_master", Avatar: unsplash + "photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop",
			Category: model.CategoryMusic, IsLive: false, Followers: 22100, Location: "Blue Note Venue", Coordinates: model.Coordinates{Lat: 40.7100, Lng: -74.0080}},
		{ID: "artist4", Name: "Digital Soul", Handle: "digital_soul", Avatar: unsplash + "photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop",
			Category: model.CategoryArt, IsLive: true, Followers: 12800, Location: "Tech Hub", Coordinates: model.Coordinates{Lat: 40.7200, Lng: -74.0010}},
		{ID: "artist5", Name: "Chef Maria", Handle: "chef_maria", Avatar: unsplash + "photo-1544725176-7c40e5a71c5e?w=150&h=150&fit=crop",
			Category: model.CategoryFood, IsLive: true, Followers: 18700, Location: "Culinary Center", Coordinates: model.Coordinates{Lat: 40.7150, Lng: -74.0040}},
	}
}

// SeedEvents returns the sample events with their nested galleries.
func SeedEvents() []model.PublicEvent {
	return []model.PublicEvent{
		{
			ID: "alex_event1", Name: "Creative Tech Showcase", Location: "Innovation Center",
			Description: "Showcasing the latest in creative technology and digital art. Join innovators and creators for an evening of inspiration.",
			Date:        parseDate("2025-09-20"), EventDates: dates("2025-09-20"),
			Thumbnail: unsplash + "photo-1451187580459-43490279c0fa?w=300&h=300&fit=crop",
			Photos: []model.MediaItem{
				eventPhoto("ae1p1", "photo-1451187580459-43490279c0fa", "Tech Demo", "2025-09-20", "Alex Chen", 289, 67, 1250.30,
					[]string{"tech", "innovation"}, []string{"developer1", "startup_founder"}),
			},
			CreatorID: "current_user", CreatorName: "Alex Chen", Category: model.CategoryTech,
			AssociatedArtists: []string{"digital_soul", "tech_artist", "vr_creator"},
			Coordinates:       &model.Coordinates{Lat: 40.7180, Lng: -74.0020},
			Signups:           []model.EventSignup{},
		},
		{
			ID: "alex_event2", Name: "Summer Art Festival", Location: "Downtown Plaza",
			Description: "An immersive art experience featuring local and international artists. Join us for three days of creativity, music, and community.",
			Date:        parseDate("2025-08-15"), EventDates: dates("2025-08-15", "2025-08-16", "2025-08-17"),
			Thumbnail: unsplash + "photo-1533174072545-7a4b6ad7a6c3?w=300&h=300&fit=crop",
			Photos: []model.MediaItem{
				eventPhoto("ae2p1", "photo-1533174072545-7a4b6ad7a6c3", "Art Installation", "2025-08-15", "Alex Chen", 89, 12, 890.50,
					[]string{"art", "festival"}, []string{"artist1", "visitor1"}),
				eventPhoto("ae2p2", "photo-1578662996442-48f60103fc96", "Live Performance", "2025-08-15", "Alex Chen", 156, 23, 1120.25,
					[]string{"performance", "music"}, []string{"performer1"}),
			},
			CreatorID: "current_user", CreatorName: "Alex Chen", Category: model.CategoryArt,
			AssociatedArtists: []string{"kismet", "lunar_dreams", "paint_wizard", "digital_soul"},
			IsLive:            true,
			Coordinates:       &model.Coordinates{Lat: 40.7128, Lng: -74.0060},
			Signups:           []model.EventSignup{},
		},
		{
			ID: "alex_event3", Name: "Urban Photography Walk", Location: "Historic District",
			Description: "Explore the city through your lens. A guided photography walk capturing the essence of urban life and hidden architectural gems.",
			Date:        parseDate("2025-07-28"), EventDates: dates("2025-07-28"),
			Thumbnail: unsplash + "photo-1542038784456-1ea8e935640e?w=300&h=300&fit=crop",
			Photos: []model.MediaItem{
				eventPhoto("ae3p1", "photo-1542038784456-1ea8e935640e", "Street Photography", "2025-07-28", "Alex Chen", 234, 56, 675.80,
					[]string{"photography", "urban", "street"}, []string{"photographer1", "model1"}),
			},
			CreatorID: "current_user", CreatorName: "Alex Chen", Category: model.CategoryArt,
			AssociatedArtists: []string{"street_photographer", "urban_explorer"},
			Coordinates:       &model.Coordinates{Lat: 40.7200, Lng: -74.0010},
			Signups:           []model.EventSignup{},
		},
		{
			ID: "alex_event4", Name: "Indie Music Showcase", Location: "Riverside Amphitheater",
			Description: "Discover emerging indie artists in an intimate outdoor setting. Supporting local musicians and creating unforgettable musical moments.",
			Date:        parseDate("2025-06-12"), EventDates: dates("2025-06-12", "2025-06-13"),
			Thumbnail: unsplash + "photo-1501386761578-eac5c94b800a?w=300&h=300&fit=crop",
			Photos: []model.MediaItem{
				eventPhoto("ae4p1", "photo-1501386761578-eac5c94b800a", "Indie Performance", "2025-06-12", "Alex Chen", 445, 89, 1890.25,
					[]string{"music", "indie", "live"}, []string{"indie_band", "musician1"}),
			},
			CreatorID: "current_user", CreatorName: "Alex Chen", Category: model.CategoryMusic,
			AssociatedArtists: []string{"indie_collective", "acoustic_duo", "local_band"},
			Coordinates:       &model.Coordinates{Lat: 40.7090, Lng: -74.0070},
			Signups:           []model.EventSignup{},
		},
		{
			ID: "alex_event5", Name: "Community Art Workshop", Location: "Community Center",
			Description: "Bringing art to the community through hands-on workshops. Teaching painting, sculpture, and mixed media to all ages.",
			Date:        parseDate("2025-05-05"), EventDates: dates("2025-05-05", "2025-05-06"),
			Thumbnail: unsplash + "photo-1513475382585-d06e58bcb0e0?w=300&h=300&fit=crop",
			Photos: []model.MediaItem{
				eventPhoto("ae5p1", "photo-1513475382585-d06e58bcb0e0", "Art Workshop", "2025-05-05", "Alex Chen", 167, 34, 450.60,
					[]string{"workshop", "community", "art"}, []string{"art_teacher", "student1"}),
			},
			CreatorID: "current_user", CreatorName: "Alex Chen", Category: model.CategoryArt,
			AssociatedArtists: []string{"community_artist", "art_instructor"},
			Coordinates:       &model.Coordinates{Lat: 40.7160, Lng: -74.0050},
			Signups:           []model.EventSignup{},
		},
		{
			ID: "alex_event6", Name: "Digital Creator Meetup", Location: "Co-working Space",
			Description: "Monthly gathering for digital creators, influencers, and content makers. Share knowledge, collaborate, and grow together.",
			Date:        parseDate("2025-03-18"), EventDates: dates("2025-03-18"),
			Thumbnail: unsplash + "photo-1522202176988-66273c2fd55f?w=300&h=300&fit=crop",
			Photos: []model.MediaItem{
				eventPhoto("ae6p1", "photo-1522202176988-66273c2fd55f", "Creator Meetup", "2025-03-18", "Alex Chen", 356, 78, 780.45,
					[]string{"digital", "creators", "networking"}, []string{"content_creator", "influencer1"}),
			},
			CreatorID: "current_user", CreatorName: "Alex Chen", Category: model.CategoryTech,
			AssociatedArtists: []string{"digital_creator", "social_media_expert"},
			Coordinates:       &model.Coordinates{Lat: 40.7140, Lng: -74.0030},
			Signups:           []model.EventSignup{},
		},
		{
			ID: "event2", Name: "Jazz Night Performance", Location: "Blue Note Venue",
			Description: "An intimate evening of jazz music featuring renowned local and touring musicians. Experience the magic of live jazz in our cozy venue.",
			Date:        parseDate("2025-08-12"), EventDates: dates("2025-08-12", "2025-09-12", "2025-10-12"),
			Thumbnail: unsplash + "photo-1493225457124-a3eb161ffa5f?w=300&h=300&fit=crop",
			Photos: []model.MediaItem{
				eventPhoto("e2p1", "photo-1493225457124-a3eb161ffa5f", "Jazz Performance", "2025-08-12", "Event Photographer", 78, 15, 450.75,
					[]string{"jazz", "music", "performance"}, []string{"speaker1", "attendee1"}),
			},
			CreatorID: "creator2", CreatorName: "Sarah Johnson", Category: model.CategoryMusic,
			AssociatedArtists: []string{"jazz_master", "blue_notes", "midnight_keys"},
			IsLive:            true,
			Coordinates:       &model.Coordinates{Lat: 40.7100, Lng: -74.0080},
			Signups:           []model.EventSignup{},
		},
		{
			ID: "event3", Name: "Food & Wine Festival", Location: "Riverfront Park",
			Description: "Celebrate culinary excellence with renowned chefs, local wineries, and gourmet food vendors.",
			Date:        parseDate("2025-08-10"), EventDates: dates("2025-08-10", "2025-08-11"),
			Thumbnail: unsplash + "photo-1414235077428-338989a2e8c0?w=300&h=300&fit=crop",
			Photos: []model.MediaItem{
				eventPhoto("e3p1", "photo-1414235077428-338989a2e8c0", "Gourmet Display", "2025-08-10", "Event Photographer", 234, 45, 0,
					[]string{"food", "festival"}, []string{"chef1", "visitor2"}),
			},
			CreatorID: "creator3", CreatorName: "Mike Rodriguez", Category: model.CategoryFood,
			AssociatedArtists: []string{"chef_maria", "wine_sommelier", "pastry_king", "grill_master", "local_baker"},
			Coordinates:       &model.Coordinates{Lat: 40.7150, Lng: -74.0040},
			Signups:           []model.EventSignup{},
		},
	}
}

func eventPhoto(id, photo, title, date, by string, likes, shares int, earnings float64, tags, people []string) model.MediaItem {
	return model.MediaItem{
		ID:           id,
		Src:          unsplash + photo + "?w=500&h=500&fit=crop",
		Type:         model.MediaImage,
		Title:        title,
		Tags:         tags,
		TaggedPeople: people,
		Status:       model.StatusApproved,
		CreatedAt:    parseDate(date),
		CapturedBy:   by,
		Likes:        likes,
		Shares:       shares,
		Earnings:     earnings,
	}
}

func dates(ds ...string) []time.Time {
	out := make([]time.Time, len(ds))
	for i, d := range ds {
		out[i] = parseDate(d)
	}
	return out
}

func price(v float64) *float64 {
	return &v
}

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}
