// Package view computes the read-side projections every screen consumes:
// partitions, filters, sorts and aggregates over store snapshots. All
// functions are pure and return fresh slices; nothing is cached.
package view

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/Shivanand-hulikatti/happenings/internal/model"
)

// ByStatus returns the items with the given moderation status, in input order.
func ByStatus(items []model.MediaItem, status model.MediaStatus) []model.MediaItem {
	return filter(items, func(m model.MediaItem) bool { return m.Status == status })
}

// Approved returns the approved items.
func Approved(items []model.MediaItem) []model.MediaItem {
	return ByStatus(items, model.StatusApproved)
}

// Pending returns the items awaiting review.
func Pending(items []model.MediaItem) []model.MediaItem {
	return ByStatus(items, model.StatusPending)
}

// Rejected returns the rejected items.
func Rejected(items []model.MediaItem) []model.MediaItem {
	return ByStatus(items, model.StatusRejected)
}

// NFTs returns the minted items. Items flagged as NFTs without metadata are
// skipped.
func NFTs(items []model.MediaItem) []model.MediaItem {
	return filter(items, func(m model.MediaItem) bool { return m.IsNFT && m.NFTMetadata != nil })
}

// CapturedBy returns the items credited to the given display name.
func CapturedBy(items []model.MediaItem, name string) []model.MediaItem {
	return filter(items, func(m model.MediaItem) bool { return m.CapturedBy == name })
}

// NFTSort orders the gallery.
type NFTSort string

const (
	NFTSortRecent    NFTSort = "recent"
	NFTSortPriceHigh NFTSort = "price-high"
	NFTSortPriceLow  NFTSort = "price-low"
	NFTSortPopular   NFTSort = "popular"
)

// ParseNFTSort validates a gallery sort key.
func ParseNFTSort(s string) (NFTSort, error) {
	switch v := NFTSort(strings.ToLower(strings.TrimSpace(s))); v {
	case NFTSortRecent, NFTSortPriceHigh, NFTSortPriceLow, NFTSortPopular:
		return v, nil
	case "":
		return NFTSortRecent, nil
	default:
		return "", fmt.Errorf("unknown sort %q (want recent, price-high, price-low or popular)", s)
	}
}

// SortNFTs returns a sorted copy. Ties keep input order.
func SortNFTs(items []model.MediaItem, by NFTSort) []model.MediaItem {
	out := slices.Clone(items)
	var fn func(a, b model.MediaItem) int
	switch by {
	case NFTSortPriceHigh:
		fn = func(a, b model.MediaItem) int { return cmp.Compare(b.NFTMetadata.Price(), a.NFTMetadata.Price()) }
	case NFTSortPriceLow:
		fn = func(a, b model.MediaItem) int { return cmp.Compare(a.NFTMetadata.Price(), b.NFTMetadata.Price()) }
	case NFTSortPopular:
		fn = func(a, b model.MediaItem) int { return cmp.Compare(b.Likes, a.Likes) }
	default:
		fn = func(a, b model.MediaItem) int { return b.CreatedAt.Compare(a.CreatedAt) }
	}
	slices.SortStableFunc(out, fn)
	return out
}

// PriceBand narrows the gallery by token value.
type PriceBand string

const (
	BandAll    PriceBand = "all"
	BandUnder1 PriceBand = "under-1"
	Band1To5   PriceBand = "1-5"
	BandOver5  PriceBand = "over-5"
)

// ParsePriceBand validates a price band key.
func ParsePriceBand(s string) (PriceBand, error) {
	switch v := PriceBand(strings.ToLower(strings.TrimSpace(s))); v {
	case BandAll, BandUnder1, Band1To5, BandOver5:
		return v, nil
	case "":
		return BandAll, nil
	default:
		return "", fmt.Errorf("unknown price band %q (want all, under-1, 1-5 or over-5)", s)
	}
}

// Contains reports whether price falls inside the band. Band 1-5 is inclusive
// on both ends.
func (b PriceBand) Contains(price float64) bool {
	switch b {
	case BandUnder1:
		return price < 1
	case Band1To5:
		return price >= 1 && price <= 5
	case BandOver5:
		return price > 5
	default:
		return true
	}
}

// SearchNFTs keeps the items whose title or any tag contains query
// (case-insensitive) and whose price lies in band.
func SearchNFTs(items []model.MediaItem, query string, band PriceBand) []model.MediaItem {
	q := strings.ToLower(strings.TrimSpace(query))
	return filter(items, func(m model.MediaItem) bool {
		if !band.Contains(m.NFTMetadata.Price()) {
			return false
		}
		return containsFold(q, m.Title) || containsFold(q, m.Tags...)
	})
}

// TopByLikes returns at most n items ordered by descending likes.
func TopByLikes(items []model.MediaItem, n int) []model.MediaItem {
	out := SortNFTs(items, NFTSortPopular)
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TotalEarnings sums item earnings.
func TotalEarnings(items []model.MediaItem) float64 {
	var total float64
	for _, m := range items {
		total += m.Earnings
	}
	return total
}

// TotalLikes sums item likes.
func TotalLikes(items []model.MediaItem) int {
	var total int
	for _, m := range items {
		total += m.Likes
	}
	return total
}

// TotalShares sums item shares.
func TotalShares(items []model.MediaItem) int {
	var total int
	for _, m := range items {
		total += m.Shares
	}
	return total
}

// TotalNFTValue sums the token values of minted items.
func TotalNFTValue(items []model.MediaItem) float64 {
	var total float64
	for _, m := range items {
		if m.IsNFT {
			total += m.NFTMetadata.Price()
		}
	}
	return total
}

// CountNFTs counts minted items.
func CountNFTs(items []model.MediaItem) int {
	n := 0
	for _, m := range items {
		if m.IsNFT {
			n++
		}
	}
	return n
}

// DistinctCreators counts distinct capturedBy names.
func DistinctCreators(items []model.MediaItem) int {
	seen := make(map[string]struct{})
	for _, m := range items {
		seen[m.CapturedBy] = struct{}{}
	}
	return len(seen)
}

// DistinctTaggedPeople returns every handle tagged across items, deduplicated,
// in first-seen order.
func DistinctTaggedPeople(items []model.MediaItem) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range items {
		for _, p := range m.TaggedPeople {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// CollectionSummary aggregates the minted items of one collection.
type CollectionSummary struct {
	Name       string
	Items      int
	TotalValue float64
	Floor      float64
	Owners     int
}

// CollectionSummaries groups minted items by collection, sorted by name.
func CollectionSummaries(items []model.MediaItem) []CollectionSummary {
	byName := make(map[string]*CollectionSummary)
	owners := make(map[string]map[string]struct{})
	for _, m := range NFTs(items) {
		name := m.NFTMetadata.Collection
		price := m.NFTMetadata.Price()
		s, ok := byName[name]
		if !ok {
			s = &CollectionSummary{Name: name, Floor: price}
			byName[name] = s
			owners[name] = make(map[string]struct{})
		}
		s.Items++
		s.TotalValue += price
		s.Floor = min(s.Floor, price)
		owners[name][m.CapturedBy] = struct{}{}
	}

	out := make([]CollectionSummary, 0, len(byName))
	for name, s := range byName {
		s.Owners = len(owners[name])
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b CollectionSummary) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// TagStats summarises how often a person appears in other people's shots.
type TagStats struct {
	TimesTagged     int
	DistinctTaggers int
}

// TagStatsFor counts every tag naming one of handles (case-insensitive), so an
// item tagging two of them counts twice, and the distinct capturers of the
// items carrying such tags.
func TagStatsFor(items []model.MediaItem, handles []string) TagStats {
	var stats TagStats
	taggers := make(map[string]struct{})
	for _, m := range items {
		n := 0
		for _, p := range m.TaggedPeople {
			if slices.ContainsFunc(handles, func(h string) bool { return strings.EqualFold(p, h) }) {
				n++
			}
		}
		if n > 0 {
			stats.TimesTagged += n
			taggers[m.CapturedBy] = struct{}{}
		}
	}
	stats.DistinctTaggers = len(taggers)
	return stats
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// containsFold reports whether lowered query q occurs in any field. An empty
// query matches everything.
func containsFold(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
