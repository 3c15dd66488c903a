// Package catalog holds the pure filter/sort logic applied to an
// already-fetched book list. Nothing here performs I/O; handlers and
// view models re-run Apply on every search or sort change instead of
// going back to the store.
package catalog

import (
	"sort"
	"strings"

	"github.com/talespace/talespace-server/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering Apply produces.
type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortOldest       SortKey = "oldest"
	SortMostRead     SortKey = "mostRead"
	SortAlphabetical SortKey = "alphabetical"
)

// ParseSortKey maps a raw query value to a SortKey, defaulting to
// newest for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortOldest, SortMostRead, SortAlphabetical:
		return SortKey(s)
	default:
		return SortNewest
	}
}

// Apply filters books by the trimmed search term (case-insensitive
// substring over title, author, and category), then orders the result
// by the sort key. The input is never mutated and sorting is stable,
// so equal keys keep their incoming relative order. Books missing a
// timestamp sort as oldest; a missing read count counts as zero.
func Apply(books []models.Book, searchTerm string, key SortKey) []models.Book {
	out := make([]models.Book, 0, len(books))

	term := strings.ToLower(strings.TrimSpace(searchTerm))
	for _, b := range books {
		if term == "" ||
			strings.Contains(strings.ToLower(b.Title), term) ||
			strings.Contains(strings.ToLower(b.Author), term) ||
			strings.Contains(strings.ToLower(b.Category), term) {
			out = append(out, b)
		}
	}

	switch key {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortMostRead:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TotalRead > out[j].TotalRead
		})
	case SortAlphabetical:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
