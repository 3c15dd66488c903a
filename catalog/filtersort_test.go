package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talespace/talespace-server/models"
)

func book(title string, createdAt int64, totalRead int64) models.Book {
	b := models.Book{Title: title, TotalRead: totalRead}
	if createdAt > 0 {
		b.CreatedAt = time.Unix(createdAt, 0)
	}
	return b
}

func titles(books []models.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func TestApply_Scenarios(t *testing.T) {
	list := []models.Book{
		book("Moon Tale", 100, 5),
		book("Sun Saga", 200, 50),
	}

	assert.Equal(t, []string{"Sun Saga", "Moon Tale"}, titles(Apply(list, "", SortNewest)))
	assert.Equal(t, []string{"Sun Saga", "Moon Tale"}, titles(Apply(list, "", SortMostRead)))
	assert.Equal(t, []string{"Moon Tale"}, titles(Apply(list, "moon", SortNewest)))
	assert.Equal(t, []string{"Moon Tale", "Sun Saga"}, titles(Apply(list, "", SortOldest)))
	assert.Equal(t, []string{"Moon Tale", "Sun Saga"}, titles(Apply(list, "", SortAlphabetical)))
}

func TestApply_EmptyTermIsPermutation(t *testing.T) {
	list := []models.Book{
		book("C", 3, 1),
		book("A", 1, 9),
		book("B", 2, 4),
	}
	for _, key := range []SortKey{SortNewest, SortOldest, SortMostRead, SortAlphabetical} {
		got := Apply(list, "", key)
		require.Len(t, got, len(list), "sort %s dropped books", key)
		assert.ElementsMatch(t, titles(list), titles(got), "sort %s", key)
	}
}

func TestApply_Idempotent(t *testing.T) {
	list := []models.Book{
		book("Delta", 40, 2),
		book("alpha", 10, 7),
		book("Beta", 20, 7),
		book("gamma", 30, 1),
	}
	for _, key := range []SortKey{SortNewest, SortOldest, SortMostRead, SortAlphabetical} {
		once := Apply(list, "a", key)
		twice := Apply(once, "a", key)
		assert.Equal(t, once, twice, "sort %s", key)
	}
}

func TestApply_NewestThenOldestReverses(t *testing.T) {
	list := []models.Book{
		book("A", 1, 0),
		book("B", 2, 0),
		book("C", 3, 0),
	}
	newest := Apply(list, "", SortNewest)
	oldest := Apply(list, "", SortOldest)
	require.Len(t, oldest, len(newest))
	for i := range newest {
		assert.Equal(t, newest[i].Title, oldest[len(oldest)-1-i].Title)
	}
}

func TestApply_MissingTimestampSortsOldest(t *testing.T) {
	list := []models.Book{
		book("No Timestamp", 0, 0),
		book("Old", 100, 0),
		book("New", 200, 0),
	}
	assert.Equal(t, []string{"New", "Old", "No Timestamp"}, titles(Apply(list, "", SortNewest)))
	assert.Equal(t, []string{"No Timestamp", "Old", "New"}, titles(Apply(list, "", SortOldest)))
}

func TestApply_MostReadStableForEqualCounts(t *testing.T) {
	list := []models.Book{
		book("First", 1, 10),
		book("Second", 2, 10),
		book("Third", 3, 10),
	}
	// Equal read counts keep their incoming order.
	assert.Equal(t, []string{"First", "Second", "Third"}, titles(Apply(list, "", SortMostRead)))
}

func TestApply_SearchFields(t *testing.T) {
	list := []models.Book{
		{Title: "The Lighthouse", Author: "Ada Gray", Category: "mystery"},
		{Title: "Summer Drift", Author: "Tom Hale", Category: "romance"},
		{Title: "Night Watch", Author: "Grayson Reed", Category: "thriller"},
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"matches title", "lighthouse", []string{"The Lighthouse"}},
		{"matches author substring", "gray", []string{"The Lighthouse", "Night Watch"}},
		{"matches category", "romance", []string{"Summer Drift"}},
		{"case insensitive", "LIGHTHOUSE", []string{"The Lighthouse"}},
		{"whitespace only term keeps all", "   ", []string{"The Lighthouse", "Summer Drift", "Night Watch"}},
		{"no match", "zeppelin", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Apply(list, tt.term, SortNewest)))
		})
	}
}

func TestApply_AlphabeticalIgnoresCase(t *testing.T) {
	list := []models.Book{
		book("banana", 1, 0),
		book("Apple", 2, 0),
		book("cherry", 3, 0),
	}
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, titles(Apply(list, "", SortAlphabetical)))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	list := []models.Book{
		book("B", 1, 0),
		book("A", 2, 0),
	}
	_ = Apply(list, "", SortAlphabetical)
	assert.Equal(t, []string{"B", "A"}, titles(list))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSortKey(""))
	assert.Equal(t, SortNewest, ParseSortKey("bogus"))
	assert.Equal(t, SortOldest, ParseSortKey("oldest"))
	assert.Equal(t, SortMostRead, ParseSortKey("mostRead"))
	assert.Equal(t, SortAlphabetical, ParseSortKey("alphabetical"))
}
