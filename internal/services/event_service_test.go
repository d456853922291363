package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRangeEnd(t *testing.T) {
	now := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)

	end, ok := dateRangeEnd(now, "thisWeek")
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, 7), end)

	// Jan 31 + 1 month rolls over into March, matching the original
	// client-side month arithmetic.
	end, ok = dateRangeEnd(now, "thisMonth")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC), end)

	end, ok = dateRangeEnd(now, "nextMonth")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC), end)

	_, ok = dateRangeEnd(now, "someday")
	assert.False(t, ok)
	_, ok = dateRangeEnd(now, "")
	assert.False(t, ok)
}

func TestSortClause(t *testing.T) {
	assert.Equal(t, "created_at DESC", sortClause("newest"))
	assert.Equal(t, "title ASC", sortClause("title"))
	assert.Equal(t, "event_date ASC", sortClause(""))
	assert.Equal(t, "event_date ASC", sortClause("bogus"))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, totalPages(20, 9))
	assert.Equal(t, 1, totalPages(9, 9))
	assert.Equal(t, 2, totalPages(10, 9))
	assert.Equal(t, 0, totalPages(0, 9))
}

func TestParseEventDate(t *testing.T) {
	got, err := parseEventDate("2026-02-15T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC), got)

	got, err = parseEventDate("2026-02-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = parseEventDate("next tuesday")
	assert.Error(t, err)
}

func TestFilterImages(t *testing.T) {
	assert.Empty(t, filterImages(nil))
	assert.Empty(t, filterImages([]string{"", "   "}))
	assert.Equal(t,
		[]string{"https://a/1.jpg", "https://a/2.jpg"},
		filterImages([]string{"https://a/1.jpg", "", "https://a/2.jpg", "  "}),
	)
}
