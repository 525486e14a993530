package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	ts := time.Date(2024, 5, 2, 3, 0, 0, 0, loc)
	assert.Equal(t, "2024-05-01", DayUTC(ts))
}

func TestDayBounds(t *testing.T) {
	d, err := ParseDateUTC("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), StartOfDayUTC(d))
	assert.Equal(t, time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC), EndOfDayUTC(d))

	_, err = ParseDateUTC("05/01/2024")
	assert.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	assert.True(t, ParseTimestamp("").IsZero())
	assert.True(t, ParseTimestamp("yesterday").IsZero())
	assert.Equal(t, 2024, ParseTimestamp("2024-05-01T10:00:00.000Z").Year())
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "CDC issued new guidance", CollapseWhitespace("  CDC\n\tissued   new guidance \n"))
	assert.Equal(t, "", CollapseWhitespace(" \n "))
}
