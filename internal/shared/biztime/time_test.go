package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	instant := time.Date(2025, 6, 15, 23, 59, 59, 999, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), DateOnly(instant))
}

func TestDateOnly_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*3600)
	// 23:00 local on the 14th is 02:00 UTC on the 15th.
	instant := time.Date(2025, 6, 14, 23, 0, 0, 0, loc)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), DateOnly(instant))
}

func TestDateBefore(t *testing.T) {
	morning := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 15, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	assert.False(t, DateBefore(morning, evening), "same calendar date is never before")
	assert.False(t, DateBefore(evening, morning))
	assert.True(t, DateBefore(evening, nextDay))
	assert.False(t, DateBefore(nextDay, evening))
}

func TestAddDays(t *testing.T) {
	start := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC), AddDays(start, 30))
	assert.Equal(t, time.Date(2025, 2, 7, 12, 0, 0, 0, time.UTC), AddDays(start, 7))
}
