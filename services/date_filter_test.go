package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExactDayBounds(t *testing.T) {
	day := time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	start, end := ExactDay(day).Bounds(now)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), end)
}

func TestBetweenBounds(t *testing.T) {
	from := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 7, 2, 0, 0, 0, time.UTC)
	now := time.Now()

	start, end := Between(from, to).Bounds(now)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 7, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), end)
}

func TestLastNDaysBounds(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	start, end := LastNDays(7).Bounds(now)

	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, now, end)
}

func TestZeroFilter(t *testing.T) {
	var f DateFilter
	assert.True(t, f.IsZero())
	assert.False(t, ExactDay(time.Now()).IsZero())
	assert.False(t, Between(time.Now(), time.Now()).IsZero())
	assert.False(t, LastNDays(7).IsZero())
}
