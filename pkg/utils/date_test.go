package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	now := time.Date(2026, 3, 15, 23, 30, 0, 0, time.FixedZone("UTC+3", 3*3600))

	// The zone pushes local time past midnight; the key stays on the UTC day.
	assert.Equal(t, "2026-03-15", DateKey(now))
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-03-15", DaysAgo(now, 0))
	assert.Equal(t, "2026-03-08", DaysAgo(now, 7))
	assert.Equal(t, "2026-02-13", DaysAgo(now, 30))
}
