package followup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phoenix(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Phoenix")
	require.NoError(t, err)
	return loc
}

func TestResolveSlotResetsWallClock(t *testing.T) {
	loc := phoenix(t)
	now := time.Date(2026, 3, 10, 17, 42, 31, 999, loc)

	slot := ResolveSlot(now, loc, 7, 8, 0, 30)

	assert.Equal(t, time.Date(2026, 3, 17, 8, 0, 0, 0, loc), slot.Start)
	assert.Equal(t, 30*time.Minute, slot.End.Sub(slot.Start))
}

func TestResolveSlotZeroDaysIsToday(t *testing.T) {
	loc := phoenix(t)
	now := time.Date(2026, 3, 10, 17, 0, 0, 0, loc)

	slot := ResolveSlot(now, loc, 0, 9, 15, 45)

	// The resolved start is earlier than now; that is deliberate, the
	// slot is not clamped to the future.
	assert.Equal(t, time.Date(2026, 3, 10, 9, 15, 0, 0, loc), slot.Start)
	assert.True(t, slot.Start.Before(now))
}

func TestResolveSlotConvertsNowIntoLocation(t *testing.T) {
	loc := phoenix(t)
	// 2026-03-11 02:00 UTC is still 2026-03-10 19:00 in Phoenix.
	now := time.Date(2026, 3, 11, 2, 0, 0, 0, time.UTC)

	slot := ResolveSlot(now, loc, 1, 8, 0, 30)

	assert.Equal(t, time.Date(2026, 3, 11, 8, 0, 0, 0, loc), slot.Start)
}

func TestResolveSlotMonthRollover(t *testing.T) {
	loc := phoenix(t)
	now := time.Date(2026, 1, 28, 12, 0, 0, 0, loc)

	slot := ResolveSlot(now, loc, 7, 8, 30, 60)

	assert.Equal(t, time.Date(2026, 2, 4, 8, 30, 0, 0, loc), slot.Start)
	assert.Equal(t, time.Date(2026, 2, 4, 9, 30, 0, 0, loc), slot.End)
}
