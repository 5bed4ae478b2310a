package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectIndex_Deterministic(t *testing.T) {
	date := time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC)

	first, err := SelectIndex("game-abc", date, 40)
	require.NoError(t, err)
	second, err := SelectIndex("game-abc", date, 40)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSelectIndex_SameDayDifferentClocks(t *testing.T) {
	morning := time.Date(2025, 6, 14, 0, 1, 0, 0, time.UTC)
	night := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	// 14th June 18:00 in Tokyo is still the 14th in UTC
	local := time.Date(2025, 6, 14, 18, 0, 0, 0, tokyo)

	a, _ := SelectIndex("game-abc", morning, 17)
	b, _ := SelectIndex("game-abc", night, 17)
	c, _ := SelectIndex("game-abc", local, 17)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

func TestSelectIndex_RangeAndCoverage(t *testing.T) {
	for _, n := range []int{3, 7, 12, 40} {
		seen := make(map[int]bool)
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		for day := 0; day < 1000; day++ {
			idx, err := SelectIndex("coverage-game", start.AddDate(0, 0, day), n)
			require.NoError(t, err)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, n)
			seen[idx] = true
		}
		assert.Len(t, seen, n, "all %d indices should be reachable", n)
	}
}

func TestSelectIndex_ConsecutiveDaysMove(t *testing.T) {
	// A small answer set must not pin consecutive days to one index.
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	a, _ := SelectIndex("small-game", start, 5)
	b, _ := SelectIndex("small-game", start.AddDate(0, 0, 1), 5)
	assert.NotEqual(t, a, b)
}

func TestSelectIndex_DecorrelatesGames(t *testing.T) {
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	indices := make(map[int]bool)
	for _, id := range []string{"g1", "g2", "g3", "g4", "g5", "g6"} {
		idx, err := SelectIndex(id, date, 50)
		require.NoError(t, err)
		indices[idx] = true
	}
	assert.Greater(t, len(indices), 1)
}

func TestSelectIndex_NoAnswers(t *testing.T) {
	_, err := SelectIndex("game-abc", time.Now(), 0)
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestDayKey(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// Late evening in New York is already the next day in UTC.
	late := time.Date(2025, 6, 14, 22, 0, 0, 0, ny)
	assert.Equal(t, "2025-06-15", DayKey(late))
}

func TestDayBefore(t *testing.T) {
	assert.Equal(t, "2025-02-28", DayBefore("2025-03-01"))
	assert.Equal(t, "", DayBefore("not-a-day"))
}

func TestResetTime(t *testing.T) {
	now := time.Date(2025, 6, 14, 13, 45, 0, 0, time.UTC)
	reset := ResetTime(now)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), reset)
}
