package stats

import "github.com/guessdle/guessdle/internal/daily"

// FoldDaily folds one completed daily-challenge session into the user's
// per-game daily stats. Pure: prev is not mutated; nil prev means the first
// ever play. Callers must invoke it at most once per session — two calls
// for one session count twice.
func FoldDaily(prev *DailyStats, userID uint, gameID string, won bool, attempts int, today string) DailyStats {
	if prev == nil {
		next := DailyStats{
			UserID:            userID,
			GameID:            gameID,
			TotalPlayed:       1,
			LastPlayed:        today,
			GuessDistribution: map[int]int{},
		}
		if won {
			next.CurrentStreak = 1
			next.MaxStreak = 1
			next.TotalWins = 1
			next.GuessDistribution[attempts] = 1
		}
		return next
	}

	next := *prev
	next.GuessDistribution = make(map[int]int, len(prev.GuessDistribution))
	for k, v := range prev.GuessDistribution {
		next.GuessDistribution[k] = v
	}

	// A win only extends the streak when the last play was yesterday; any
	// gap resets it even on a win.
	consecutive := prev.LastPlayed == daily.DayBefore(today)
	switch {
	case won && consecutive:
		next.CurrentStreak = prev.CurrentStreak + 1
	case won:
		next.CurrentStreak = 1
	default:
		next.CurrentStreak = 0
	}
	if next.CurrentStreak > next.MaxStreak {
		next.MaxStreak = next.CurrentStreak
	}

	next.TotalPlayed++
	if won {
		next.TotalWins++
		next.GuessDistribution[attempts]++
	}
	next.LastPlayed = today

	return next
}

// FoldGlobal folds one completed session into the user's cross-game stats.
// Pure, same at-most-once caller obligation as FoldDaily.
func FoldGlobal(prev *UserStats, userID uint, gameID string, won bool, attempts int) UserStats {
	next := UserStats{UserID: userID, GameStats: map[string]GameStatEntry{}}
	if prev != nil {
		next = *prev
		next.GameStats = make(map[string]GameStatEntry, len(prev.GameStats))
		for k, v := range prev.GameStats {
			next.GameStats[k] = v
		}
	}

	entry := next.GameStats[gameID]
	entry.Played++
	// running mean over all completed plays, win or lose
	entry.AvgAttempts = (entry.AvgAttempts*float64(entry.Played-1) + float64(attempts)) / float64(entry.Played)

	if won {
		entry.Won++
		next.DailyStreak++
		if next.DailyStreak > next.MaxStreak {
			next.MaxStreak = next.DailyStreak
		}
		next.FirstWin = true
		if attempts == 1 {
			next.PerfectGames++
		}
	} else {
		next.DailyStreak = 0
	}

	next.GameStats[gameID] = entry
	next.TotalGamesPlayed++

	return next
}
