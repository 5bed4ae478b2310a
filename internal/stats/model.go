package stats

// DailyStats tracks one user's record on one daily-challenge game.
type DailyStats struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	UserID        uint   `gorm:"uniqueIndex:idx_daily_user_game;not null" json:"userId"`
	GameID        string `gorm:"uniqueIndex:idx_daily_user_game;not null" json:"gameId"`
	CurrentStreak int    `json:"currentStreak"`
	MaxStreak     int    `json:"maxStreak"`
	TotalPlayed   int    `json:"totalPlayed"`
	TotalWins     int    `json:"totalWins"`
	LastPlayed    string `json:"lastPlayed"`
	// GuessDistribution buckets attempts-to-win; losses are not recorded
	// since they have no meaningful finishing count.
	GuessDistribution map[int]int `gorm:"serializer:json" json:"guessDistribution"`
}

type GameStatEntry struct {
	Played int `json:"played"`
	Won    int `json:"won"`
	// AvgAttempts averages over all completed plays, win or lose.
	AvgAttempts float64 `json:"avgAttempts"`
}

// UserStats aggregates across every game the user has completed,
// daily challenge or not.
type UserStats struct {
	UserID           uint                     `gorm:"primaryKey" json:"userId"`
	TotalGamesPlayed int                      `json:"totalGamesPlayed"`
	DailyStreak      int                      `json:"dailyStreak"`
	FirstWin         bool                     `json:"firstWin"`
	PerfectGames     int                      `json:"perfectGames"`
	MaxStreak        int                      `json:"maxStreak"`
	GameStats        map[string]GameStatEntry `gorm:"serializer:json" json:"gameStats"`
}
