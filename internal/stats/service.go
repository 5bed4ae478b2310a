package stats

import (
	"context"
	"strconv"
	"time"

	"github.com/guessdle/guessdle/internal/apperrors"
	"github.com/guessdle/guessdle/internal/daily"
	"github.com/guessdle/guessdle/internal/game"
)

type StatsService struct {
	repo StatsRepository
	now  func() time.Time
}

func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo, now: time.Now}
}

func (s *StatsService) WithNow(now func() time.Time) *StatsService {
	s.now = now
	return s
}

// RecordCompletion folds a completed session into the user's stats: daily
// stats only for daily-challenge games, global stats always. It does not
// deduplicate; invoking it twice for one session counts the session twice,
// so the caller owns the at-most-once guarantee.
func (s *StatsService) RecordCompletion(ctx context.Context, userID string, g *game.Game, won bool, attempts int) error {
	id, err := strconv.ParseUint(userID, 10, 32)
	if err != nil {
		return apperrors.NewAppError(400, "invalid user id", err)
	}
	uid := uint(id)

	if g.IsDailyChallenge {
		prev, err := s.repo.GetDailyStats(uid, g.ID)
		if err != nil {
			return err
		}
		next := FoldDaily(prev, uid, g.ID, won, attempts, daily.DayKey(s.now()))
		if err := s.repo.SaveDailyStats(&next); err != nil {
			return err
		}
	}

	prev, err := s.repo.GetUserStats(uid)
	if err != nil {
		return err
	}
	next := FoldGlobal(prev, uid, g.ID, won, attempts)
	return s.repo.SaveUserStats(&next)
}

func (s *StatsService) GetDailyStats(userID uint, gameID string) (*DailyStats, error) {
	return s.repo.GetDailyStats(userID, gameID)
}

func (s *StatsService) GetUserStats(userID uint) (*UserStats, error) {
	return s.repo.GetUserStats(userID)
}
