package stats

import (
	"errors"

	"gorm.io/gorm"

	"github.com/guessdle/guessdle/internal/apperrors"
)

type StatsRepository interface {
	GetDailyStats(userID uint, gameID string) (*DailyStats, error)
	SaveDailyStats(stats *DailyStats) error
	GetUserStats(userID uint) (*UserStats, error)
	SaveUserStats(stats *UserStats) error
}

type GormStatsRepository struct {
	db *gorm.DB
}

func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

func (r *GormStatsRepository) GetDailyStats(userID uint, gameID string) (*DailyStats, error) {
	var stats DailyStats
	result := r.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&stats)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "Error getting daily stats", result.Error)
	}
	return &stats, nil
}

func (r *GormStatsRepository) SaveDailyStats(stats *DailyStats) error {
	if err := r.db.Save(stats).Error; err != nil {
		return apperrors.NewAppError(500, "Error saving daily stats", err)
	}
	return nil
}

func (r *GormStatsRepository) GetUserStats(userID uint) (*UserStats, error) {
	var stats UserStats
	result := r.db.Where("user_id = ?", userID).First(&stats)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "Error getting user stats", result.Error)
	}
	return &stats, nil
}

func (r *GormStatsRepository) SaveUserStats(stats *UserStats) error {
	if err := r.db.Save(stats).Error; err != nil {
		return apperrors.NewAppError(500, "Error saving user stats", err)
	}
	return nil
}
