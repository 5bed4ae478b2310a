package game

import (
	"errors"

	"gorm.io/gorm"

	"github.com/guessdle/guessdle/internal/apperrors"
)

type GameRepository interface {
	SaveGame(game *Game) error
	GetGame(id string) (*Game, error)
	ListPublished() ([]Game, error)
	SaveAnswer(answer *Answer) error
	// ListAnswers returns the game's answers in stable position order. The
	// daily selector depends on this order never changing between calls.
	ListAnswers(gameID string) ([]Answer, error)
	CountAnswers(gameID string) (int64, error)
}

type GormGameRepository struct {
	db *gorm.DB
}

func NewGormGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

func (r *GormGameRepository) SaveGame(game *Game) error {
	if err := r.db.Save(game).Error; err != nil {
		return apperrors.NewAppError(500, "Error saving game", err)
	}
	return nil
}

func (r *GormGameRepository) GetGame(id string) (*Game, error) {
	var g Game
	result := r.db.Where("id = ?", id).First(&g)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(404, "Game not found", result.Error)
		}
		return nil, apperrors.NewAppError(500, "Error getting game", result.Error)
	}
	return &g, nil
}

func (r *GormGameRepository) ListPublished() ([]Game, error) {
	var games []Game
	if err := r.db.Where("is_published = ?", true).Order("created_at desc").Find(&games).Error; err != nil {
		return nil, apperrors.NewAppError(500, "Error listing games", err)
	}
	return games, nil
}

func (r *GormGameRepository) SaveAnswer(answer *Answer) error {
	if err := r.db.Save(answer).Error; err != nil {
		return apperrors.NewAppError(500, "Error saving answer", err)
	}
	return nil
}

func (r *GormGameRepository) ListAnswers(gameID string) ([]Answer, error) {
	var answers []Answer
	if err := r.db.Where("game_id = ?", gameID).Order("position asc").Find(&answers).Error; err != nil {
		return nil, apperrors.NewAppError(500, "Error listing answers", err)
	}
	return answers, nil
}

func (r *GormGameRepository) CountAnswers(gameID string) (int64, error) {
	var count int64
	if err := r.db.Model(&Answer{}).Where("game_id = ?", gameID).Count(&count).Error; err != nil {
		return 0, apperrors.NewAppError(500, "Error counting answers", err)
	}
	return count, nil
}
