package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/guessdle/guessdle/internal/apperrors"
)

type GameService struct {
	repo GameRepository
}

func NewGameService(repo GameRepository) *GameService {
	return &GameService{repo: repo}
}

func (s *GameService) CreateGame(creatorID uint, request *GameRequest) (*Game, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	game := Game{
		ID:               uuid.New().String(),
		CreatorID:        creatorID,
		Title:            request.Title,
		Description:      request.Description,
		Type:             request.Type,
		Attributes:       request.Attributes,
		Tags:             request.Tags,
		MaxAttempts:      request.MaxAttempts,
		IsDailyChallenge: request.IsDailyChallenge,
	}
	if game.Tags == nil {
		game.Tags = []string{}
	}

	if err := s.repo.SaveGame(&game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *GameService) UpdateGame(creatorID uint, gameID string, request *GameRequest) (*Game, error) {
	game, err := s.ownedGame(creatorID, gameID)
	if err != nil {
		return nil, err
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	if request.Type != game.Type {
		return nil, apperrors.NewAppError(400, "game type cannot be changed", nil)
	}

	game.Title = request.Title
	game.Description = request.Description
	game.Attributes = request.Attributes
	game.Tags = request.Tags
	game.MaxAttempts = request.MaxAttempts
	game.IsDailyChallenge = request.IsDailyChallenge

	if err := s.repo.SaveGame(game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) PublishGame(creatorID uint, gameID string) (*Game, error) {
	game, err := s.ownedGame(creatorID, gameID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountAnswers(gameID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NewAppError(400, "cannot publish a game without answers", nil)
	}

	game.IsPublished = true
	if err := s.repo.SaveGame(game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) GetGame(id string) (*Game, error) {
	return s.repo.GetGame(id)
}

func (s *GameService) ListPublished() ([]Game, error) {
	return s.repo.ListPublished()
}

func (s *GameService) AddAnswer(creatorID uint, gameID string, request *AnswerRequest) (*Answer, error) {
	game, err := s.ownedGame(creatorID, gameID)
	if err != nil {
		return nil, err
	}
	if err := request.ValidateFor(game); err != nil {
		return nil, err
	}

	count, err := s.repo.CountAnswers(gameID)
	if err != nil {
		return nil, err
	}

	answer := Answer{
		ID:              uuid.New().String(),
		GameID:          gameID,
		Position:        int(count),
		Answer:          request.Answer,
		AttributeValues: request.AttributeValues,
		Contents:        request.Contents,
		Hint:            request.Hint,
	}

	if err := s.repo.SaveAnswer(&answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

func (s *GameService) ListAnswers(creatorID uint, gameID string) ([]Answer, error) {
	if _, err := s.ownedGame(creatorID, gameID); err != nil {
		return nil, err
	}
	return s.repo.ListAnswers(gameID)
}

func (s *GameService) ownedGame(creatorID uint, gameID string) (*Game, error) {
	game, err := s.repo.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if game.CreatorID != creatorID {
		return nil, apperrors.NewAppError(403, "only the creator can modify this game", nil)
	}
	return game, nil
}

func (r *GameRequest) Validate() error {
	if r.Title == "" {
		return apperrors.NewAppError(400, "title is required", nil)
	}
	if len(r.Title) > 100 {
		return apperrors.NewAppError(400, "title must not exceed 100 characters", nil)
	}
	if !r.Type.Valid() {
		return apperrors.NewAppError(400, fmt.Sprintf("unknown game type %q", r.Type), nil)
	}
	if r.MaxAttempts < 0 {
		return apperrors.NewAppError(400, "maxAttempts cannot be negative", nil)
	}

	if r.Type == TypeAttributeGuesser {
		if len(r.Attributes) == 0 {
			return apperrors.NewAppError(400, "attribute games need at least one attribute", nil)
		}
		seen := map[string]bool{}
		for _, attr := range r.Attributes {
			if attr.ID == "" || attr.Name == "" {
				return apperrors.NewAppError(400, "attributes need an id and a name", nil)
			}
			if seen[attr.ID] {
				return apperrors.NewAppError(400, fmt.Sprintf("duplicate attribute id %q", attr.ID), nil)
			}
			seen[attr.ID] = true
		}
	} else if len(r.Attributes) > 0 {
		return apperrors.NewAppError(400, "only attribute games declare attributes", nil)
	}

	return nil
}

// ValidateFor checks an answer against the game's declared schema. An
// attribute answer must carry a value for every declared attribute, and
// nothing beyond them.
func (r *AnswerRequest) ValidateFor(game *Game) error {
	if r.Answer == "" {
		return apperrors.NewAppError(400, "answer name is required", nil)
	}

	switch game.Type {
	case TypeAttributeGuesser:
		for _, attr := range game.Attributes {
			if _, ok := r.AttributeValues[attr.ID]; !ok {
				return apperrors.NewAppError(400, fmt.Sprintf("missing value for attribute %q", attr.ID), nil)
			}
		}
		declared := map[string]bool{}
		for _, attr := range game.Attributes {
			declared[attr.ID] = true
		}
		for id := range r.AttributeValues {
			if !declared[id] {
				return apperrors.NewAppError(400, fmt.Sprintf("value for undeclared attribute %q", id), nil)
			}
		}
	case TypeImageGuesser, TypeQuoteGuesser:
		if len(r.Contents) == 0 {
			return apperrors.NewAppError(400, "answer needs at least one content item", nil)
		}
	case TypeProgressive:
		if len(r.Contents) == 0 {
			return apperrors.NewAppError(400, "answer needs at least one content item", nil)
		}
		for id, content := range r.Contents {
			if content.RevealOrder < 1 {
				return apperrors.NewAppError(400, fmt.Sprintf("content %q needs a reveal order of 1 or higher", id), nil)
			}
		}
	}

	return nil
}
