package game

import "time"

type GameType string

const (
	TypeAttributeGuesser GameType = "attribute_guesser"
	TypeImageGuesser     GameType = "image_guesser"
	TypeQuoteGuesser     GameType = "quote_guesser"
	TypeProgressive      GameType = "progressive"
)

func (t GameType) Valid() bool {
	switch t {
	case TypeAttributeGuesser, TypeImageGuesser, TypeQuoteGuesser, TypeProgressive:
		return true
	}
	return false
}

type AttributeType string

const (
	AttributeText    AttributeType = "text"
	AttributeNumber  AttributeType = "number"
	AttributeBoolean AttributeType = "boolean"
	AttributeArray   AttributeType = "array"
)

type AttributeConfig struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Type AttributeType `json:"type"`
}

type Game struct {
	ID               string            `gorm:"primaryKey" json:"id"`
	CreatorID        uint              `gorm:"index;not null" json:"creatorId"`
	Title            string            `gorm:"not null" json:"title"`
	Description      string            `json:"description"`
	Type             GameType          `gorm:"not null" json:"type"`
	Attributes       []AttributeConfig `gorm:"serializer:json" json:"attributes,omitempty"`
	Tags             []string          `gorm:"serializer:json" json:"tags"`
	// MaxAttempts caps guesses per session; 0 means unlimited, so a
	// session can only end in a loss when a cap is set.
	MaxAttempts      int               `json:"maxAttempts"`
	IsDailyChallenge bool              `json:"isDailyChallenge"`
	IsPublished      bool              `json:"isPublished"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// Content is one piece of answer material: an image URL, a quote, or a
// progressive clue with its reveal order.
type Content struct {
	Value       string `json:"value"`
	RevealOrder int    `json:"revealOrder,omitempty"`
}

type Answer struct {
	ID      string `gorm:"primaryKey" json:"id"`
	GameID  string `gorm:"index;not null" json:"gameId"`
	// Position fixes the answer order the daily selector indexes into.
	Position        int                    `gorm:"not null" json:"position"`
	Answer          string                 `gorm:"not null" json:"answer"`
	AttributeValues map[string]interface{} `gorm:"serializer:json" json:"attributeValues,omitempty"`
	Contents        map[string]Content     `gorm:"serializer:json" json:"contents,omitempty"`
	Hint            string                 `json:"hint,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

type GameRequest struct {
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Type             GameType          `json:"type"`
	Attributes       []AttributeConfig `json:"attributes"`
	Tags             []string          `json:"tags"`
	MaxAttempts      int               `json:"maxAttempts"`
	IsDailyChallenge bool              `json:"isDailyChallenge"`
}

type AnswerRequest struct {
	Answer          string                 `json:"answer"`
	AttributeValues map[string]interface{} `json:"attributeValues"`
	Contents        map[string]Content     `json:"contents"`
	Hint            string                 `json:"hint"`
}
