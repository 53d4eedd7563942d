package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Session struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	RoleID           string
	Title            string
	Completed        bool
	Score            *int
	PromptTokens     int64
	CompletionTokens int64
	Cost             decimal.Decimal
	CreatedAt        time.Time
}

type Message struct {
	ID        int64
	SessionID uuid.UUID
	Content   string
	IsUser    bool
	CreatedAt time.Time
}

// Turn is one transcript entry handed to the completion generator.
type Turn struct {
	Speaker string // "user" or "assistant"
	Text    string
}
